// Package blog owns the post read model and the data-access operations
// every page composes: the full list, featured, recent, category and
// related views, plus single-post lookups.
package blog

import (
	"strings"
	"time"
)

// Post is a blog article as returned by the remote post source.
//
// Field names on the wire are the API's own; blog_category in particular
// is kept verbatim even though its spelling drifted upstream.
type Post struct {
	ID             string `json:"id"`
	CreatedAt      string `json:"createdAt"`
	Title          string `json:"blog_title"`
	Content        string `json:"blog_content"`
	ImageURL       string `json:"blog_image"`
	AuthorName     string `json:"blog_by"`
	AuthorImageURL string `json:"blog_by_img"`
	Category       string `json:"blog_category"`
}

var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// CreatedTime parses CreatedAt. Unparseable values yield the zero time so
// they sort after every dated post.
func (p Post) CreatedTime() time.Time {
	raw := strings.TrimSpace(p.CreatedAt)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range createdAtLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}

// AuthorInitials returns up to two uppercase initials for avatar fallbacks.
func (p Post) AuthorInitials() string {
	initials := make([]rune, 0, 2)
	for _, word := range strings.Fields(p.AuthorName) {
		initials = append(initials, []rune(word)[0])
		if len(initials) == 2 {
			break
		}
	}
	return strings.ToUpper(string(initials))
}

// CategoryOr returns the post category, or fallback when it is blank.
func (p Post) CategoryOr(fallback string) string {
	if category := strings.TrimSpace(p.Category); category != "" {
		return category
	}
	return fallback
}
