// Package listing derives the searchable, paginated post index from a full
// post list: debounce, filter, paginate, then window the page controls.
package listing

import (
	"strings"

	"github.com/louisbranch/beyondui/internal/blog"
	"golang.org/x/text/cases"
)

// Filter keeps posts whose title, content, category or author name contains
// term, ignoring case. A blank term returns posts unchanged.
func Filter(posts []blog.Post, term string) []blog.Post {
	term = strings.TrimSpace(term)
	if term == "" {
		return posts
	}
	fold := cases.Fold()
	needle := fold.String(term)
	matched := make([]blog.Post, 0, len(posts))
	for _, post := range posts {
		if matches(fold, post, needle) {
			matched = append(matched, post)
		}
	}
	return matched
}

func matches(fold cases.Caser, post blog.Post, needle string) bool {
	for _, field := range []string{post.Title, post.Content, post.Category, post.AuthorName} {
		if field != "" && strings.Contains(fold.String(field), needle) {
			return true
		}
	}
	return false
}
