package blog

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Featured returns the first limit posts in source order. The source has
// no featured flag; return order is the only signal.
func Featured(posts []Post, limit int) []Post {
	if limit <= 0 {
		return []Post{}
	}
	if limit > len(posts) {
		limit = len(posts)
	}
	return slices.Clone(posts[:limit])
}

// Recent returns up to limit posts ordered by creation time, newest first.
// Posts with equal timestamps keep their source order.
func Recent(posts []Post, limit int) []Post {
	if limit <= 0 {
		return []Post{}
	}
	sorted := slices.Clone(posts)
	slices.SortStableFunc(sorted, func(a, b Post) int {
		return b.CreatedTime().Compare(a.CreatedTime())
	})
	if limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted
}

// ByCategory returns posts whose category equals category under Unicode
// case folding.
func ByCategory(posts []Post, category string) []Post {
	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(category))
	matched := make([]Post, 0)
	for _, post := range posts {
		if fold.String(strings.TrimSpace(post.Category)) == want {
			matched = append(matched, post)
		}
	}
	return matched
}

// Related returns up to limit posts other than currentID, narrowed to the
// same category when at least one such post exists.
func Related(posts []Post, currentID string, category string, limit int) []Post {
	if limit <= 0 {
		return []Post{}
	}
	others := make([]Post, 0, len(posts))
	for _, post := range posts {
		if post.ID != currentID {
			others = append(others, post)
		}
	}
	if category != "" {
		sameCategory := make([]Post, 0, len(others))
		for _, post := range others {
			if post.Category == category {
				sameCategory = append(sameCategory, post)
			}
		}
		if len(sameCategory) > 0 {
			others = sameCategory
		}
	}
	if limit < len(others) {
		others = others[:limit]
	}
	return others
}
