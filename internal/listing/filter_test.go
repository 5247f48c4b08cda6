package listing

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/louisbranch/beyondui/internal/blog"
)

// indexPosts returns ten posts where exactly two mention "design".
func indexPosts() []blog.Post {
	posts := make([]blog.Post, 0, 10)
	for i := 1; i <= 10; i++ {
		posts = append(posts, blog.Post{
			ID:         fmt.Sprintf("%d", i),
			Title:      fmt.Sprintf("Post %d", i),
			Content:    "Notes on shipping software",
			Category:   "Engineering",
			AuthorName: "Phoenix Baker",
		})
	}
	posts[2].Category = "Design"
	posts[7].Title = "Why DESIGN reviews matter"
	return posts
}

func TestFilterBlankTermReturnsInput(t *testing.T) {
	t.Parallel()

	posts := indexPosts()
	for _, term := range []string{"", "   "} {
		got := Filter(posts, term)
		if !slices.Equal(got, posts) {
			t.Fatalf("Filter(%q) changed the list", term)
		}
	}
}

func TestFilterMatchesAnyField(t *testing.T) {
	t.Parallel()

	posts := []blog.Post{
		{ID: "title", Title: "Designing APIs"},
		{ID: "content", Content: "a note on design tokens"},
		{ID: "category", Category: "Product Design"},
		{ID: "author", AuthorName: "Desi Gnome"},
		{ID: "none", Title: "Shipping", Content: "Go", Category: "Engineering", AuthorName: "Olivia"},
	}
	tests := []struct {
		term string
		want []string
	}{
		{term: "design", want: []string{"title", "content", "category"}},
		{term: "DESIGN", want: []string{"title", "content", "category"}},
		{term: "gnome", want: []string{"author"}},
		{term: "  olivia ", want: []string{"none"}},
		{term: "nothing here", want: []string{}},
	}
	for _, tc := range tests {
		got := Filter(posts, tc.term)
		ids := make([]string, 0, len(got))
		for _, post := range got {
			ids = append(ids, post.ID)
		}
		if !slices.Equal(ids, tc.want) {
			t.Fatalf("Filter(%q) = %v, want %v", tc.term, ids, tc.want)
		}
	}
}

func TestFilterResultsContainTerm(t *testing.T) {
	t.Parallel()

	posts := indexPosts()
	for _, term := range []string{"design", "post 1", "baker", "software", "eng"} {
		for _, post := range Filter(posts, term) {
			haystack := strings.ToLower(strings.Join([]string{post.Title, post.Content, post.Category, post.AuthorName}, "\n"))
			if !strings.Contains(haystack, strings.ToLower(term)) {
				t.Fatalf("Filter(%q) kept post %s without a match", term, post.ID)
			}
		}
	}
}
