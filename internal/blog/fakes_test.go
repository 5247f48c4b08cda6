package blog

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type fakeSource struct {
	mu        sync.Mutex
	posts     []Post
	listErr   error
	listCalls int
	getCalls  map[string]int
}

func newFakeSource(posts []Post) *fakeSource {
	return &fakeSource{posts: posts, getCalls: map[string]int{}}
}

func (f *fakeSource) ListPosts(context.Context) ([]Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]Post, len(f.posts))
	copy(out, f.posts)
	return out, nil
}

func (f *fakeSource) GetPost(_ context.Context, id string) (Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls[id]++
	for _, post := range f.posts {
		if post.ID == id {
			return post, nil
		}
	}
	return Post{}, &NotFoundError{ID: id}
}

func (f *fakeSource) setPosts(posts []Post) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts = posts
}

func (f *fakeSource) setListErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listErr = err
}

func (f *fakeSource) ListCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

func (f *fakeSource) GetCalls(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getCalls[id]
}

var samplePostCategories = []string{"Design", "Development", "design", "Research", "Product"}

// samplePosts returns n posts in source order. Creation dates deliberately
// do not follow source order.
func samplePosts(n int) []Post {
	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	posts := make([]Post, 0, n)
	for i := 1; i <= n; i++ {
		created := base.Add(time.Duration((i*7)%n) * 24 * time.Hour)
		posts = append(posts, Post{
			ID:         fmt.Sprintf("%d", i),
			CreatedAt:  created.Format(time.RFC3339),
			Title:      fmt.Sprintf("Post %d", i),
			Content:    fmt.Sprintf("Body of post %d", i),
			AuthorName: fmt.Sprintf("Author %d", i),
			Category:   samplePostCategories[i%len(samplePostCategories)],
		})
	}
	return posts
}
