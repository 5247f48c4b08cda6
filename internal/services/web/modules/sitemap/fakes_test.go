package sitemap

import (
	"context"
	"fmt"
	"time"

	"github.com/louisbranch/beyondui/internal/blog"
)

type fakePosts struct {
	posts   []blog.Post
	listErr error
}

func (f *fakePosts) GetAllPosts(context.Context) ([]blog.Post, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.posts, nil
}

func (f *fakePosts) GetPostByID(_ context.Context, id string) (blog.Post, error) {
	for _, post := range f.posts {
		if post.ID == id {
			return post, nil
		}
	}
	return blog.Post{}, &blog.NotFoundError{ID: id}
}

func (f *fakePosts) GetFeaturedPosts(_ context.Context, limit int) ([]blog.Post, error) {
	return blog.Featured(f.posts, limit), nil
}

func (f *fakePosts) GetRecentPosts(_ context.Context, limit int) ([]blog.Post, error) {
	return blog.Recent(f.posts, limit), nil
}

func (f *fakePosts) GetRelatedPosts(_ context.Context, currentID string, category string, limit int) ([]blog.Post, error) {
	return blog.Related(f.posts, currentID, category, limit), nil
}

func (f *fakePosts) RevalidatePost(ctx context.Context, id string) (blog.Post, error) {
	return f.GetPostByID(ctx, id)
}

func samplePosts(n int) []blog.Post {
	posts := make([]blog.Post, 0, n)
	for i := 1; i <= n; i++ {
		posts = append(posts, blog.Post{
			ID:         fmt.Sprint(i),
			CreatedAt:  time.Date(2025, 1, i, 12, 0, 0, 0, time.UTC).Format(time.RFC3339),
			Title:      fmt.Sprintf("Post %d", i),
			Content:    "Content",
			AuthorName: "Grace Hopper",
			Category:   "Engineering",
		})
	}
	return posts
}
