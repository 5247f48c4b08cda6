package blog

import (
	"context"
	"errors"
	"strings"

	"github.com/louisbranch/beyondui/internal/querycache"
)

// Default view sizes used by the pages.
const (
	DefaultFeaturedLimit = 4
	DefaultRecentLimit   = 6
	DefaultRelatedLimit  = 3
)

const (
	queryAllPosts = "all-posts"
	queryPostByID = "post-by-id"
)

// Source is the remote post collection.
type Source interface {
	ListPosts(ctx context.Context) ([]Post, error)
	GetPost(ctx context.Context, id string) (Post, error)
}

// Service reads posts through the query cache. Featured, recent, category
// and related views are derived from the single cached list fetch.
type Service struct {
	source Source
	cache  *querycache.Cache
}

// NewService builds a Service. A nil cache disables caching.
func NewService(source Source, cache *querycache.Cache) *Service {
	return &Service{source: source, cache: cache}
}

// AllPostsKey is the cache key of the full post list.
func AllPostsKey() querycache.Key {
	return querycache.NewKey(queryAllPosts)
}

// PostKey is the cache key of a single post lookup.
func PostKey(id string) querycache.Key {
	return querycache.NewKey(queryPostByID, strings.TrimSpace(id))
}

// GetAllPosts returns the full collection in source order.
func (s *Service) GetAllPosts(ctx context.Context) ([]Post, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return querycache.Query(ctx, s.cache, AllPostsKey(), s.source.ListPosts)
}

// GetPostByID returns one post. A missing id surfaces as *NotFoundError.
func (s *Service) GetPostByID(ctx context.Context, id string) (Post, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Post{}, invalidInput("post id is required")
	}
	if err := s.ready(); err != nil {
		return Post{}, err
	}
	return querycache.Query(ctx, s.cache, PostKey(id), s.fetchPost(id))
}

// GetFeaturedPosts returns the first limit posts in source order.
func (s *Service) GetFeaturedPosts(ctx context.Context, limit int) ([]Post, error) {
	if limit <= 0 {
		return nil, invalidInput("limit must be positive, got %d", limit)
	}
	posts, err := s.GetAllPosts(ctx)
	if err != nil {
		return nil, err
	}
	return Featured(posts, limit), nil
}

// GetRecentPosts returns the newest limit posts.
func (s *Service) GetRecentPosts(ctx context.Context, limit int) ([]Post, error) {
	if limit <= 0 {
		return nil, invalidInput("limit must be positive, got %d", limit)
	}
	posts, err := s.GetAllPosts(ctx)
	if err != nil {
		return nil, err
	}
	return Recent(posts, limit), nil
}

// GetPostsByCategory returns posts in category, compared case-insensitively.
func (s *Service) GetPostsByCategory(ctx context.Context, category string) ([]Post, error) {
	if strings.TrimSpace(category) == "" {
		return nil, invalidInput("category is required")
	}
	posts, err := s.GetAllPosts(ctx)
	if err != nil {
		return nil, err
	}
	return ByCategory(posts, category), nil
}

// GetRelatedPosts returns up to limit posts to suggest next to currentID.
func (s *Service) GetRelatedPosts(ctx context.Context, currentID string, category string, limit int) ([]Post, error) {
	if limit <= 0 {
		return nil, invalidInput("limit must be positive, got %d", limit)
	}
	posts, err := s.GetAllPosts(ctx)
	if err != nil {
		return nil, err
	}
	return Related(posts, currentID, category, limit), nil
}

// RevalidateAllPosts refetches the post list even when the cached copy is
// still fresh.
func (s *Service) RevalidateAllPosts(ctx context.Context) ([]Post, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return querycache.Revalidate(ctx, s.cache, AllPostsKey(), s.source.ListPosts)
}

// RevalidatePost refetches one post even when the cached copy is fresh.
func (s *Service) RevalidatePost(ctx context.Context, id string) (Post, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Post{}, invalidInput("post id is required")
	}
	if err := s.ready(); err != nil {
		return Post{}, err
	}
	return querycache.Revalidate(ctx, s.cache, PostKey(id), s.fetchPost(id))
}

func (s *Service) fetchPost(id string) func(context.Context) (Post, error) {
	return func(ctx context.Context) (Post, error) {
		return s.source.GetPost(ctx, id)
	}
}

func (s *Service) ready() error {
	if s == nil || s.source == nil {
		return &FetchError{Err: errors.New("post source is not configured")}
	}
	return nil
}
