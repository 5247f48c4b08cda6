// Package module defines the feature contract used by web composition.
package module

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/louisbranch/beyondui/internal/blog"
	"github.com/louisbranch/beyondui/internal/platform/logging"
)

// PostReader is the blog service surface web modules render from.
type PostReader interface {
	GetAllPosts(ctx context.Context) ([]blog.Post, error)
	GetPostByID(ctx context.Context, id string) (blog.Post, error)
	GetFeaturedPosts(ctx context.Context, limit int) ([]blog.Post, error)
	GetRecentPosts(ctx context.Context, limit int) ([]blog.Post, error)
	GetRelatedPosts(ctx context.Context, currentID string, category string, limit int) ([]blog.Post, error)
	RevalidatePost(ctx context.Context, id string) (blog.Post, error)
}

// Dependencies carries the shared collaborators every module is built with.
type Dependencies struct {
	Posts PostReader
	// SiteURL is the public origin used for canonical and social URLs.
	SiteURL string
	Logger  *slog.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Log returns the configured logger or a discarding one.
func (d Dependencies) Log() *slog.Logger {
	return logging.OrDiscard(d.Logger)
}

// Clock returns the current time from Now.
func (d Dependencies) Clock() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// Mount describes a module route mount. Prefix claims a subtree and must
// end with a slash; Paths claims exact paths such as /robots.txt. A module
// sets one or both.
type Mount struct {
	Prefix  string
	Paths   []string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules that can report their
// operational availability.
type HealthReporter interface {
	Healthy() bool
}
