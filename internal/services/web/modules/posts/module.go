// Package posts serves the searchable, paginated posts index.
package posts

import (
	"net/http"

	module "github.com/louisbranch/beyondui/internal/services/web/module"
	"github.com/louisbranch/beyondui/internal/services/web/platform/publichandler"
	"github.com/louisbranch/beyondui/internal/services/web/routepath"
)

// Module provides the posts index routes.
type Module struct {
	deps module.Dependencies
}

// New returns the posts module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "posts" }

// Healthy reports whether the module has a post source to render from.
func (m Module) Healthy() bool { return m.deps.Posts != nil }

// Mount returns the module's route mount.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(publichandler.NewBase(m.deps)))
	return module.Mount{Prefix: routepath.PostsPrefix, Handler: mux}, nil
}
