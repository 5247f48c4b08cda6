// Package home serves the homepage and the site-wide not-found fallback.
package home

import (
	"net/http"

	module "github.com/louisbranch/beyondui/internal/services/web/module"
	"github.com/louisbranch/beyondui/internal/services/web/platform/publichandler"
	"github.com/louisbranch/beyondui/internal/services/web/routepath"
)

// Module provides the root routes.
type Module struct {
	deps module.Dependencies
}

// New returns the home module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Healthy reports whether the module has a post source to render from.
func (m Module) Healthy() bool { return m.deps.Posts != nil }

// Mount claims the root subtree so unknown paths reach the 404 page.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(publichandler.NewBase(m.deps)))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
