// Package sitemap serves the crawler documents: sitemap.xml and robots.txt.
package sitemap

import (
	"net/http"

	module "github.com/louisbranch/beyondui/internal/services/web/module"
	"github.com/louisbranch/beyondui/internal/services/web/platform/publichandler"
	"github.com/louisbranch/beyondui/internal/services/web/routepath"
)

// Module provides the crawler routes.
type Module struct {
	deps module.Dependencies
}

// New returns the sitemap module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "sitemap" }

// Mount claims the two exact crawler paths.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(publichandler.NewBase(m.deps)))
	return module.Mount{Paths: []string{routepath.Sitemap, routepath.Robots}, Handler: mux}, nil
}
