package sitemap

import (
	"net/http"

	"github.com/louisbranch/beyondui/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Sitemap, h.handleSitemap)
	mux.HandleFunc(http.MethodGet+" "+routepath.Robots, h.handleRobots)
}
