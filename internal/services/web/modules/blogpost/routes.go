package blogpost

import (
	"net/http"

	"github.com/louisbranch/beyondui/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.BlogPostPattern, h.handlePost)
	mux.HandleFunc(routepath.BlogPrefix, h.WriteNotFound)
}
