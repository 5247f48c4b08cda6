package posts

import (
	"net/http"

	"github.com/louisbranch/beyondui/internal/services/web/platform/httpx"
	"github.com/louisbranch/beyondui/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Posts, h.handleIndex)
	mux.HandleFunc(routepath.Posts, httpx.MethodNotAllowed(http.MethodGet+", "+http.MethodHead))
	mux.HandleFunc(routepath.PostsPrefix, h.WriteNotFound)
}
