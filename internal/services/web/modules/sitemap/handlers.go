package sitemap

import (
	"bytes"
	"net/http"

	"github.com/louisbranch/beyondui/internal/blog"
	apperrors "github.com/louisbranch/beyondui/internal/services/web/platform/errors"
	"github.com/louisbranch/beyondui/internal/services/web/platform/httpx"
	"github.com/louisbranch/beyondui/internal/services/web/platform/publichandler"
	"github.com/louisbranch/beyondui/internal/services/web/seo"
)

var errNoPostSource = apperrors.E(apperrors.KindUnavailable, "post source is not configured")

type handlers struct {
	publichandler.Base
}

func newHandlers(base publichandler.Base) handlers {
	return handlers{Base: base}
}

// handleSitemap lists every post. When the post list is unavailable the
// sitemap still answers with the home entry.
func (h handlers) handleSitemap(w http.ResponseWriter, r *http.Request) {
	var (
		posts   []blog.Post
		listErr error = errNoPostSource
	)
	if reader := h.Posts(); reader != nil {
		posts, listErr = reader.GetAllPosts(httpx.RequestContext(r))
	}
	if listErr != nil {
		h.Logger().Warn("sitemap without posts",
			"request_id", httpx.RequestIDFromRequest(r),
			"error", listErr,
		)
	}

	var buf bytes.Buffer
	entries := seo.SitemapEntries(h.Site(""), posts, listErr, h.Now())
	if err := seo.WriteSitemap(&buf, entries); err != nil {
		h.Logger().Error("encode sitemap failed", "error", err)
		httpx.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h handlers) handleRobots(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, seo.RobotsTxt(h.Site("")))
}
