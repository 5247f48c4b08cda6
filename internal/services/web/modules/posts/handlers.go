package posts

import (
	"net/http"

	"github.com/louisbranch/beyondui/internal/blog"
	"github.com/louisbranch/beyondui/internal/listing"
	apperrors "github.com/louisbranch/beyondui/internal/services/web/platform/errors"
	"github.com/louisbranch/beyondui/internal/services/web/platform/httpx"
	"github.com/louisbranch/beyondui/internal/services/web/platform/pagerender"
	"github.com/louisbranch/beyondui/internal/services/web/platform/publichandler"
	"github.com/louisbranch/beyondui/internal/services/web/routepath"
	"github.com/louisbranch/beyondui/internal/services/web/seo"
	webtemplates "github.com/louisbranch/beyondui/internal/services/web/templates"
)

var errNoPostSource = apperrors.E(apperrors.KindUnavailable, "post source is not configured")

type handlers struct {
	publichandler.Base
}

func newHandlers(base publichandler.Base) handlers {
	return handlers{Base: base}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.Localize(w, r)
	meta := h.Site(lang).Page(seo.Page{
		Title:       webtemplates.T(loc, "seo.posts_title"),
		Description: webtemplates.T(loc, "seo.posts_description"),
		ImageAlt:    webtemplates.T(loc, "seo.og_image_alt"),
		Path:        routepath.Posts,
	})

	all, err := h.loadPosts(r)
	if err != nil {
		h.Logger().Error("load posts failed",
			"request_id", httpx.RequestIDFromRequest(r),
			"error", err,
		)
		unavailable := webtemplates.PostsUnavailable(loc)
		h.WritePage(w, r, pagerender.Page{
			Lang:       lang,
			Loc:        loc,
			Meta:       meta,
			StatusCode: apperrors.HTTPStatus(err),
			Body:       unavailable,
			Fragment:   unavailable,
		})
		return
	}

	view := listing.Derive(all, listing.ParseState(r.URL.Query()), listing.DefaultPageSize)
	h.WritePage(w, r, pagerender.Page{
		Lang:     lang,
		Loc:      loc,
		Meta:     meta,
		Body:     webtemplates.PostsPage(view, loc),
		Fragment: webtemplates.PostResults(view, loc),
	})
}

func (h handlers) loadPosts(r *http.Request) ([]blog.Post, error) {
	posts := h.Posts()
	if posts == nil {
		return nil, errNoPostSource
	}
	return posts.GetAllPosts(httpx.RequestContext(r))
}
