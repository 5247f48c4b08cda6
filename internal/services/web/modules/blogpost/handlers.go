package blogpost

import (
	"errors"
	"net/http"
	"strings"

	"github.com/louisbranch/beyondui/internal/blog"
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

func (h handlers) handlePost(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.Localize(w, r)
	site := h.Site(lang)
	postID := strings.TrimSpace(r.PathValue("postID"))

	post, err := h.loadPost(r, postID)
	switch {
	case err == nil:
	case blog.IsNotFound(err) || errors.Is(err, blog.ErrInvalidInput):
		h.WritePage(w, r, pagerender.Page{
			Lang: lang,
			Loc:  loc,
			Meta: site.NotFound(
				seo.Title(webtemplates.T(loc, "seo.post_not_found_title")),
				webtemplates.T(loc, "seo.post_not_found_description"),
			),
			StatusCode: http.StatusNotFound,
			Body:       webtemplates.PostNotFound(loc),
		})
		return
	default:
		h.Logger().Error("load post failed",
			"post_id", postID,
			"request_id", httpx.RequestIDFromRequest(r),
			"error", err,
		)
		h.WritePage(w, r, pagerender.Page{
			Lang:       lang,
			Loc:        loc,
			Meta:       site.NotFound(webtemplates.AppErrorPageTitle(http.StatusInternalServerError, loc), webtemplates.T(loc, "seo.default_description")),
			StatusCode: apperrors.HTTPStatus(err),
			Body:       webtemplates.PostUnavailable(postID, loc),
		})
		return
	}

	related, err := h.Posts().GetRelatedPosts(httpx.RequestContext(r), post.ID, post.Category, blog.DefaultRelatedLimit)
	if err != nil {
		h.Logger().Warn("related posts unavailable",
			"post_id", post.ID,
			"request_id", httpx.RequestIDFromRequest(r),
			"error", err,
		)
		related = nil
	}

	h.WritePage(w, r, pagerender.Page{
		Lang: lang,
		Loc:  loc,
		Meta: site.Post(post, webtemplates.T(loc, "seo.post_image_alt", post.Title)),
		Body: webtemplates.PostPage(webtemplates.PostView{Post: post, Related: related}, loc),
	})
}

// loadPost reads the post, or refetches it when the request came from the
// error page's Try Again link.
func (h handlers) loadPost(r *http.Request, postID string) (blog.Post, error) {
	posts := h.Posts()
	if posts == nil {
		return blog.Post{}, errNoPostSource
	}
	ctx := httpx.RequestContext(r)
	if r.URL.Query().Get(routepath.RetryQueryKey) == "1" {
		return posts.RevalidatePost(ctx, postID)
	}
	return posts.GetPostByID(ctx, postID)
}
