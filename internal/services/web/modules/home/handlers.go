package home

import (
	"context"
	"net/http"

	"github.com/louisbranch/beyondui/internal/blog"
	"github.com/louisbranch/beyondui/internal/services/web/platform/httpx"
	"github.com/louisbranch/beyondui/internal/services/web/platform/pagerender"
	"github.com/louisbranch/beyondui/internal/services/web/platform/publichandler"
	"github.com/louisbranch/beyondui/internal/services/web/routepath"
	"github.com/louisbranch/beyondui/internal/services/web/seo"
	webtemplates "github.com/louisbranch/beyondui/internal/services/web/templates"
	"golang.org/x/sync/errgroup"
)

const (
	// featuredLimit covers the hero plus the sidebar.
	featuredLimit = 6
	recentLimit   = blog.DefaultRecentLimit
)

type handlers struct {
	publichandler.Base
}

func newHandlers(base publichandler.Base) handlers {
	return handlers{Base: base}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.Localize(w, r)
	view := h.loadView(httpx.RequestContext(r), r)

	meta := h.Site(lang).Page(seo.Page{
		DefaultTitle:  webtemplates.T(loc, "seo.home_title"),
		Description:   webtemplates.T(loc, "seo.home_description"),
		SocialTitle:   webtemplates.T(loc, "seo.home_og_title"),
		SocialSummary: webtemplates.T(loc, "seo.home_og_description"),
		ImageAlt:      webtemplates.T(loc, "seo.og_image_alt"),
		Path:          routepath.Root,
	})
	h.WritePage(w, r, pagerender.Page{
		Lang: lang,
		Loc:  loc,
		Meta: meta,
		Body: webtemplates.HomePage(view, loc),
	})
}

// loadView fetches the featured and recent sections concurrently. A failing
// section is logged and rendered as its own failure card.
func (h handlers) loadView(ctx context.Context, r *http.Request) webtemplates.HomeView {
	var (
		featured, recent       []blog.Post
		featuredErr, recentErr error
	)
	posts := h.Posts()
	if posts == nil {
		return webtemplates.HomeView{SidebarFailed: true}
	}

	var group errgroup.Group
	group.Go(func() error {
		featured, featuredErr = posts.GetFeaturedPosts(ctx, featuredLimit)
		return nil
	})
	group.Go(func() error {
		recent, recentErr = posts.GetRecentPosts(ctx, recentLimit)
		return nil
	})
	_ = group.Wait()

	view := webtemplates.HomeView{}
	if featuredErr != nil {
		h.logSectionError(r, "featured", featuredErr)
		view.SidebarFailed = true
	} else if len(featured) > 0 {
		hero := featured[0]
		view.Hero = &hero
		view.Sidebar = featured[1:]
	}
	if recentErr != nil {
		h.logSectionError(r, "recent", recentErr)
	} else {
		view.Recent = recent
	}
	return view
}

func (h handlers) logSectionError(r *http.Request, section string, err error) {
	h.Logger().Warn("home section unavailable",
		"section", section,
		"request_id", httpx.RequestIDFromRequest(r),
		"error", err,
	)
}
