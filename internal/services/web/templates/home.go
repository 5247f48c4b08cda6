package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/beyondui/internal/blog"
	"github.com/louisbranch/beyondui/internal/services/web/routepath"
)

// HomeView is the data behind the homepage. Each section degrades on its
// own: a nil Hero, a failed sidebar or an empty Recent list renders that
// section's failure card while the rest of the page still shows.
type HomeView struct {
	Hero          *blog.Post
	Sidebar       []blog.Post
	SidebarFailed bool
	Recent        []blog.Post
}

// HomePage renders the hero, the featured sidebar and recent posts.
func HomePage(view HomeView, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<section class="container home-hero" aria-labelledby="hero-section">`)
		h.raw(`<h1 class="sr-only" id="hero-section">`)
		h.text(T(loc, "web.home.heading"))
		h.raw(`</h1><div class="hero-grid"><div class="hero-main">`)
		writeHero(h, loc, view.Hero)
		h.raw(`</div><div class="hero-side">`)
		writeFeaturedSidebar(h, loc, view)
		h.raw("</div></div></section>")
		writeRecentPosts(h, loc, view.Recent)
	})
}

func writeHero(h *htmlWriter, loc Localizer, post *blog.Post) {
	if post == nil {
		h.raw(`<div class="hero hero-empty"><p class="muted">`)
		h.text(T(loc, "web.home.hero_unavailable"))
		h.raw("</p></div>")
		return
	}
	h.raw(`<a class="hero-link"`)
	h.attr("href", routepath.BlogPost(post.ID))
	h.attr("aria-label", T(loc, "web.card.featured_read_label", post.Title))
	h.raw(`><article class="hero"><img class="hero-image" fetchpriority="high"`)
	h.url("src", imageOr(post.ImageURL, PlaceholderImage))
	h.attr("alt", T(loc, "web.card.cover_alt", post.Title))
	h.raw(`><div class="hero-overlay"></div><div class="hero-content">`)
	writeBadge(h, post.CategoryOr(T(loc, "web.card.category_fallback")))
	h.raw(`<h2 class="hero-title">`)
	h.text(post.Title)
	h.raw(`</h2><div class="card-meta">`)
	writeAvatar(h, loc, *post, "avatar-md")
	h.raw(`<div><p class="author-name">`)
	h.text(post.AuthorName)
	h.raw(`</p><p><time`)
	h.attr("datetime", post.CreatedAt)
	h.raw(">")
	h.text(shortDate(*post))
	h.raw("</time></p></div></div></div></article></a>")
}

func writeFeaturedSidebar(h *htmlWriter, loc Localizer, view HomeView) {
	if view.SidebarFailed {
		h.raw(`<div class="panel"><p class="muted">`)
		h.text(T(loc, "web.home.featured_unavailable"))
		h.raw("</p></div>")
		return
	}
	if len(view.Sidebar) == 0 {
		return
	}
	h.raw(`<aside class="panel" aria-labelledby="featured-posts-heading">`)
	h.raw(`<h2 id="featured-posts-heading" class="panel-title">`)
	h.text(T(loc, "web.home.featured_heading"))
	h.raw(`</h2><nav`)
	h.attr("aria-label", T(loc, "web.home.featured_list_label"))
	h.raw(`><ul class="featured-list">`)
	for _, post := range view.Sidebar {
		h.raw(`<li><a class="featured-item"`)
		h.attr("href", routepath.BlogPost(post.ID))
		h.attr("aria-label", T(loc, "web.card.read_label", post.Title, post.AuthorName))
		h.raw(`><img class="featured-thumb" loading="lazy"`)
		h.url("src", imageOr(post.ImageURL, PlaceholderImage))
		h.attr("alt", T(loc, "web.card.cover_alt", post.Title))
		h.raw(`><div class="featured-text"><h3>`)
		h.text(post.Title)
		h.raw(`</h3><div class="featured-author">`)
		writeAvatar(h, loc, post, "avatar-xs")
		h.raw("<span>")
		h.text(post.AuthorName)
		h.raw("</span></div></div></a></li>")
	}
	h.raw("</ul></nav></aside>")
}

func writeRecentPosts(h *htmlWriter, loc Localizer, posts []blog.Post) {
	if len(posts) == 0 {
		h.raw(`<div class="container section"><p class="muted">`)
		h.text(T(loc, "web.home.recent_unavailable"))
		h.raw("</p></div>")
		return
	}
	h.raw(`<section class="container section recent" aria-labelledby="recent-posts-heading">`)
	h.raw(`<div class="section-header"><h2 id="recent-posts-heading">`)
	h.text(T(loc, "web.home.recent_heading"))
	h.raw(`</h2><a class="link"`)
	h.attr("href", routepath.Posts)
	h.attr("aria-label", T(loc, "web.home.recent_all_label"))
	h.raw(">")
	h.text(T(loc, "web.home.recent_all"))
	h.raw(`</a></div><div class="post-grid" role="list">`)
	for _, post := range posts {
		h.raw(`<div role="listitem">`)
		writePostCard(h, loc, post, T(loc, "web.card.read_label", post.Title, post.AuthorName))
		h.raw("</div>")
	}
	h.raw("</div></section>")
}
