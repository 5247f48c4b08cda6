package templates

import (
	"github.com/louisbranch/beyondui/internal/blog"
	"github.com/louisbranch/beyondui/internal/services/web/routepath"
	"github.com/louisbranch/beyondui/internal/services/web/seo"
)

// cardExcerptLength is how much post text a card teaser shows.
const cardExcerptLength = 100

// writePostCard renders the grid card shared by the recent posts section,
// the posts index and related posts.
func writePostCard(h *htmlWriter, loc Localizer, post blog.Post, label string) {
	h.raw(`<article class="card post-card"><a class="card-link"`)
	h.attr("href", routepath.BlogPost(post.ID))
	h.attr("aria-label", label)
	h.raw(`><div class="card-cover"><img loading="lazy"`)
	h.url("src", imageOr(post.ImageURL, PlaceholderImage))
	h.attr("alt", T(loc, "web.card.cover_alt", post.Title))
	h.raw(`></div><div class="card-body">`)
	writeBadge(h, post.CategoryOr(T(loc, "web.card.category_fallback")))
	h.raw(`<h3 class="card-title">`)
	h.text(post.Title)
	h.raw(`</h3><p class="card-excerpt">`)
	h.text(seo.Excerpt(post.Content, cardExcerptLength))
	h.raw(`</p><div class="card-meta">`)
	writeAvatar(h, loc, post, "avatar-sm")
	h.raw(`<div><p class="author-name">`)
	h.text(post.AuthorName)
	h.raw(`</p><p class="muted"><time`)
	h.attr("datetime", post.CreatedAt)
	h.raw(">")
	h.text(shortDate(post))
	h.raw("</time></p></div></div></div></a></article>")
}

func writeBadge(h *htmlWriter, text string) {
	if text == "" {
		return
	}
	h.raw(`<span class="badge">`)
	h.text(text)
	h.raw("</span>")
}

// writeAvatar renders the author picture with the initials underneath, so
// the initials show when the image is missing or fails to load.
func writeAvatar(h *htmlWriter, loc Localizer, post blog.Post, size string) {
	h.raw(`<span class="avatar `, size, `"><span class="avatar-fallback" aria-hidden="true">`)
	h.text(post.AuthorInitials())
	h.raw("</span>")
	if post.AuthorImageURL != "" {
		h.raw(`<img loading="lazy" onerror="this.remove()"`)
		h.url("src", post.AuthorImageURL)
		h.attr("alt", T(loc, "web.card.author_alt", post.AuthorName))
		h.raw(">")
	}
	h.raw("</span>")
}

func writeSkeletonCards(h *htmlWriter, count int) {
	for range count {
		h.raw(`<div class="card skeleton-card" aria-hidden="true">`)
		h.raw(`<div class="skeleton skeleton-cover"></div><div class="card-body">`)
		h.raw(`<div class="skeleton skeleton-line w-16"></div>`)
		h.raw(`<div class="skeleton skeleton-line w-full"></div>`)
		h.raw(`<div class="skeleton skeleton-line w-3-4"></div>`)
		h.raw(`<div class="card-meta"><div class="skeleton skeleton-circle"></div>`)
		h.raw(`<div class="skeleton skeleton-line w-20"></div></div>`)
		h.raw("</div></div>")
	}
}
