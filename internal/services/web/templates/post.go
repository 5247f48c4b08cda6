package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/beyondui/internal/blog"
	"github.com/louisbranch/beyondui/internal/services/web/routepath"
	"github.com/louisbranch/beyondui/internal/services/web/seo"
)

// PostView is the data behind a post detail page. Related is empty when
// related posts could not be loaded.
type PostView struct {
	Post    blog.Post
	Related []blog.Post
}

// PostPage renders one article with its author card and related posts.
func PostPage(view PostView, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		post := view.Post
		h.raw(`<div class="container article-page">`)
		writeBackToBlog(h, loc)

		h.raw(`<header class="article-header">`)
		writeBadge(h, post.CategoryOr(T(loc, "web.card.category_fallback")))
		h.raw(`<h1 class="article-title">`)
		h.text(post.Title)
		h.raw(`</h1><div class="article-meta">`)
		writeAvatar(h, loc, post, "avatar-sm")
		h.raw(`<span class="author-name">`)
		h.text(post.AuthorName)
		h.raw(`</span><time`)
		h.attr("datetime", post.CreatedAt)
		h.raw(">")
		h.text(longDate(post))
		h.raw("</time></div></header>")

		if post.ImageURL != "" {
			h.raw(`<figure class="article-image"><img width="1200" height="600"`)
			h.url("src", post.ImageURL)
			h.attr("alt", T(loc, "web.article.image_alt", post.Title))
			h.raw("></figure>")
		}

		h.raw(`<div class="card"><article class="article-body">`)
		for _, paragraph := range seo.Paragraphs(post.Content) {
			h.raw("<p>")
			h.text(paragraph)
			h.raw("</p>")
		}
		h.raw("</article></div>")

		h.raw(`<div class="card author-card">`)
		writeAvatar(h, loc, post, "avatar-lg")
		h.raw(`<div><h3>`)
		h.text(post.AuthorName)
		h.raw(`</h3><p class="muted">`)
		h.text(T(loc, "web.article.author_role"))
		h.raw("</p></div></div>")

		writeRelatedPosts(h, loc, view.Related)
		h.raw("</div>")
	})
}

func writeBackToBlog(h *htmlWriter, loc Localizer) {
	h.raw(`<a class="back-link"`)
	h.attr("href", routepath.Root)
	h.attr("aria-label", T(loc, "web.article.back_label"))
	h.raw(`><span aria-hidden="true">←</span> `)
	h.text(T(loc, "web.article.back"))
	h.raw("</a>")
}

func writeRelatedPosts(h *htmlWriter, loc Localizer, related []blog.Post) {
	if len(related) == 0 {
		return
	}
	h.raw(`<section class="related" aria-labelledby="related-posts-heading"><h2 id="related-posts-heading">`)
	h.text(T(loc, "web.article.related_heading"))
	h.raw(`</h2><div class="post-grid">`)
	for _, post := range related {
		writePostCard(h, loc, post, T(loc, "web.article.related_label", post.Title))
	}
	h.raw("</div></section>")
}

// PostNotFound renders the page for an id the post source does not know.
func PostNotFound(loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div class="container page centered"><div class="state-card"><h1>`)
		h.text(T(loc, "errors.post_not_found.heading"))
		h.raw(`</h1><p>`)
		h.text(T(loc, "errors.post_not_found.body"))
		h.raw(`</p><p class="muted">`)
		h.text(T(loc, "errors.post_not_found.hint"))
		h.raw(`</p><div class="actions"><a class="button button-primary"`)
		h.attr("href", routepath.Root)
		h.raw(">")
		h.text(T(loc, "errors.post_not_found.back"))
		h.raw(`</a><a class="button button-outline"`)
		h.attr("href", routepath.Root)
		h.raw(">")
		h.text(T(loc, "errors.post_not_found.home"))
		h.raw("</a></div></div></div>")
	})
}

// PostUnavailable renders the error card for a post that failed to load.
// Try Again reloads the post with a fresh fetch.
func PostUnavailable(postID string, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div class="container page centered"><div class="state-card" role="alert"><h1>`)
		h.text(T(loc, "errors.post_error.heading"))
		h.raw(`</h1><p>`)
		h.text(T(loc, "errors.post_error.body"))
		h.raw(`</p><p class="muted">`)
		h.text(T(loc, "errors.post_error.detail"))
		h.raw(`</p><div class="actions"><a class="button button-primary"`)
		h.attr("href", routepath.BlogPostRetry(postID))
		h.raw(">")
		h.text(T(loc, "errors.post_error.retry"))
		h.raw(`</a><a class="button button-outline"`)
		h.attr("href", routepath.Root)
		h.raw(">")
		h.text(T(loc, "errors.post_not_found.back"))
		h.raw(`</a><a class="button button-outline"`)
		h.attr("href", routepath.Root)
		h.raw(">")
		h.text(T(loc, "errors.post_not_found.home"))
		h.raw("</a></div></div></div>")
	})
}
