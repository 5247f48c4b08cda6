package templates

import (
	"context"
	"fmt"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/beyondui/internal/listing"
	"github.com/louisbranch/beyondui/internal/services/web/routepath"
)

const (
	postResultsID  = "post-results"
	postsLoadingID = "posts-loading"
)

// searchTrigger fires the search request once typing has paused for the
// listing debounce window.
var searchTrigger = fmt.Sprintf("input changed delay:%dms, search", listing.SearchDebounce.Milliseconds())

// PostsPage renders the searchable, paginated posts index.
func PostsPage(view listing.View, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="container page">`)
		h.raw(`<div class="page-header"><h1>`)
		h.text(T(loc, "web.posts.heading"))
		h.raw(`</h1><p class="muted">`)
		h.text(T(loc, "web.posts.discover", view.TotalPosts))
		h.raw("</p></div>")

		h.raw(`<form class="search" role="search" method="get"`)
		h.attr("action", routepath.Posts)
		h.raw(`><label for="post-search" class="sr-only">`)
		h.text(T(loc, "web.posts.search_label"))
		h.raw(`</label><input id="post-search" type="search" autocomplete="off"`)
		h.attr("name", routepath.SearchQueryKey)
		h.attr("value", view.State.Term)
		h.attr("placeholder", T(loc, "web.posts.search_placeholder"))
		h.attr("hx-get", routepath.Posts)
		h.attr("hx-trigger", searchTrigger)
		writeResultsTarget(h)
		h.raw(`><button type="submit" class="sr-only">`)
		h.text(T(loc, "web.posts.search_submit"))
		h.raw("</button></form>")

		h.raw(`<div class="htmx-indicator post-grid"`)
		h.attr("id", postsLoadingID)
		h.attr("aria-label", T(loc, "web.posts.loading"))
		h.raw(">")
		writeSkeletonCards(h, listing.DefaultPageSize)
		h.raw("</div>")

		h.render(ctx, PostResults(view, loc))
		h.raw("</div>")
	})
}

// PostResults renders the results block that htmx swaps on search and
// page changes.
func PostResults(view listing.View, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		page := view.Page
		h.raw(`<div aria-live="polite"`)
		h.attr("id", postResultsID)
		h.raw(`><p class="results-info muted">`)
		if view.Searching() {
			h.text(Plural(loc, "web.posts.results", page.TotalItems, page.TotalItems, view.State.Term))
		} else {
			h.text(T(loc, "web.posts.range", page.Start, page.End, page.TotalItems))
		}
		h.raw("</p>")

		if len(page.Items) == 0 {
			writeEmptyResults(h, loc, view.Searching())
			h.raw("</div>")
			return
		}

		h.raw(`<div class="post-grid">`)
		for _, post := range page.Items {
			writePostCard(h, loc, post, T(loc, "web.card.read_label", post.Title, post.AuthorName))
		}
		h.raw("</div>")
		writePagination(h, loc, view)
		h.raw("</div>")
	})
}

// PostsUnavailable renders the index error card.
func PostsUnavailable(loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div class="container page centered"><div class="state-card" role="alert"><h1 class="text-danger">`)
		h.text(T(loc, "web.posts.error_heading"))
		h.raw(`</h1><p class="muted">`)
		h.text(T(loc, "web.posts.error_body"))
		h.raw("</p></div></div>")
	})
}

func writeEmptyResults(h *htmlWriter, loc Localizer, searching bool) {
	h.raw(`<div class="empty-state"><h3>`)
	h.text(T(loc, "web.posts.empty_heading"))
	h.raw("</h3><p>")
	h.text(T(loc, "web.posts.empty_body"))
	h.raw("</p>")
	if searching {
		h.raw(`<a class="button button-outline"`)
		writeResultsLink(h, routepath.Posts)
		h.raw(">")
		h.text(T(loc, "web.posts.clear_search"))
		h.raw("</a>")
	}
	h.raw("</div>")
}

func writePagination(h *htmlWriter, loc Localizer, view listing.View) {
	page := view.Page
	if page.TotalPages <= 1 {
		return
	}
	term := view.State.Term
	h.raw(`<nav class="pagination"`)
	h.attr("aria-label", T(loc, "web.posts.pagination_label"))
	h.raw(">")

	writePageStep(h, T(loc, "web.posts.prev"), "‹", page.HasPrev(), routepath.PostsIndex(term, page.Number-1))
	for _, link := range view.Links {
		if link.Ellipsis {
			h.raw(`<span class="pagination-gap" aria-hidden="true">...</span>`)
			continue
		}
		number := strconv.Itoa(link.Number)
		if link.Current {
			h.raw(`<span class="button button-primary page-number" aria-current="page"`)
			h.attr("aria-label", T(loc, "web.posts.page_label", link.Number))
			h.raw(">", number, "</span>")
			continue
		}
		h.raw(`<a class="button button-outline page-number"`)
		writeResultsLink(h, routepath.PostsIndex(term, link.Number))
		h.attr("aria-label", T(loc, "web.posts.page_label", link.Number))
		h.raw(">", number, "</a>")
	}
	writePageStep(h, T(loc, "web.posts.next"), "›", page.HasNext(), routepath.PostsIndex(term, page.Number+1))
	h.raw("</nav>")
}

func writePageStep(h *htmlWriter, label string, glyph string, enabled bool, href string) {
	if !enabled {
		h.raw(`<span class="button button-outline page-step" aria-disabled="true"`)
		h.attr("aria-label", label)
		h.raw(">", glyph, "</span>")
		return
	}
	h.raw(`<a class="button button-outline page-step"`)
	writeResultsLink(h, href)
	h.attr("aria-label", label)
	h.raw(">", glyph, "</a>")
}

// writeResultsLink writes href plus the htmx attributes that load it into
// the results block instead of navigating.
func writeResultsLink(h *htmlWriter, href string) {
	h.attr("href", href)
	h.attr("hx-get", href)
	writeResultsTarget(h)
}

func writeResultsTarget(h *htmlWriter) {
	h.attr("hx-target", "#"+postResultsID)
	h.attr("hx-swap", "outerHTML show:window:top")
	h.attr("hx-push-url", "true")
	h.attr("hx-indicator", "#"+postsLoadingID)
}
