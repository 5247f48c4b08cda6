package templates

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/beyondui/internal/services/web/routepath"
	"github.com/louisbranch/beyondui/internal/services/web/seo"
)

const (
	appErrorPageTitleNotFoundKey  = "errors.not_found.page_title"
	appErrorPageTitleServerErrKey = "errors.server.page_title"
	appErrorHeadingNotFoundKey    = "errors.not_found.heading"
	appErrorHeadingServerErrKey   = "errors.server.heading"
	appErrorMessageNotFoundKey    = "errors.not_found.body"
	appErrorMessageServerErrKey   = "errors.server.body"
)

// AppErrorPageTitle returns the browser page title for app error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return seo.Title(T(loc, appErrorPageTitleNotFoundKey))
	}
	return seo.Title(T(loc, appErrorPageTitleServerErrKey))
}

func appErrorHeading(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorHeadingNotFoundKey)
	}
	return T(loc, appErrorHeadingServerErrKey)
}

func appErrorMessage(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorMessageNotFoundKey)
	}
	return T(loc, appErrorMessageServerErrKey)
}

func normalizeAppErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// AppErrorState renders the site-wide not-found and server error cards.
// retryURL is where Try Again points on server errors.
func AppErrorState(statusCode int, retryURL string, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		status := normalizeAppErrorStatus(statusCode)
		h.raw(`<div class="container page centered"><div class="state-card">`)
		if status == http.StatusNotFound {
			h.raw(`<div class="status-code" aria-hidden="true">404</div>`)
		}
		h.raw("<h1>")
		h.text(appErrorHeading(status, loc))
		h.raw(`</h1><p class="muted">`)
		h.text(appErrorMessage(status, loc))
		h.raw(`</p><div class="actions">`)
		if status == http.StatusNotFound {
			h.raw(`<a class="button button-primary"`)
			h.attr("href", routepath.Root)
			h.raw(">")
			h.text(T(loc, "errors.not_found.home"))
			h.raw(`</a><a class="button button-outline"`)
			h.attr("href", routepath.Posts)
			h.raw(">")
			h.text(T(loc, "errors.not_found.posts"))
			h.raw("</a>")
		} else {
			if retryURL == "" {
				retryURL = routepath.Root
			}
			h.raw(`<a class="button button-primary"`)
			h.attr("href", retryURL)
			h.raw(">")
			h.text(T(loc, "errors.server.retry"))
			h.raw(`</a><a class="button button-outline"`)
			h.attr("href", routepath.Root)
			h.raw(">")
			h.text(T(loc, "errors.server.home"))
			h.raw("</a>")
		}
		h.raw("</div></div></div>")
	})
}
