// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	module "github.com/louisbranch/beyondui/internal/services/web/module"
	apperrors "github.com/louisbranch/beyondui/internal/services/web/platform/errors"
	"github.com/louisbranch/beyondui/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/beyondui/internal/services/web/platform/i18n"
	"github.com/louisbranch/beyondui/internal/services/web/platform/pagerender"
	"github.com/louisbranch/beyondui/internal/services/web/seo"
	webtemplates "github.com/louisbranch/beyondui/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webtemplates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes the localized not-found or server error page for
// full-page and htmx requests. Error pages are never indexed.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}

	loc, lang := webi18n.ResolveLocalizer(w, r)
	descriptionKey := "seo.default_description"
	retryURL := ""
	if statusCode == http.StatusNotFound {
		descriptionKey = "seo.not_found_description"
	} else if r != nil && r.URL != nil {
		retryURL = r.URL.RequestURI()
	}

	site := seo.NewSite(deps.SiteURL, lang)
	err := pagerender.WritePage(w, r, pagerender.Page{
		Lang:       lang,
		Loc:        loc,
		Meta:       site.NotFound(webtemplates.AppErrorPageTitle(statusCode, loc), webtemplates.T(loc, descriptionKey)),
		StatusCode: statusCode,
		Body:       webtemplates.AppErrorState(statusCode, retryURL, loc),
		Now:        deps.Clock(),
	})
	if err != nil {
		deps.Log().Error("render error page failed", "path", requestPath(r), "request_id", httpx.RequestIDFromRequest(r), "error", err)
	}
}

// WriteModuleError writes a module-safe localized error response. Server
// errors are logged; clients only ever see the localized message.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		deps.Log().Error("request failed",
			"path", requestPath(r),
			"request_id", httpx.RequestIDFromRequest(r),
			"status", statusCode,
			"error", err,
		)
	}
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, deps)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return r.URL.Path
}
