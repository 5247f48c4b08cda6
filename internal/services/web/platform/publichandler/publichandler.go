// Package publichandler provides a shared base for web module handlers.
// It centralizes error handling, localization, and page rendering that would
// otherwise be duplicated across modules.
package publichandler

import (
	"log/slog"
	"net/http"
	"time"

	module "github.com/louisbranch/beyondui/internal/services/web/module"
	"github.com/louisbranch/beyondui/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/beyondui/internal/services/web/platform/i18n"
	"github.com/louisbranch/beyondui/internal/services/web/platform/pagerender"
	"github.com/louisbranch/beyondui/internal/services/web/platform/weberror"
	"github.com/louisbranch/beyondui/internal/services/web/seo"
	webtemplates "github.com/louisbranch/beyondui/internal/services/web/templates"
)

// Base provides shared error handling and page rendering. Embed it in
// handler structs to get WritePage, WriteNotFound and WriteError.
type Base struct {
	deps module.Dependencies
}

// NewBase builds a handler base over the shared module dependencies.
func NewBase(deps module.Dependencies) Base {
	return Base{deps: deps}
}

// Posts returns the post reader modules render from.
func (b Base) Posts() module.PostReader {
	return b.deps.Posts
}

// Logger returns the module logger.
func (b Base) Logger() *slog.Logger {
	return b.deps.Log()
}

// Now returns the current time from the module clock.
func (b Base) Now() time.Time {
	return b.deps.Clock()
}

// Localize resolves the request printer and language.
func (b Base) Localize(w http.ResponseWriter, r *http.Request) (webtemplates.Localizer, string) {
	return webi18n.ResolveLocalizer(w, r)
}

// Site returns the metadata builder for lang.
func (b Base) Site(lang string) seo.Site {
	return seo.NewSite(b.deps.SiteURL, lang)
}

// WritePage renders page, filling the clock when unset.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if page.Now.IsZero() {
		page.Now = b.Now()
	}
	if err := pagerender.WritePage(w, r, page); err != nil {
		b.Logger().Error("render page failed",
			"path", r.URL.Path,
			"request_id", httpx.RequestIDFromRequest(r),
			"error", err,
		)
	}
}

// WriteNotFound renders the localized 404 page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b.deps)
}

// WriteError renders a user-safe error response: error pages for not-found
// and server errors, plain-text status messages for everything else.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b.deps)
}
