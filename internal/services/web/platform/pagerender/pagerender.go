// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/beyondui/internal/services/web/platform/httpx"
	"github.com/louisbranch/beyondui/internal/services/web/seo"
	webtemplates "github.com/louisbranch/beyondui/internal/services/web/templates"
)

// Page describes a page response for both full-page and htmx flows.
type Page struct {
	Lang       string
	Loc        webtemplates.Localizer
	Meta       seo.Metadata
	StatusCode int
	Body       templ.Component
	// Fragment is what htmx requests receive instead of the document.
	// Nil falls back to Body.
	Fragment templ.Component
	Now      time.Time
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage renders page into a buffer and writes it with its status. A
// render failure writes a plain 500 and returns the error for logging.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = emptyComponent{}
	}

	ctx := httpx.RequestContext(r)
	w.Header().Add("Vary", "HX-Request")

	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		fragment := page.Fragment
		if fragment == nil {
			fragment = body
		}
		if err := fragment.Render(ctx, &buf); err != nil {
			httpx.WriteError(w, err)
			return err
		}
	} else {
		layout := webtemplates.Layout(pageContext(r, page))
		if err := layout.Render(templ.WithChildren(ctx, body), &buf); err != nil {
			httpx.WriteError(w, err)
			return err
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func pageContext(r *http.Request, page Page) webtemplates.PageContext {
	ctx := webtemplates.PageContext{
		Lang: page.Lang,
		Loc:  page.Loc,
		Meta: page.Meta,
		Now:  page.Now,
	}
	if r != nil && r.URL != nil {
		ctx.CurrentPath = r.URL.Path
		ctx.CurrentQuery = r.URL.RawQuery
	}
	return ctx
}
