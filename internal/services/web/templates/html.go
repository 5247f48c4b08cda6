package templates

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/beyondui/internal/blog"
)

// PlaceholderImage stands in for missing cover and avatar images.
const PlaceholderImage = "/static/placeholder.svg"

// htmlWriter writes markup and keeps the first write error so components
// can be written as straight-line code.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(parts ...string) {
	for _, part := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, part)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) attr(name string, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// url writes a URL attribute. Values from the post source pass through
// templ's sanitizer so only safe schemes survive.
func (h *htmlWriter) url(name string, value string) {
	h.attr(name, string(templ.URL(value)))
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func component(fn func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		fn(ctx, h)
		return h.err
	})
}

func imageOr(src string, fallback string) string {
	if strings.TrimSpace(src) == "" {
		return fallback
	}
	return src
}

// shortDate formats a card date, e.g. "Mar 14, 2025".
func shortDate(post blog.Post) string {
	return formatDate(post, "Jan 2, 2006")
}

// longDate formats an article date, e.g. "March 14, 2025".
func longDate(post blog.Post) string {
	return formatDate(post, "January 2, 2006")
}

func formatDate(post blog.Post, layout string) string {
	created := post.CreatedTime()
	if created.IsZero() {
		return post.CreatedAt
	}
	return created.Format(layout)
}

func year(now time.Time) int {
	if now.IsZero() {
		now = time.Now()
	}
	return now.Year()
}
