package templates

import (
	"context"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/beyondui/internal/services/web/routepath"
	"github.com/louisbranch/beyondui/internal/services/web/seo"
)

// htmxScript pins the htmx release the search and pagination controls use.
const htmxScript = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// Layout renders the document shell around the children in ctx.
func Layout(page PageContext) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		lang := page.Lang
		if lang == "" {
			lang = "en-US"
		}
		h.raw("<!DOCTYPE html>\n<html")
		h.attr("lang", lang)
		h.raw("><head>")
		h.render(ctx, Head(page.Meta))
		h.raw("</head><body>")
		h.raw(`<a href="#main-content" class="skip-link">`)
		h.text(T(page.Loc, "web.skip_to_content"))
		h.raw("</a>")
		h.render(ctx, navbar(page))
		h.raw(`<main id="main-content">`)
		h.render(ctx, templ.GetChildren(ctx))
		h.raw("</main>")
		h.render(ctx, footer(page))
		h.raw("</body></html>")
	})
}

// Head renders the title, meta tags, stylesheet and scripts of a page.
func Head(meta seo.Metadata) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<meta name="theme-color" content="#ffffff">`)
		h.raw("<title>")
		h.text(meta.Title)
		h.raw("</title>")
		metaName(h, "description", meta.Description)
		metaName(h, "keywords", strings.Join(meta.Keywords, ", "))
		metaName(h, "author", strings.Join(meta.Authors, ", "))
		metaName(h, "robots", meta.Robots.Content())
		if meta.Canonical != "" {
			h.raw(`<link rel="canonical"`)
			h.url("href", meta.Canonical)
			h.raw(">")
		}

		og := meta.OpenGraph
		metaProperty(h, "og:type", og.Type)
		metaProperty(h, "og:title", og.Title)
		metaProperty(h, "og:description", og.Description)
		metaProperty(h, "og:url", og.URL)
		metaProperty(h, "og:site_name", og.SiteName)
		metaProperty(h, "og:locale", og.Locale)
		for _, image := range og.Images {
			metaProperty(h, "og:image", image.URL)
			if image.Width > 0 {
				metaProperty(h, "og:image:width", strconv.Itoa(image.Width))
				metaProperty(h, "og:image:height", strconv.Itoa(image.Height))
			}
			metaProperty(h, "og:image:alt", image.Alt)
		}
		metaProperty(h, "article:published_time", og.PublishedTime)
		for _, author := range og.Authors {
			metaProperty(h, "article:author", author)
		}
		for _, tag := range og.Tags {
			metaProperty(h, "article:tag", tag)
		}

		tw := meta.Twitter
		metaName(h, "twitter:card", tw.Card)
		metaName(h, "twitter:title", tw.Title)
		metaName(h, "twitter:description", tw.Description)
		metaName(h, "twitter:creator", tw.Creator)
		for _, image := range tw.Images {
			metaName(h, "twitter:image", image)
		}

		h.raw(`<link rel="icon" href="/static/favicon.svg" type="image/svg+xml">`)
		h.raw(`<link rel="stylesheet" href="/static/app.css">`)
		h.raw(`<script defer crossorigin="anonymous"`)
		h.attr("src", htmxScript)
		h.raw("></script>")
		if meta.StructuredData != "" {
			h.raw(`<script type="application/ld+json">`, meta.StructuredData, "</script>")
		}
	})
}

func metaName(h *htmlWriter, name string, content string) {
	if strings.TrimSpace(content) == "" {
		return
	}
	h.raw("<meta")
	h.attr("name", name)
	h.attr("content", content)
	h.raw(">")
}

func metaProperty(h *htmlWriter, property string, content string) {
	if strings.TrimSpace(content) == "" {
		return
	}
	h.raw("<meta")
	h.attr("property", property)
	h.attr("content", content)
	h.raw(">")
}

func navbar(page PageContext) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<header class="navbar"><div class="container navbar-inner">`)
		h.raw(`<a class="brand"`)
		h.attr("href", routepath.Root)
		h.attr("aria-label", T(page.Loc, "web.nav.brand_label"))
		h.raw(`><span class="brand-mark" aria-hidden="true">B</span><span class="brand-name">`)
		h.text(T(page.Loc, "web.brand"))
		h.raw("</span></a>")

		h.raw(`<nav class="nav-links"`)
		h.attr("aria-label", T(page.Loc, "web.nav.label"))
		h.raw(">")
		writeNavLinks(h, page)
		h.raw("</nav>")

		h.raw(`<div class="nav-actions">`)
		writeLanguageSwitcher(h, page)
		h.raw(`<a class="button button-ghost"`)
		h.attr("href", routepath.Demo)
		h.raw(">")
		h.text(T(page.Loc, "web.nav.demo"))
		h.raw(`</a><a class="button button-primary"`)
		h.attr("href", routepath.GetStarted)
		h.raw(">")
		h.text(T(page.Loc, "web.nav.get_started"))
		h.raw("</a></div>")

		// Small screens get a disclosure menu that needs no script.
		h.raw(`<details class="nav-mobile"><summary>`)
		h.text(T(page.Loc, "web.nav.menu"))
		h.raw(`</summary><nav class="nav-mobile-links"`)
		h.attr("aria-label", T(page.Loc, "web.nav.label"))
		h.raw(">")
		writeNavLinks(h, page)
		h.raw(`<a`)
		h.attr("href", routepath.Demo)
		h.raw(">")
		h.text(T(page.Loc, "web.nav.demo"))
		h.raw(`</a><a`)
		h.attr("href", routepath.GetStarted)
		h.raw(">")
		h.text(T(page.Loc, "web.nav.get_started"))
		h.raw("</a></nav></details>")
		h.raw("</div></header>")
	})
}

func writeNavLinks(h *htmlWriter, page PageContext) {
	for _, link := range navLinks {
		h.raw("<a")
		h.attr("href", link.Href)
		if page.isActive(link.Href) {
			h.raw(` class="active" aria-current="page"`)
		}
		h.raw(">")
		h.text(T(page.Loc, link.Key))
		h.raw("</a>")
	}
}

func writeLanguageSwitcher(h *htmlWriter, page PageContext) {
	options := page.LanguageOptions()
	if len(options) < 2 {
		return
	}
	h.raw(`<ul class="lang-switcher"`)
	h.attr("aria-label", T(page.Loc, "web.nav.language"))
	h.raw(">")
	for _, option := range options {
		h.raw("<li><a")
		h.attr("href", option.URL)
		h.attr("hreflang", option.Tag)
		if option.Active {
			h.raw(` aria-current="true"`)
		}
		h.raw(">")
		h.text(option.Label)
		h.raw("</a></li>")
	}
	h.raw("</ul>")
}

func footer(page PageContext) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<footer class="footer"><div class="container">`)
		h.text(T(page.Loc, "web.footer.copyright", year(page.Now)))
		h.raw("</div></footer>")
	})
}
