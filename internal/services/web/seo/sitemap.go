package seo

import (
	"encoding/xml"
	"io"
	"strconv"
	"time"

	"github.com/louisbranch/beyondui/internal/blog"
	"github.com/louisbranch/beyondui/internal/services/web/routepath"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq is a sitemap change frequency hint.
type ChangeFreq string

const (
	Daily  ChangeFreq = "daily"
	Weekly ChangeFreq = "weekly"
)

// SitemapEntry is one <url> element.
type SitemapEntry struct {
	Loc        string
	LastMod    time.Time
	ChangeFreq ChangeFreq
	Priority   float64
}

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// SitemapEntries lists the home page, the posts index and one entry per
// post. When the post list could not be loaded (posts is nil and listErr is
// set) only the home entry is returned.
func SitemapEntries(site Site, posts []blog.Post, listErr error, now time.Time) []SitemapEntry {
	home := SitemapEntry{Loc: site.Absolute(routepath.Root), LastMod: now, ChangeFreq: Daily, Priority: 1}
	if listErr != nil {
		return []SitemapEntry{home}
	}
	entries := make([]SitemapEntry, 0, len(posts)+2)
	entries = append(entries,
		home,
		SitemapEntry{Loc: site.Absolute(routepath.Posts), LastMod: now, ChangeFreq: Daily, Priority: 0.9},
	)
	for _, post := range posts {
		entries = append(entries, SitemapEntry{
			Loc:        site.Absolute(routepath.BlogPost(post.ID)),
			LastMod:    post.CreatedTime(),
			ChangeFreq: Weekly,
			Priority:   0.8,
		})
	}
	return entries
}

// WriteSitemap encodes entries as a sitemap.org urlset.
func WriteSitemap(w io.Writer, entries []SitemapEntry) error {
	doc := urlset{Xmlns: sitemapNamespace, URLs: make([]sitemapURL, 0, len(entries))}
	for _, entry := range entries {
		item := sitemapURL{
			Loc:        entry.Loc,
			ChangeFreq: string(entry.ChangeFreq),
			Priority:   strconv.FormatFloat(entry.Priority, 'f', 1, 64),
		}
		if !entry.LastMod.IsZero() {
			item.LastMod = entry.LastMod.UTC().Format(time.RFC3339)
		}
		doc.URLs = append(doc.URLs, item)
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// RobotsTxt allows every crawler and points it at the sitemap.
func RobotsTxt(site Site) string {
	return "User-agent: *\nAllow: /\n\nSitemap: " + site.Absolute(routepath.Sitemap) + "\n"
}
