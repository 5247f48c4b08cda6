// Package seo builds document metadata, JSON-LD structured data and the
// crawler endpoints (sitemap, robots) for the blog.
package seo

import (
	"fmt"
	"strings"

	"github.com/louisbranch/beyondui/internal/blog"
	"github.com/louisbranch/beyondui/internal/services/web/routepath"
)

const (
	SiteName       = "Beyond UI Blog"
	Publisher      = "Beyond UI"
	TitleTemplate  = "%s | " + SiteName
	TwitterCreator = "@beyondui"
	TwitterCard    = "summary_large_image"

	// DefaultImagePath is the site-wide Open Graph image.
	DefaultImagePath = "/static/og-image.png"
	LogoPath         = "/static/logo.png"
	ImageWidth       = 1200
	ImageHeight      = 630

	// DescriptionLength is the maximum meta description length in characters.
	DescriptionLength = 160
)

// defaultKeywords apply to every page without its own keyword list.
var defaultKeywords = []string{"blog", "web development", "design", "technology", "tutorials", "Go", "htmx"}

// Robots is the robots meta directive.
type Robots struct {
	Index  bool
	Follow bool
}

// Content renders the directive as a meta content value.
func (r Robots) Content() string {
	index, follow := "noindex", "nofollow"
	if r.Index {
		index = "index"
	}
	if r.Follow {
		follow = "follow"
	}
	if r.Index && r.Follow {
		return index + ", " + follow + ", max-image-preview:large, max-snippet:-1, max-video-preview:-1"
	}
	return index + ", " + follow
}

// Image is an Open Graph image.
type Image struct {
	URL    string
	Width  int
	Height int
	Alt    string
}

// OpenGraph holds og: properties.
type OpenGraph struct {
	Type          string
	Title         string
	Description   string
	URL           string
	SiteName      string
	Locale        string
	Images        []Image
	PublishedTime string
	Authors       []string
	Tags          []string
}

// Twitter holds twitter: card properties.
type Twitter struct {
	Card        string
	Title       string
	Description string
	Creator     string
	Images      []string
}

// Metadata is everything rendered into a page's head.
type Metadata struct {
	Title       string
	Description string
	Keywords    []string
	Authors     []string
	Canonical   string
	Robots      Robots
	OpenGraph   OpenGraph
	Twitter     Twitter
	// StructuredData is a marshaled JSON-LD document, already safe to embed
	// in a script element.
	StructuredData string
}

// Page is the localized copy a page contributes to its metadata.
type Page struct {
	// Title is the page's own title; it is wrapped in TitleTemplate.
	// A blank title uses DefaultTitle verbatim.
	Title         string
	DefaultTitle  string
	Description   string
	SocialTitle   string
	SocialSummary string
	ImageAlt      string
	Path          string
}

// Site builds metadata for one deployment.
type Site struct {
	URL    string
	Locale string
}

// NewSite returns a Site rooted at siteURL. lang is a BCP 47 tag such as
// "pt-BR"; Open Graph wants it as "pt_BR".
func NewSite(siteURL string, lang string) Site {
	locale := strings.ReplaceAll(strings.TrimSpace(lang), "-", "_")
	if locale == "" {
		locale = "en_US"
	}
	return Site{URL: strings.TrimRight(strings.TrimSpace(siteURL), "/"), Locale: locale}
}

// Absolute returns the absolute URL of an in-site path. Values that are
// already absolute are returned unchanged.
func (s Site) Absolute(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return routepath.Absolute(s.URL, path)
}

// Title applies the title template to a page title.
func Title(page string) string {
	page = strings.TrimSpace(page)
	if page == "" {
		return SiteName
	}
	return fmt.Sprintf(TitleTemplate, page)
}

// Page returns indexable metadata for a static page.
func (s Site) Page(page Page) Metadata {
	title := page.DefaultTitle
	if strings.TrimSpace(page.Title) != "" {
		title = Title(page.Title)
	}
	socialTitle := firstNonBlank(page.SocialTitle, page.DefaultTitle, title)
	socialSummary := firstNonBlank(page.SocialSummary, page.Description)
	canonical := s.Absolute(page.Path)
	return Metadata{
		Title:       title,
		Description: page.Description,
		Keywords:    defaultKeywords,
		Authors:     []string{Publisher + " Team"},
		Canonical:   canonical,
		Robots:      Robots{Index: true, Follow: true},
		OpenGraph: OpenGraph{
			Type:        "website",
			Title:       socialTitle,
			Description: socialSummary,
			URL:         canonical,
			SiteName:    SiteName,
			Locale:      s.Locale,
			Images: []Image{{
				URL:    s.Absolute(DefaultImagePath),
				Width:  ImageWidth,
				Height: ImageHeight,
				Alt:    page.ImageAlt,
			}},
		},
		Twitter: Twitter{
			Card:        TwitterCard,
			Title:       socialTitle,
			Description: socialSummary,
			Creator:     TwitterCreator,
			Images:      []string{s.Absolute(DefaultImagePath)},
		},
	}
}

// NotFound returns non-indexable metadata for missing pages. The title is
// used verbatim.
func (s Site) NotFound(title string, description string) Metadata {
	return Metadata{
		Title:       title,
		Description: description,
		Robots:      Robots{},
		OpenGraph: OpenGraph{
			Type:     "website",
			Title:    title,
			SiteName: SiteName,
			Locale:   s.Locale,
		},
	}
}

// Post returns article metadata and structured data for a post.
// imageAlt is the localized alternative text of the cover image.
func (s Site) Post(post blog.Post, imageAlt string) Metadata {
	description := Description(post.Content)
	canonical := s.Absolute(routepath.BlogPost(post.ID))
	image := strings.TrimSpace(post.ImageURL)

	meta := Metadata{
		Title:       Title(post.Title),
		Description: description,
		Keywords:    compact(post.Category, "blog", "article", post.AuthorName),
		Authors:     compact(post.AuthorName),
		Canonical:   canonical,
		Robots:      Robots{Index: true, Follow: true},
		OpenGraph: OpenGraph{
			Type:          "article",
			Title:         post.Title,
			Description:   description,
			URL:           canonical,
			SiteName:      SiteName,
			Locale:        s.Locale,
			PublishedTime: post.CreatedAt,
			Authors:       compact(post.AuthorName),
			Tags:          compact(post.Category),
		},
		Twitter: Twitter{
			Card:        TwitterCard,
			Title:       post.Title,
			Description: description,
			Creator:     TwitterCreator,
		},
	}
	if image != "" {
		meta.OpenGraph.Images = []Image{{URL: image, Width: ImageWidth, Height: ImageHeight, Alt: imageAlt}}
		meta.Twitter.Images = []string{image}
	}
	if data, err := BlogPosting(s, post); err == nil {
		meta.StructuredData = string(data)
	}
	return meta
}

func compact(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			out = append(out, value)
		}
	}
	return out
}

func firstNonBlank(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
