package seo

import (
	"encoding/json"
	"strings"

	"github.com/louisbranch/beyondui/internal/blog"
	"github.com/louisbranch/beyondui/internal/services/web/routepath"
)

type jsonLDImage struct {
	Type   string `json:"@type"`
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

type jsonLDPerson struct {
	Type  string `json:"@type"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type jsonLDOrganization struct {
	Type string      `json:"@type"`
	Name string      `json:"name"`
	Logo jsonLDImage `json:"logo"`
}

type jsonLDWebPage struct {
	Type string `json:"@type"`
	ID   string `json:"@id"`
}

type blogPosting struct {
	Context          string             `json:"@context"`
	Type             string             `json:"@type"`
	Headline         string             `json:"headline"`
	Description      string             `json:"description"`
	Image            *jsonLDImage       `json:"image,omitempty"`
	Author           jsonLDPerson       `json:"author"`
	Publisher        jsonLDOrganization `json:"publisher"`
	DatePublished    string             `json:"datePublished,omitempty"`
	DateModified     string             `json:"dateModified,omitempty"`
	ArticleSection   string             `json:"articleSection,omitempty"`
	MainEntityOfPage jsonLDWebPage      `json:"mainEntityOfPage"`
}

// BlogPosting marshals the schema.org BlogPosting document for post.
// encoding/json escapes <, > and &, so the result can be placed inside a
// script element as is.
func BlogPosting(site Site, post blog.Post) ([]byte, error) {
	description, _ := flatExcerpt(post.Content)
	doc := blogPosting{
		Context:     "https://schema.org",
		Type:        "BlogPosting",
		Headline:    post.Title,
		Description: description,
		Author: jsonLDPerson{
			Type:  "Person",
			Name:  post.AuthorName,
			Image: post.AuthorImageURL,
		},
		Publisher: jsonLDOrganization{
			Type: "Organization",
			Name: SiteName,
			Logo: jsonLDImage{Type: "ImageObject", URL: site.Absolute(LogoPath)},
		},
		DatePublished:  post.CreatedAt,
		DateModified:   post.CreatedAt,
		ArticleSection: post.Category,
		MainEntityOfPage: jsonLDWebPage{
			Type: "WebPage",
			ID:   site.Absolute(routepath.BlogPost(post.ID)),
		},
	}
	if image := strings.TrimSpace(post.ImageURL); image != "" {
		doc.Image = &jsonLDImage{Type: "ImageObject", URL: image, Width: ImageWidth, Height: ImageHeight}
	}
	return json.Marshal(doc)
}
