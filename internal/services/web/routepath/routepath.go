// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	Root            = "/"
	Health          = "/up"
	StaticPrefix    = "/static/"
	Posts           = "/posts"
	PostsPrefix     = "/posts/"
	BlogPrefix      = "/blog/"
	BlogPostPattern = BlogPrefix + "{postID}"
	Sitemap         = "/sitemap.xml"
	Robots          = "/robots.txt"
	About           = "/about"
	Features        = "/features"
	Contact         = "/contact"
	Demo            = "/demo"
	GetStarted      = "/get-started"

	SearchQueryKey = "q"
	PageQueryKey   = "page"
	RetryQueryKey  = "retry"
)

// BlogPost returns the detail route for one post.
func BlogPost(postID string) string {
	return BlogPrefix + escapeSegment(postID)
}

// BlogPostRetry returns the detail route that forces a fresh fetch.
func BlogPostRetry(postID string) string {
	return BlogPost(postID) + "?" + RetryQueryKey + "=1"
}

// PostsIndex returns the posts index route for a search term and page.
// Defaults (blank term, page 1) are omitted from the query.
func PostsIndex(term string, page int) string {
	values := url.Values{}
	if term = strings.TrimSpace(term); term != "" {
		values.Set(SearchQueryKey, term)
	}
	if page > 1 {
		values.Set(PageQueryKey, strconv.Itoa(page))
	}
	if len(values) == 0 {
		return Posts
	}
	return Posts + "?" + values.Encode()
}

// Absolute joins siteURL and an in-site path.
func Absolute(siteURL string, path string) string {
	siteURL = strings.TrimRight(strings.TrimSpace(siteURL), "/")
	if path == "" || path == Root {
		return siteURL + Root
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return siteURL + path
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
