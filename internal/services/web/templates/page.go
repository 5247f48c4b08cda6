package templates

import (
	"time"

	"github.com/louisbranch/beyondui/internal/services/web/platform/i18n"
	"github.com/louisbranch/beyondui/internal/services/web/routepath"
	"github.com/louisbranch/beyondui/internal/services/web/seo"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	Meta         seo.Metadata
	Now          time.Time
}

// LanguageOptions returns the switcher entries for the current page.
func (p PageContext) LanguageOptions() []i18n.LanguageOption {
	return i18n.LanguageOptions(p.Lang, p.CurrentPath, p.CurrentQuery, func(key string) string {
		return T(p.Loc, key)
	})
}

type navLink struct {
	Href string
	Key  string
}

var navLinks = []navLink{
	{Href: routepath.Root, Key: "web.nav.home"},
	{Href: routepath.About, Key: "web.nav.about"},
	{Href: routepath.Features, Key: "web.nav.features"},
	{Href: routepath.Posts, Key: "web.nav.posts"},
	{Href: routepath.Contact, Key: "web.nav.contact"},
}

func (p PageContext) isActive(href string) bool {
	if href == routepath.Root {
		return p.CurrentPath == routepath.Root
	}
	return p.CurrentPath == href
}
