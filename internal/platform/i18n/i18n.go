// Package i18n defines the language tags the blog is translated into and
// how arbitrary tags collapse onto them.
package i18n

import (
	"strings"

	"github.com/louisbranch/beyondui/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
)

var (
	defaultTag    = language.MustParse(catalog.BaseLocale)
	supportedTags = loadSupportedTags()
)

// DefaultTag returns the language used when nothing better matches.
func DefaultTag() language.Tag {
	return defaultTag
}

// SupportedTags returns the catalog locales with the default first.
func SupportedTags() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// ParseTag parses value and reports whether it maps onto a supported locale.
// Other regions of a supported language resolve to that locale.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultTag, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return defaultTag, false
	}
	return supportedFor(tag)
}

// MatchTags picks the first preference that maps onto a supported locale.
func MatchTags(tags []language.Tag) language.Tag {
	for _, tag := range tags {
		if supported, ok := supportedFor(tag); ok {
			return supported
		}
	}
	return defaultTag
}

func supportedFor(tag language.Tag) (language.Tag, bool) {
	for _, supported := range supportedTags {
		if tag == supported {
			return supported, true
		}
	}
	base, _ := tag.Base()
	for _, supported := range supportedTags {
		if supportedBase, _ := supported.Base(); supportedBase == base {
			return supported, true
		}
	}
	return defaultTag, false
}

func loadSupportedTags() []language.Tag {
	tags := []language.Tag{defaultTag}
	for _, locale := range catalog.Default().Locales() {
		if locale == catalog.BaseLocale {
			continue
		}
		tags = append(tags, language.MustParse(locale))
	}
	return tags
}
