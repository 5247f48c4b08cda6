package templates

import (
	platformi18n "github.com/louisbranch/beyondui/internal/platform/i18n"
	"github.com/louisbranch/beyondui/internal/services/web/platform/i18n"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

var basePrinter = i18n.Printer(platformi18n.DefaultTag())

// T translates key. A nil loc renders the base locale, so components used
// outside a request still show readable copy.
func T(loc Localizer, key message.Reference, args ...any) string {
	keyString, ok := key.(string)
	if !ok {
		if loc == nil {
			return ""
		}
		return loc.Sprintf(key, args...)
	}
	if loc == nil {
		loc = basePrinter
	}
	return loc.Sprintf(keyString, args...)
}

// Plural picks the _one or _other variant of key for count.
func Plural(loc Localizer, key string, count int, args ...any) string {
	variant := key + "_other"
	if count == 1 {
		variant = key + "_one"
	}
	return T(loc, variant, args...)
}
