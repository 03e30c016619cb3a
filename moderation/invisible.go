package moderation

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// invisible covers format characters (zero-width spaces and joiners, bidi marks),
// control characters and private use code points.
var invisible = runes.Predicate(func(r rune) bool {
	return unicode.In(r, unicode.Cf, unicode.Cc, unicode.Co)
})

// StripInvisible removes characters the client would not render and collapses runs of spaces.
func StripInvisible(text string) string {
	stripped, _, err := transform.String(runes.Remove(invisible), text)
	if err != nil {
		return text
	}
	return strings.Join(strings.Fields(stripped), " ")
}
