package intent

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases the text and folds accented letters onto their base
// letter ("Île-de-France" -> "ile-de-france"). Punctuation, digits and
// whitespace are left untouched.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	lowered := strings.ToLower(text)

	// A transform.Chain keeps internal buffers, so each call gets its own.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		return lowered
	}
	return result
}
