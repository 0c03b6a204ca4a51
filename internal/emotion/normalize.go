package emotion

import (
	"strings"
	"unicode"
)

// Normalize maps raw comment text to a canonical form: letters are kept and
// lowercased, whitespace is kept as-is, and every other rune becomes a single
// space. The result splits on whitespace into purely alphabetic tokens, so
// the classifier never sees punctuation, digits, or mixed case.
func Normalize(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r):
			return unicode.ToLower(r)
		case unicode.IsSpace(r):
			return r
		default:
			return ' '
		}
	}, text)
}
