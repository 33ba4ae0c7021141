package match

import (
	"strings"
	"unicode"
)

// Normalize prepares a name for comparison: it is lower-cased and
// separators (_, -, spaces, dots) are removed, so "UInt_32" and "uint32"
// normalize alike.
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}
