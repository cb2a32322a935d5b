package service

import (
	"strings"
	"unicode/utf8"
)

// sanitizeText drops invalid UTF-8 and collapses runs of whitespace. Listing
// titles are often scraped and arrive with both.
func sanitizeText(s string) string {
	if !utf8.ValidString(s) {
		var b strings.Builder
		b.Grow(len(s))
		for len(s) > 0 {
			r, size := utf8.DecodeRuneInString(s)
			if r == utf8.RuneError && size == 1 {
				s = s[1:]
				continue
			}
			b.WriteRune(r)
			s = s[size:]
		}
		s = b.String()
	}
	return strings.Join(strings.Fields(s), " ")
}
