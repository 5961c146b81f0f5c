// Package text holds the string helpers shared by the search and tag filters:
// diacritic folding, capitalization and locale-aware sorting.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningMarks is the Combining Diacritical Marks block stripped after NFD.
var combiningMarks = runes.In(&unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
})

// parentheses appear in the catalog descriptions and ingredient names.
var parentheses = runes.Predicate(func(r rune) bool {
	return r == '(' || r == ')'
})

// Normalize decomposes s, drops combining diacritics and removes literal
// parentheses. It never fails; the empty string maps to itself.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	if isPlainASCII(s) {
		return strings.NewReplacer("(", "", ")", "").Replace(s)
	}

	t := transform.Chain(norm.NFD, runes.Remove(combiningMarks), runes.Remove(parentheses))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// CapitalizeFirstLetter upper-cases the first rune of s and lower-cases the rest.
func CapitalizeFirstLetter(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
