package patterns

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases a comment and strips diacritical marks so that the
// rule tables match both "não consigo" and "nao consigo". Punctuation is
// preserved: the general-question rule needs the trailing "?".
func Normalize(text string) string {
	return removeAccents(strings.ToLower(strings.TrimSpace(text)))
}

// removeAccents strips diacritical marks from a string.
func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
