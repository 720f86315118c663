// Package search provides lexical lookup over item text, tolerant of Arabic
// diacritics and letter variants.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// arabicFolds unifies letters commonly written interchangeably.
var arabicFolds = strings.NewReplacer(
	"ٱ", "ا",
	"ى", "ي",
	"ة", "ه",
	"ـ", "",
)

// Normalize strips combining marks (tashkeel, hamza carriers), folds letter
// variants, collapses whitespace, and lowercases s.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	out = arabicFolds.Replace(out)
	return strings.ToLower(strings.Join(strings.Fields(out), " "))
}
