// file: internal/textproc/normalize.go
// version: 1.0.0
// guid: 0881ddae-b37c-4b90-abde-ec07eefaa4ca

package textproc

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// diacriticFold decomposes characters and drops combining marks, so that
// "Ibuprofén" normalizes the same as "Ibuprofen". OCR output for printed
// packaging is frequently inconsistent about accents.
var diacriticFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizer canonicalizes raw extracted text: lower-case, diacritics folded,
// punctuation stripped except for an allow-list of characters that legitimately
// appear inside medication names, whitespace runs collapsed to single spaces.
type Normalizer struct {
	keep map[rune]bool
}

// NewNormalizer builds a Normalizer that retains the given punctuation runes.
// With no arguments only hyphens are kept (e.g. "co-amoxiclav").
func NewNormalizer(keep ...rune) *Normalizer {
	if len(keep) == 0 {
		keep = []rune{'-'}
	}
	m := make(map[rune]bool, len(keep))
	for _, r := range keep {
		m[r] = true
	}
	return &Normalizer{keep: m}
}

// Normalize is a total function: any input, including empty, yields a
// normalized string and never fails.
func (n *Normalizer) Normalize(text string) string {
	text = strings.ToLower(text)
	if folded, _, err := transform.String(diacriticFold, text); err == nil {
		text = folded
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case n.keep[r]:
			b.WriteRune(r)
		default:
			// Punctuation and symbols act as token separators.
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Normalize applies the default Normalizer (hyphens retained).
func Normalize(text string) string {
	return defaultNormalizer.Normalize(text)
}

var defaultNormalizer = NewNormalizer()

// HasAlphabetic reports whether s contains at least one letter. Extracted
// text that normalizes to digits and separators only carries no candidate
// medication names.
func HasAlphabetic(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
