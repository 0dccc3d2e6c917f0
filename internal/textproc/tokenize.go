// file: internal/textproc/tokenize.go
// version: 1.0.0
// guid: 1129a644-8715-43e1-ab80-35f9f74e7a2a

package textproc

import "strings"

// Token is a whitespace-delimited unit of normalized text. Position is the
// token's ordinal in the input sequence; it keeps matching reproducible but
// carries no matching semantics.
type Token struct {
	Text     string
	Position int
}

// Tokenize splits already-normalized text on whitespace. The returned slice
// is finite and safe to iterate any number of times.
//
// Tokenization is single-word: a canonical name spanning multiple words can
// never be produced as one token. Known limitation, see README.
func Tokenize(normalizedText string) []Token {
	fields := strings.Fields(normalizedText)
	if len(fields) == 0 {
		return nil
	}
	tokens := make([]Token, len(fields))
	for i, f := range fields {
		tokens[i] = Token{Text: f, Position: i}
	}
	return tokens
}
