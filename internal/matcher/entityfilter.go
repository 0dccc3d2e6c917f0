// file: internal/matcher/entityfilter.go
// version: 1.0.0
// guid: e29ecd58-fd03-453f-8d33-f99e251a42c5

package matcher

import (
	"strings"

	"github.com/medboxlabs/medbox-reader/internal/textproc"
)

// EntitySpan is a named-entity annotation produced by an external NLP
// collaborator: the surface text of the entity and its label (ORG, PRODUCT,
// ...).
type EntitySpan struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// EntityFilter narrows the token stream to tokens that occur inside an
// entity span with an accepted label. It is strictly opt-in: with no spans
// supplied every token passes through, so the filter never has to be wired
// for the pipeline to be correct.
type EntityFilter struct {
	labels map[string]bool
}

// NewEntityFilter accepts the entity labels considered relevant. Labels are
// compared case-insensitively. An empty label set accepts every label.
func NewEntityFilter(labels ...string) *EntityFilter {
	m := make(map[string]bool, len(labels))
	for _, l := range labels {
		m[strings.ToUpper(strings.TrimSpace(l))] = true
	}
	return &EntityFilter{labels: m}
}

// Filter returns the tokens overlapping at least one accepted span. Token
// order is preserved. A nil or empty span list disables filtering.
func (f *EntityFilter) Filter(tokens []textproc.Token, spans []EntitySpan) []textproc.Token {
	if len(spans) == 0 {
		return tokens
	}

	// Collect the normalized words of every accepted span; a token overlaps
	// a span when its text is one of those words.
	words := make(map[string]bool)
	for _, sp := range spans {
		if len(f.labels) > 0 && !f.labels[strings.ToUpper(sp.Label)] {
			continue
		}
		for _, w := range strings.Fields(textproc.Normalize(sp.Text)) {
			words[w] = true
		}
	}

	var kept []textproc.Token
	for _, tok := range tokens {
		if words[tok.Text] {
			kept = append(kept, tok)
		}
	}
	return kept
}
