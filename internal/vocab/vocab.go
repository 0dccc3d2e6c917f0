// file: internal/vocab/vocab.go
// version: 1.1.0
// guid: f9b4f7d1-69ff-4385-8697-c90d34532f50

package vocab

import (
	"errors"
	"fmt"

	"github.com/medboxlabs/medbox-reader/internal/textproc"
)

// Configuration errors surfaced at index-build time. The pipeline never runs
// without a valid index.
var (
	ErrEmptyVocabulary = errors.New("vocab: reference vocabulary is empty")
	ErrDuplicateName   = errors.New("vocab: duplicate canonical name")
)

// Record is one entry of the reference vocabulary. Immutable once built.
type Record struct {
	// CanonicalName is the authoritative spelling, unique across the index.
	CanonicalName string
	// NormalizedName is the matching key derived from CanonicalName.
	NormalizedName string
}

// Index is the read-only reference vocabulary for a matching session.
// Construction order is preserved and meaningful: it decides ties.
type Index struct {
	records []Record
}

// ScoreFunc computes a similarity score in [0,100] between two strings.
type ScoreFunc func(a, b string) int

// BuildIndex validates records and constructs an immutable Index. Records
// with an empty NormalizedName get one derived from CanonicalName. An empty
// input or a repeated canonical name is a configuration error.
func BuildIndex(records []Record) (*Index, error) {
	if len(records) == 0 {
		return nil, ErrEmptyVocabulary
	}
	seen := make(map[string]struct{}, len(records))
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.CanonicalName == "" {
			return nil, fmt.Errorf("vocab: record %d has an empty canonical name", len(out))
		}
		if _, dup := seen[r.CanonicalName]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, r.CanonicalName)
		}
		seen[r.CanonicalName] = struct{}{}
		if r.NormalizedName == "" {
			r.NormalizedName = textproc.Normalize(r.CanonicalName)
		}
		out = append(out, r)
	}
	return &Index{records: out}, nil
}

// Len returns the number of records in the index.
func (ix *Index) Len() int { return len(ix.records) }

// Records returns a copy of the index contents in construction order.
func (ix *Index) Records() []Record {
	out := make([]Record, len(ix.records))
	copy(out, ix.records)
	return out
}

// BestMatch scans the index and returns the record scoring highest against
// token, with its score. When several records share the maximum score the
// one with the lowest construction index wins; the scan uses a strict
// greater-than comparison so the tie-break is pinned, not a library default.
func (ix *Index) BestMatch(token string, score ScoreFunc) (Record, int) {
	best := ix.records[0]
	bestScore := score(token, best.NormalizedName)
	for _, r := range ix.records[1:] {
		if s := score(token, r.NormalizedName); s > bestScore {
			best, bestScore = r, s
		}
	}
	return best, bestScore
}
