// file: internal/matcher/aggregate.go
// version: 1.0.0
// guid: cfa14299-21dc-493a-9866-9b82b4506dd4

package matcher

import "sort"

// RecognizedSet is the deduplicated set of canonical medication names
// produced by one matching pass. Keys are canonical names.
type RecognizedSet map[string]struct{}

// Aggregate collapses accepted candidates into a RecognizedSet. Repeated
// matches of the same medication across multiple tokens become one entry;
// aggregating the same candidates twice yields the same set.
func Aggregate(candidates []Candidate) RecognizedSet {
	set := make(RecognizedSet, len(candidates))
	for _, c := range candidates {
		set[c.Record.CanonicalName] = struct{}{}
	}
	return set
}

// Contains reports whether name is in the set.
func (s RecognizedSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the canonical names sorted alphabetically, for stable output.
func (s RecognizedSet) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
