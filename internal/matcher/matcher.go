// file: internal/matcher/matcher.go
// version: 1.2.0
// guid: 1b1b47c7-362d-44fa-8176-dbca792c5ed3

package matcher

import (
	"context"
	"fmt"
	"sync"

	"github.com/medboxlabs/medbox-reader/internal/textproc"
	"github.com/medboxlabs/medbox-reader/internal/vocab"
)

// Candidate is an accepted per-token match against the reference index.
type Candidate struct {
	Token  textproc.Token
	Record vocab.Record
	Score  int
}

// Matcher runs per-token lookups against an immutable reference index.
type Matcher struct {
	index     *vocab.Index
	scorer    Scorer
	threshold int
	workers   int
}

// New validates the configuration and returns a Matcher. The threshold is
// inclusive: a candidate scoring exactly threshold is accepted. workers <= 1
// keeps matching sequential; anything larger fans token lookups out across
// that many goroutines (safe because the index is read-only and the scorer
// is pure).
func New(index *vocab.Index, scorer Scorer, threshold, workers int) (*Matcher, error) {
	if index == nil || index.Len() == 0 {
		return nil, vocab.ErrEmptyVocabulary
	}
	if threshold < 0 || threshold > 100 {
		return nil, fmt.Errorf("matcher: threshold %d outside [0,100]", threshold)
	}
	if scorer == nil {
		scorer = LevenshteinScorer{}
	}
	if workers < 1 {
		workers = 1
	}
	return &Matcher{index: index, scorer: scorer, threshold: threshold, workers: workers}, nil
}

// Threshold returns the inclusive acceptance threshold.
func (m *Matcher) Threshold() int { return m.threshold }

// Match scores every token against the index and returns the accepted
// candidates in token order. Tokens with no record at or above the threshold
// are dropped silently; that is the expected, frequent outcome and not an
// error. The only error condition is cancellation of ctx.
func (m *Matcher) Match(ctx context.Context, tokens []textproc.Token) ([]Candidate, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	// One slot per token keeps the output order deterministic regardless of
	// which goroutine scores which token.
	slots := make([]*Candidate, len(tokens))

	if m.workers == 1 || len(tokens) == 1 {
		for i, tok := range tokens {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			slots[i] = m.matchToken(tok)
		}
	} else if err := m.matchParallel(ctx, tokens, slots); err != nil {
		return nil, err
	}

	var accepted []Candidate
	for _, c := range slots {
		if c != nil {
			accepted = append(accepted, *c)
		}
	}
	return accepted, nil
}

func (m *Matcher) matchToken(tok textproc.Token) *Candidate {
	record, score := m.index.BestMatch(tok.Text, m.scorer.Score)
	if score < m.threshold {
		return nil
	}
	return &Candidate{Token: tok, Record: record, Score: score}
}

func (m *Matcher) matchParallel(ctx context.Context, tokens []textproc.Token, slots []*Candidate) error {
	workers := m.workers
	if workers > len(tokens) {
		workers = len(tokens)
	}

	work := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				slots[i] = m.matchToken(tokens[i])
			}
		}()
	}

	var err error
feed:
	for i := range tokens {
		select {
		case work <- i:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(work)
	wg.Wait()
	return err
}
