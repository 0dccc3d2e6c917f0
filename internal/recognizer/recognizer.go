// file: internal/recognizer/recognizer.go
// version: 1.1.0
// guid: f64b6d6c-b95f-48b7-aa37-c3b7baabdc28

package recognizer

import (
	"context"
	"fmt"
	"log"
	"time"

	ulid "github.com/oklog/ulid/v2"

	"github.com/medboxlabs/medbox-reader/internal/matcher"
	"github.com/medboxlabs/medbox-reader/internal/metrics"
	"github.com/medboxlabs/medbox-reader/internal/textproc"
	"github.com/medboxlabs/medbox-reader/internal/vocab"
)

// DefaultThreshold is the inclusive acceptance threshold used when the
// caller does not configure one.
const DefaultThreshold = 85

// Options configures a Recognizer. Zero values fall back to defaults: the
// Levenshtein scorer, threshold 85, sequential matching, no announcements.
type Options struct {
	Scorer       matcher.Scorer
	Threshold    int
	EntityLabels []string
	Workers      int
	Announcer    Announcer
}

// Result is the outcome of one recognition pass.
type Result struct {
	// PassID uniquely identifies the pass, for logs and API responses.
	PassID string
	// Recognized is the deduplicated set of canonical medication names.
	Recognized matcher.RecognizedSet
	// TokenCount is the number of tokens that entered matching after
	// normalization and entity filtering.
	TokenCount int
	// Duration is the wall time of the pass.
	Duration time.Duration
}

// Recognizer is the stateless matching pipeline: normalize, tokenize,
// optionally filter by entity spans, fuzzy-match against the reference
// index, aggregate. All collaborators are caller-owned and injected at
// construction; there is no process-wide state.
type Recognizer struct {
	index     *vocab.Index
	m         *matcher.Matcher
	filter    *matcher.EntityFilter
	norm      *textproc.Normalizer
	announcer Announcer
}

// New builds a Recognizer over an already-constructed index. A nil or empty
// index and an out-of-range threshold are configuration errors; the pipeline
// does not run without a valid index.
func New(index *vocab.Index, opts Options) (*Recognizer, error) {
	if opts.Threshold == 0 {
		opts.Threshold = DefaultThreshold
	}
	m, err := matcher.New(index, opts.Scorer, opts.Threshold, opts.Workers)
	if err != nil {
		return nil, err
	}
	announcer := opts.Announcer
	if announcer == nil {
		announcer = NopAnnouncer{}
	}
	metrics.Register()
	metrics.SetVocabularySize(index.Len())
	return &Recognizer{
		index:     index,
		m:         m,
		filter:    matcher.NewEntityFilter(opts.EntityLabels...),
		norm:      textproc.NewNormalizer(),
		announcer: announcer,
	}, nil
}

// Recognize runs one pass over extracted text. Empty or entirely
// non-alphabetic input is not an error: the result carries an empty set and
// the announcer reports that nothing was recognized. spans may be nil; when
// present they narrow the token stream to annotated regions.
func (r *Recognizer) Recognize(ctx context.Context, text string, spans []matcher.EntitySpan) (*Result, error) {
	start := time.Now()
	result := &Result{PassID: ulid.Make().String()}

	normalized := r.norm.Normalize(text)
	tokens := textproc.Tokenize(normalized)
	if len(tokens) == 0 || !textproc.HasAlphabetic(normalized) {
		r.finish(result, start, nil)
		return result, nil
	}

	tokens = r.filter.Filter(tokens, spans)
	result.TokenCount = len(tokens)

	candidates, err := r.m.Match(ctx, tokens)
	if err != nil {
		return nil, fmt.Errorf("recognizer: pass %s aborted: %w", result.PassID, err)
	}

	r.finish(result, start, candidates)
	return result, nil
}

func (r *Recognizer) finish(result *Result, start time.Time, candidates []matcher.Candidate) {
	result.Recognized = matcher.Aggregate(candidates)
	result.Duration = time.Since(start)

	metrics.AddTokensScanned(result.TokenCount)
	metrics.AddMatchesAccepted(len(candidates))
	metrics.AddMatchesRejected(result.TokenCount - len(candidates))
	metrics.ObservePassDuration(result.Duration)

	if len(result.Recognized) == 0 {
		metrics.IncPass("empty")
		if err := r.announcer.Announce("No recognized medications found."); err != nil {
			log.Printf("[WARN] recognizer: announce failed: %v", err)
		}
		return
	}
	metrics.IncPass("recognized")
	for _, name := range result.Recognized.Names() {
		if err := r.announcer.Announce(fmt.Sprintf("The medication recognized is %s", name)); err != nil {
			log.Printf("[WARN] recognizer: announce failed: %v", err)
		}
	}
}

// Index returns the reference index the recognizer was built with.
func (r *Recognizer) Index() *vocab.Index { return r.index }

// Threshold returns the inclusive acceptance threshold in effect.
func (r *Recognizer) Threshold() int { return r.m.Threshold() }
