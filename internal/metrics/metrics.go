// file: internal/metrics/metrics.go
// version: 1.0.0
// guid: f290761b-9e23-45ec-946d-619bb96b240e

package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	tokensScanned = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "medbox_reader",
		Name:      "tokens_scanned_total",
		Help:      "Total number of tokens scored against the reference index",
	})
	matchesAccepted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "medbox_reader",
		Name:      "matches_accepted_total",
		Help:      "Total number of token matches at or above the threshold",
	})
	matchesRejected = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "medbox_reader",
		Name:      "matches_rejected_total",
		Help:      "Total number of tokens whose best match fell below the threshold",
	})
	passes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medbox_reader",
		Name:      "recognition_passes_total",
		Help:      "Total number of recognition passes by outcome (recognized, empty)",
	}, []string{"outcome"})
	passDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "medbox_reader",
		Name:      "recognition_pass_duration_seconds",
		Help:      "Histogram of full recognition pass durations in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms up to ~1s
	})
	vocabularySize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "medbox_reader",
		Name:      "vocabulary_records",
		Help:      "Number of records in the loaded reference vocabulary",
	})
)

// Register initializes metrics with the global Prometheus registry (idempotent)
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(tokensScanned, matchesAccepted, matchesRejected,
			passes, passDuration, vocabularySize)
	})
}

// Pass lifecycle helpers
func AddTokensScanned(n int)   { tokensScanned.Add(float64(n)) }
func AddMatchesAccepted(n int) { matchesAccepted.Add(float64(n)) }
func AddMatchesRejected(n int) { matchesRejected.Add(float64(n)) }
func IncPass(outcome string)   { passes.WithLabelValues(outcome).Inc() }
func ObservePassDuration(d time.Duration) {
	passDuration.Observe(d.Seconds())
}

// SetVocabularySize records the size of the active reference index.
func SetVocabularySize(n int) { vocabularySize.Set(float64(n)) }
