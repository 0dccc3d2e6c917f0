// file: internal/vocab/vocab_test.go
// version: 1.0.0
// guid: b0069890-c292-4fa3-9330-3c7a8b160cae

package vocab

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(names ...string) []Record {
	out := make([]Record, len(names))
	for i, n := range names {
		out[i] = Record{CanonicalName: n}
	}
	return out
}

func TestBuildIndexEmpty(t *testing.T) {
	_, err := BuildIndex(nil)
	assert.ErrorIs(t, err, ErrEmptyVocabulary)

	_, err = BuildIndex([]Record{})
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}

func TestBuildIndexDuplicate(t *testing.T) {
	_, err := BuildIndex(records("paracetamol", "amoxicillin", "paracetamol"))
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestBuildIndexDerivesNormalizedName(t *testing.T) {
	index, err := BuildIndex(records("Co-Amoxiclav"))
	require.NoError(t, err)

	recs := index.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, "co-amoxiclav", recs[0].NormalizedName)
	assert.Equal(t, "Co-Amoxiclav", recs[0].CanonicalName)
}

func TestIndexRecordsIsACopy(t *testing.T) {
	index, err := BuildIndex(records("paracetamol", "amoxicillin"))
	require.NoError(t, err)

	recs := index.Records()
	recs[0].CanonicalName = "mutated"

	again := index.Records()
	assert.Equal(t, "paracetamol", again[0].CanonicalName)
}

func TestBestMatchExact(t *testing.T) {
	index, err := BuildIndex(records("paracetamol", "amoxicillin"))
	require.NoError(t, err)

	score := func(a, b string) int {
		if a == b {
			return 100
		}
		return 0
	}
	rec, s := index.BestMatch("amoxicillin", score)
	assert.Equal(t, "amoxicillin", rec.CanonicalName)
	assert.Equal(t, 100, s)
}

func TestBestMatchTieBreakLowestIndex(t *testing.T) {
	index, err := BuildIndex(records("zolpidem", "zopiclone", "aspirin"))
	require.NoError(t, err)

	// Constant scorer: everything ties, so construction order must decide.
	constant := func(a, b string) int { return 50 }
	rec, s := index.BestMatch("anything", constant)
	assert.Equal(t, "zolpidem", rec.CanonicalName)
	assert.Equal(t, 50, s)
}

func TestBestMatchStrictlyGreaterWins(t *testing.T) {
	index, err := BuildIndex(records("first", "second"))
	require.NoError(t, err)

	score := func(a, b string) int {
		if b == "second" {
			return 90
		}
		return 10
	}
	rec, s := index.BestMatch("token", score)
	assert.Equal(t, "second", rec.CanonicalName)
	assert.Equal(t, 90, s)
}

func TestBuildIndexRejectsEmptyName(t *testing.T) {
	_, err := BuildIndex([]Record{{CanonicalName: ""}})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrDuplicateName))
}
