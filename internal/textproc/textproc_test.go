// file: internal/textproc/textproc_test.go
// version: 1.0.0
// guid: eddfdf30-9aaa-4af6-a9a4-a73e4b5f7824

package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty input", "", ""},
		{"lowercases", "PARACETAMOL", "paracetamol"},
		{"collapses whitespace", "amoxicillin   \t\n 500mg", "amoxicillin 500mg"},
		{"strips punctuation", "ibuprofen, (200mg)!", "ibuprofen 200mg"},
		{"keeps hyphens", "Co-Amoxiclav", "co-amoxiclav"},
		{"folds diacritics", "Ibuprofén", "ibuprofen"},
		{"punctuation separates tokens", "aspirin/paracetamol", "aspirin paracetamol"},
		{"whitespace only", "  \t \n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	input := "Paracétamol  500MG, twice/day!"
	first := Normalize(input)
	for i := 0; i < 10; i++ {
		if got := Normalize(input); got != first {
			t.Fatalf("Normalize not deterministic: %q vs %q", got, first)
		}
	}
}

func TestNormalizerCustomAllowList(t *testing.T) {
	n := NewNormalizer('-', '+')
	assert.Equal(t, "vitamin d3+k1", n.Normalize("Vitamin D3+K1"))

	// Default normalizer treats '+' as a separator.
	assert.Equal(t, "vitamin d3 k1", Normalize("Vitamin D3+K1"))
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("paracetamol 500mg twice daily")
	if len(tokens) != 4 {
		t.Fatalf("expected 4 tokens, got %d", len(tokens))
	}
	for i, want := range []string{"paracetamol", "500mg", "twice", "daily"} {
		if tokens[i].Text != want {
			t.Errorf("token %d: expected %q, got %q", i, want, tokens[i].Text)
		}
		if tokens[i].Position != i {
			t.Errorf("token %d: expected position %d, got %d", i, i, tokens[i].Position)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	assert.Nil(t, Tokenize(""))
	assert.Nil(t, Tokenize("   "))
}

func TestTokenizeRestartable(t *testing.T) {
	tokens := Tokenize("a b c")
	// Iterating the slice twice must see the same sequence.
	var first, second []string
	for _, tok := range tokens {
		first = append(first, tok.Text)
	}
	for _, tok := range tokens {
		second = append(second, tok.Text)
	}
	assert.Equal(t, first, second)
}

func TestHasAlphabetic(t *testing.T) {
	assert.True(t, HasAlphabetic("500mg"))
	assert.False(t, HasAlphabetic("500 12-3"))
	assert.False(t, HasAlphabetic(""))
}
