package nlp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0},
		{"length mismatch", []float32{1, 0}, []float32{1, 0, 0}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Cosine(tt.a, tt.b), 1e-9)
		})
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("Built APIs in Go, C++ and C#; deployed Node.js on CI/CD.")

	assert.Equal(t, []string{
		"built", "apis", "in", "go", "c++", "and", "c#", "deployed", "node", "js", "on", "ci", "cd",
	}, tokens)
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("  ... !! "))
}

func TestHashEmbedder_Deterministic(t *testing.T) {
	e := NewHashEmbedder()
	ctx := context.Background()

	a, err := e.Embed(ctx, "python react docker")
	require.NoError(t, err)
	b, err := e.Embed(ctx, "docker react python")
	require.NoError(t, err)

	assert.Len(t, a, DefaultDimensions)
	assert.InDelta(t, 1.0, Cosine(a, b), 1e-6, "bag of words ignores order")

	c, err := e.Embed(ctx, "accounting payroll compliance")
	require.NoError(t, err)
	assert.Less(t, Cosine(a, c), 0.9)
}

func TestHashEmbedder_EmptyText(t *testing.T) {
	vec, err := (&HashEmbedder{Dimensions: 8}).Embed(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, vec, 8)
	assert.Equal(t, 0.0, Cosine(vec, vec))
}

func TestHashEmbedder_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHashEmbedder().Embed(ctx, "python")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFuncAdapters(t *testing.T) {
	var emb Embedder = EmbedderFunc(func(_ context.Context, text string) ([]float32, error) {
		return []float32{float32(len(text))}, nil
	})
	vec, err := emb.Embed(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, []float32{3}, vec)

	var tagger Tagger = TaggerFunc(func(_ context.Context, text string) ([]Token, error) {
		return []Token{{Text: text, POS: POSVerb, Lemma: text}}, nil
	})
	toks, err := tagger.Tag(context.Background(), "led")
	require.NoError(t, err)
	assert.Equal(t, POSVerb, toks[0].POS)
}
