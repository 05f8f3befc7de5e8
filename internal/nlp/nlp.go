// Package nlp defines the narrow NLP capabilities the matcher consumes
// (embedding, similarity, part-of-speech tagging, tokenization) together with
// deterministic default implementations that need no model.
package nlp

import "context"

// Part-of-speech tags used by the bullet analyzer (Universal Dependencies tag set).
const (
	POSVerb  = "VERB"
	POSNoun  = "NOUN"
	POSPropN = "PROPN"
)

// Embedder turns text into a fixed-length vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// EmbedderFunc adapts a function to the Embedder interface.
type EmbedderFunc func(ctx context.Context, text string) ([]float32, error)

// Embed calls f(ctx, text).
func (f EmbedderFunc) Embed(ctx context.Context, text string) ([]float32, error) {
	return f(ctx, text)
}

// SimilarityFunc compares two embeddings. Cosine is the default.
type SimilarityFunc func(a, b []float32) float64

// Token is one tagged token.
type Token struct {
	Text  string `json:"token"`
	POS   string `json:"pos"`
	Lemma string `json:"lemma"`
}

// Tagger annotates text with part-of-speech and lemma information.
type Tagger interface {
	Tag(ctx context.Context, text string) ([]Token, error)
}

// TaggerFunc adapts a function to the Tagger interface.
type TaggerFunc func(ctx context.Context, text string) ([]Token, error)

// Tag calls f(ctx, text).
func (f TaggerFunc) Tag(ctx context.Context, text string) ([]Token, error) {
	return f(ctx, text)
}
