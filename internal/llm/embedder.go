package llm

import (
	"context"
	"fmt"
)

// Embedder adapts a Client to nlp.Embedder. It holds no per-text state, so a
// single instance is safe to share across concurrent analyses.
type Embedder struct {
	client Client
}

// NewEmbedder creates an Embedder backed by client.
func NewEmbedder(client Client) *Embedder {
	return &Embedder{client: client}
}

// Embed returns the embedding of text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vec, err := e.client.EmbedText(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("gemini embedding failed: %w", err)
	}
	return vec, nil
}
