package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/nlp"
)

// Tagger implements nlp.Tagger by asking a generative model for UPOS tags.
type Tagger struct {
	client Client
	tier   ModelTier
}

// NewTagger creates a Tagger that uses the lite model tier.
func NewTagger(client Client) *Tagger {
	return &Tagger{client: client, tier: TierLite}
}

type taggingResponse struct {
	Tokens []nlp.Token `json:"tokens"`
}

// Tag returns the tokens of text with part-of-speech tags and lemmas.
func (t *Tagger) Tag(ctx context.Context, text string) ([]nlp.Token, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	raw, err := t.client.GenerateJSON(ctx, BuildExtractionPrompt(POSTaggingSchema(), text), t.tier)
	if err != nil {
		return nil, fmt.Errorf("pos tagging failed: %w", err)
	}

	var resp taggingResponse
	if err := json.Unmarshal([]byte(CleanJSONBlock(raw)), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse pos tagging response: %w", err)
	}

	for i := range resp.Tokens {
		resp.Tokens[i].POS = strings.ToUpper(strings.TrimSpace(resp.Tokens[i].POS))
		resp.Tokens[i].Lemma = strings.ToLower(strings.TrimSpace(resp.Tokens[i].Lemma))
	}
	return resp.Tokens, nil
}
