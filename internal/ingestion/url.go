package ingestion

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-matcher/internal/fetch"
)

// IngestFromURL fetches a job posting and returns its cleaned description text.
// A nil fetcher uses plain HTTP without a browser fallback.
func IngestFromURL(ctx context.Context, urlStr string, fetcher *fetch.JobFetcher) (*Document, error) {
	if fetcher == nil {
		fetcher = &fetch.JobFetcher{}
	}

	page, err := fetcher.Fetch(ctx, urlStr)
	if err != nil {
		return nil, err
	}

	cleaned := CleanText(page.Text)
	if cleaned == "" {
		return nil, fmt.Errorf("%s: %w", urlStr, ErrEmptyDocument)
	}

	metadata := NewMetadata(cleaned, urlStr)
	metadata.Platform = string(page.Platform)
	metadata.Rendered = page.Rendered
	return &Document{Text: cleaned, Metadata: metadata, SizeBytes: len(page.Text)}, nil
}
