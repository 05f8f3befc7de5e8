package fetch

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/logger"
)

// JobFetcher fetches a job posting URL and extracts its description text.
type JobFetcher struct {
	Options *Options
	// Render is used when the HTTP page looks client-rendered; nil disables the fallback.
	Render RenderFunc
	Logger *zap.Logger
}

// JobPage is the extracted job posting.
type JobPage struct {
	URL      string
	Platform Platform
	Text     string
	Rendered bool
}

// Fetch downloads urlStr and returns its main text using platform-specific selectors.
// A failed browser fallback keeps the HTTP text.
func (f *JobFetcher) Fetch(ctx context.Context, urlStr string) (*JobPage, error) {
	log := logger.WithFields(f.Logger, zap.String("url", urlStr))
	platform := DetectPlatform(urlStr)
	content := PlatformContentSelectors(platform)
	noise := PlatformNoiseSelectors(platform)

	opts := f.Options
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Logger == nil {
		withLog := *opts
		withLog.Logger = log
		opts = &withLog
	}

	result, err := URL(ctx, urlStr, opts)
	if err != nil {
		return nil, err
	}

	text, err := ExtractMainText(result.HTML, content, noise...)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "content extraction failed", Cause: err}
	}

	page := &JobPage{URL: urlStr, Platform: platform, Text: text}
	if f.Render != nil && ShouldUseBrowser(text) {
		log.Info("page text too short, rendering in browser", zap.Int("chars", len(text)))
		html, err := f.Render(ctx, urlStr)
		if err != nil {
			log.Warn("browser rendering failed, using HTTP content", zap.Error(err))
			return page, nil
		}
		rendered, err := ExtractMainText(html, content, noise...)
		if err != nil {
			log.Warn("browser content extraction failed", zap.Error(err))
			return page, nil
		}
		page.Text = rendered
		page.Rendered = true
	}

	if page.Text == "" {
		return nil, &Error{URL: urlStr, Message: fmt.Sprintf("no text found on %s page", platform)}
	}
	log.Debug("extracted job text", zap.String("platform", string(platform)), zap.Int("chars", len(page.Text)))
	return page, nil
}
