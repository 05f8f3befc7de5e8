package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/nlp"
)

// loadConfig reads the config file and environment. Commands apply their own
// flag overrides afterwards, then call finishConfig.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// finishConfig fills unset values from defaults and validates the result.
func finishConfig(cfg *config.Config) (*config.Config, error) {
	merged := cfg.MergeWithDefaults(config.Default())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// override copies val into dst only when the flag was set explicitly.
func override[T any](cmd *cobra.Command, flag string, dst *T, val T) {
	if cmd.Flags().Changed(flag) {
		*dst = val
	}
}

func newLogger() (*zap.Logger, error) {
	log, err := logger.New(jsonLogs, debugLogs)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

// buildAnalyzer wires the configured embedder and tagger. The returned cleanup
// closes the Gemini client when one was created.
func buildAnalyzer(ctx context.Context, cfg *config.Config, log *zap.Logger) (analysis.Analyzer, func(), error) {
	a := analysis.Analyzer{Logger: log}
	cleanup := func() {}

	var client *llm.GeminiClient
	if cfg.Embedder == config.EmbedderGemini || cfg.UsePOSTagger {
		llmCfg := llm.DefaultConfig().
			WithEmbeddingModel(cfg.EmbeddingModel).
			WithModel(llm.TierLite, cfg.TaggerModel)

		var err error
		client, err = llm.NewGeminiClient(ctx, llmCfg, cfg.APIKey)
		if err != nil {
			return a, cleanup, err
		}
		cleanup = func() {
			if err := client.Close(); err != nil {
				log.Warn("failed to close Gemini client", zap.Error(err))
			}
		}
	}

	switch cfg.Embedder {
	case config.EmbedderGemini:
		a.Embedder = llm.NewEmbedder(client)
		log.Debug("selected embedder",
			zap.String(logger.FieldEmbedder, config.EmbedderGemini),
			zap.String(logger.FieldModel, cfg.EmbeddingModel),
		)
	default:
		a.Embedder = &nlp.HashEmbedder{Dimensions: cfg.HashDimensions}
		log.Debug("selected embedder",
			zap.String(logger.FieldEmbedder, config.EmbedderHash),
			zap.Int("dimensions", cfg.HashDimensions),
		)
	}
	if cfg.UsePOSTagger {
		a.Tagger = llm.NewTagger(client)
	}
	return a, cleanup, nil
}

// newFetcher builds the job page fetcher, throttled to two requests per second.
func newFetcher(cfg *config.Config, log *zap.Logger) *fetch.JobFetcher {
	opts := fetch.DefaultOptions()
	opts.Timeout = cfg.FetchTimeout
	opts.Logger = log
	opts.Limiter = rate.NewLimiter(rate.Every(500*time.Millisecond), 2)

	f := &fetch.JobFetcher{Options: opts, Logger: log}
	if cfg.UseBrowser {
		f.Render = fetch.ChromeRenderer(fetch.DefaultBrowserTimeout, log)
	}
	return f
}
