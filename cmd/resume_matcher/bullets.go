package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/bullets"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/observability"
)

var bulletsCommand = &cobra.Command{
	Use:   "bullets",
	Short: "Critique the bullets of a resume",
	Long:  `Finds the resume's bullet points and lists those that lack a strong action verb, a metric or enough detail.`,
	RunE:  runBullets,
}

var (
	bulletsResume    string
	bulletsPOSTagger bool
	bulletsAPIKey    string
)

func init() {
	bulletsCommand.Flags().StringVarP(&bulletsResume, "resume", "r", "", "Path to the resume text file")
	bulletsCommand.Flags().BoolVar(&bulletsPOSTagger, "pos-tagger", false, "Tag bullets with the Gemini part-of-speech tagger")
	bulletsCommand.Flags().StringVar(&bulletsAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(bulletsCommand)
}

func runBullets(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	override(cmd, "resume", &cfg.Resume, bulletsResume)
	override(cmd, "pos-tagger", &cfg.UsePOSTagger, bulletsPOSTagger)
	override(cmd, "api-key", &cfg.APIKey, bulletsAPIKey)
	// Only the tagger is needed here.
	cfg.Embedder = ""
	if cfg, err = finishConfig(cfg); err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume must be provided (via flag or config)")
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	resume, err := ingestion.IngestFromFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	analyzer, cleanup, err := buildAnalyzer(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	findings, err := bullets.Analyze(ctx, resume.Text, analyzer.Tagger)
	if err != nil {
		return fmt.Errorf("bullet analysis failed: %w", err)
	}
	if len(findings) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No weak bullets found.")
		return nil
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintBullets(findings)
	return nil
}
