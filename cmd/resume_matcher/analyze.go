package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description",
	Long: `Scores the resume against the job description and writes the full report as JSON.

The report goes to --out when set, otherwise to stdout. A summary is printed
alongside it; with --verbose every report section is printed as a box.`,
	RunE: runAnalyze,
}

var (
	analyzeResume     string
	analyzeJob        string
	analyzeJobURL     string
	analyzeOut        string
	analyzeEmbedder   string
	analyzePOSTagger  bool
	analyzeUseBrowser bool
	analyzeSave       bool
	analyzeAPIKey     string
	analyzeDBURL      string
	analyzeVerbose    bool
)

func init() {
	analyzeCommand.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to the resume text file")
	analyzeCommand.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to the job description text file (mutually exclusive with --job-url)")
	analyzeCommand.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job description from (mutually exclusive with --job)")
	analyzeCommand.Flags().StringVarP(&analyzeOut, "out", "o", "", "Write the report JSON to this file instead of stdout")
	analyzeCommand.Flags().StringVar(&analyzeEmbedder, "embedder", "", "Embedding backend: hash or gemini")
	analyzeCommand.Flags().BoolVar(&analyzePOSTagger, "pos-tagger", false, "Tag bullets with the Gemini part-of-speech tagger")
	analyzeCommand.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA job pages (requires Chrome)")
	analyzeCommand.Flags().BoolVar(&analyzeSave, "save", false, "Save the report to the analysis history database")
	analyzeCommand.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	analyzeCommand.Flags().StringVar(&analyzeDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print every report section")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	override(cmd, "resume", &cfg.Resume, analyzeResume)
	override(cmd, "job", &cfg.Job, analyzeJob)
	override(cmd, "job-url", &cfg.JobURL, analyzeJobURL)
	override(cmd, "embedder", &cfg.Embedder, analyzeEmbedder)
	override(cmd, "pos-tagger", &cfg.UsePOSTagger, analyzePOSTagger)
	override(cmd, "use-browser", &cfg.UseBrowser, analyzeUseBrowser)
	override(cmd, "api-key", &cfg.APIKey, analyzeAPIKey)
	override(cmd, "db-url", &cfg.DatabaseURL, analyzeDBURL)
	override(cmd, "verbose", &cfg.Verbose, analyzeVerbose)
	if cfg, err = finishConfig(cfg); err != nil {
		return err
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume must be provided (via flag or config)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
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
	job, jobSource, err := ingestJob(ctx, cfg, log)
	if err != nil {
		return err
	}

	analyzer, cleanup, err := buildAnalyzer(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	// The summary shares stdout only when the JSON goes to a file.
	summaryOut := cmd.ErrOrStderr()
	if analyzeOut != "" {
		summaryOut = cmd.OutOrStdout()
	}
	if cfg.Verbose {
		analyzer.OnProgress = func(event analysis.ProgressEvent) {
			_, _ = fmt.Fprintf(summaryOut, "✓ %s\n", event.Message)
		}
	}

	report, err := analyzer.Run(ctx, resume.Text, job.Text)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	structure := ingestion.AnalyzeStructure(resume.Text, resume.SizeBytes)
	report.StructureAnalysis = &structure

	if err := schemas.ValidateReport(report); err != nil {
		log.Warn("report does not match schema", zap.Error(err))
	}

	if err := writeReport(cmd, report); err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(summaryOut).PrintReport(report)
	} else {
		printSummary(summaryOut, report)
	}

	if analyzeSave {
		return saveReport(ctx, cfg, report, jobSource, summaryOut, log)
	}
	return nil
}

// ingestJob loads the job description from a file or URL and reports its source.
func ingestJob(ctx context.Context, cfg *config.Config, log *zap.Logger) (*ingestion.Document, string, error) {
	if cfg.JobURL != "" {
		doc, err := ingestion.IngestFromURL(ctx, cfg.JobURL, newFetcher(cfg, log))
		if err != nil {
			return nil, "", fmt.Errorf("failed to fetch job description: %w", err)
		}
		log.Info("fetched job description",
			zap.String("url", cfg.JobURL),
			zap.String("platform", doc.Metadata.Platform),
			zap.Bool("rendered", doc.Metadata.Rendered),
		)
		return doc, cfg.JobURL, nil
	}

	doc, err := ingestion.IngestFromFile(cfg.Job)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read job description: %w", err)
	}
	return doc, cfg.Job, nil
}

func writeReport(cmd *cobra.Command, report *types.AnalysisReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	data = append(data, '\n')

	if analyzeOut == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(analyzeOut, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func printSummary(w io.Writer, report *types.AnalysisReport) {
	_, _ = fmt.Fprintf(w, "Match score: %.0f/100 (semantic %.0f, skills %.0f)\n",
		report.Score, report.SectionScores.Semantic, report.SectionScores.Skills)
	_, _ = fmt.Fprintf(w, "Role: %s, interview probability %.1f%%\n",
		report.MarketAnalysis.Role, report.SuccessPrediction.InterviewProbability)
	if len(report.MissingSkills) > 0 {
		_, _ = fmt.Fprintf(w, "Missing skills: %s\n", logger.Truncate(fmt.Sprint(report.MissingSkills), 120))
	}
}

func saveReport(ctx context.Context, cfg *config.Config, report *types.AnalysisReport, jobSource string, w io.Writer, log *zap.Logger) error {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		if errors.Is(err, db.ErrNoDatabaseURL) {
			return fmt.Errorf("--save requires DATABASE_URL or --db-url: %w", err)
		}
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	id, err := database.SaveAnalysis(ctx, report, jobSource)
	if err != nil {
		return err
	}
	log.Info("saved analysis", zap.String(logger.FieldAnalysisID, id.String()))
	_, _ = fmt.Fprintf(w, "Saved analysis %s\n", id)
	return nil
}
