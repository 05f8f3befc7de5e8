package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/server"
	"github.com/jonathan/resume-matcher/internal/server/ratelimit"
)

var (
	servePort       int
	serveEmbedder   string
	servePOSTagger  bool
	serveUseBrowser bool
	serveDBURL      string
	serveMigrate    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for running analyses.

Analysis history endpoints are enabled when a database URL is configured.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveEmbedder, "embedder", "", "Embedding backend: hash or gemini")
	serveCmd.Flags().BoolVar(&servePOSTagger, "pos-tagger", false, "Tag bullets with the Gemini part-of-speech tagger")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Use headless browser for SPA job pages (requires Chrome)")
	serveCmd.Flags().StringVar(&serveDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "Apply database migrations before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	override(cmd, "port", &cfg.Server.Port, servePort)
	override(cmd, "embedder", &cfg.Embedder, serveEmbedder)
	override(cmd, "pos-tagger", &cfg.UsePOSTagger, servePOSTagger)
	override(cmd, "use-browser", &cfg.UseBrowser, serveUseBrowser)
	override(cmd, "db-url", &cfg.DatabaseURL, serveDBURL)
	if cfg, err = finishConfig(cfg); err != nil {
		return err
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	analyzer, cleanup, err := buildAnalyzer(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := server.Options{
		Port:           cfg.Server.Port,
		Analyzer:       analyzer,
		Fetcher:        newFetcher(cfg, log),
		RateLimit:      ratelimit.FromSettings(cfg.Server.RateLimit),
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RequestTimeout: cfg.Server.RequestTimeout,
		Logger:         log,
	}

	if cfg.DatabaseURL != "" {
		if serveMigrate {
			if err := migrateUp(cfg.DatabaseURL, log); err != nil {
				return err
			}
		}
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		opts.Store = database
	} else {
		log.Info("no database configured, analysis history disabled")
	}

	srv, err := server.New(opts)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	log.Info("serving", zap.Int("port", cfg.Server.Port), zap.String("embedder", cfg.Embedder))
	return srv.Start(ctx)
}
