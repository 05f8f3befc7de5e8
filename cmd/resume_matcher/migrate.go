package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/db"
)

var migrateCommand = &cobra.Command{
	Use:       "migrate [up|down|version]",
	Short:     "Manage the analysis history schema",
	Long:      `Applies (up), reverts (down) or reports (version) the embedded database migrations. Defaults to up.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "version"},
	RunE:      runMigrate,
}

var migrateDBURL string

func init() {
	migrateCommand.Flags().StringVar(&migrateDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	rootCmd.AddCommand(migrateCommand)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	override(cmd, "db-url", &cfg.DatabaseURL, migrateDBURL)

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	action := "up"
	if len(args) == 1 {
		action = args[0]
	}

	if action == "up" {
		return migrateUp(cfg.DatabaseURL, log)
	}

	migrator, err := db.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() { _ = migrator.Close() }()

	switch action {
	case "down":
		if err := migrator.Down(); err != nil {
			return err
		}
		log.Info("migrations reverted")
	case "version":
		version, dirty, err := migrator.Version()
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
	}
	return nil
}

// migrateUp applies all pending migrations.
func migrateUp(databaseURL string, log *zap.Logger) error {
	migrator, err := db.NewMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer func() { _ = migrator.Close() }()

	if err := migrator.Up(); err != nil {
		return err
	}
	version, _, err := migrator.Version()
	if err != nil {
		return err
	}
	log.Info("migrations applied", zap.Uint("version", version))
	return nil
}
