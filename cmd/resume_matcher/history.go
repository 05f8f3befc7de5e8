package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/observability"
)

var historyCommand = &cobra.Command{
	Use:   "history",
	Short: "List saved analyses",
	Long:  `Lists analyses saved with --save, newest first.`,
	RunE:  runHistory,
}

var historyShowCommand = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a saved analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var (
	historyLimit  int
	historyOffset int
	historyRole   string
	historyDBURL  string
)

func init() {
	historyCommand.Flags().IntVar(&historyLimit, "limit", db.DefaultListLimit, "Maximum number of analyses to list")
	historyCommand.Flags().IntVar(&historyOffset, "offset", 0, "Number of analyses to skip")
	historyCommand.Flags().StringVar(&historyRole, "role", "", "Only list analyses for this role")
	historyCommand.PersistentFlags().StringVar(&historyDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	historyCommand.AddCommand(historyShowCommand)
	rootCmd.AddCommand(historyCommand)
}

// connectHistory opens the history database from config, env or --db-url.
func connectHistory(cmd *cobra.Command) (*db.DB, context.Context, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, ctx, err
	}
	override(cmd, "db-url", &cfg.DatabaseURL, historyDBURL)

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, ctx, fmt.Errorf("failed to connect to database: %w", err)
	}
	return database, ctx, nil
}

func runHistory(cmd *cobra.Command, _ []string) error {
	database, ctx, err := connectHistory(cmd)
	if err != nil {
		return err
	}
	defer database.Close()

	summaries, err := database.ListAnalyses(ctx, db.ListOptions{
		Limit:  historyLimit,
		Offset: historyOffset,
		Role:   historyRole,
	})
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No saved analyses.")
		return nil
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tCREATED\tROLE\tSCORE\tINTERVIEW %")
	for _, s := range summaries {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%.0f\t%.1f\n",
			s.ID, s.CreatedAt.Format("2006-01-02 15:04"), s.Role, s.TotalScore, s.InterviewProbability)
	}
	return tw.Flush()
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid analysis id: %w", err)
	}

	database, ctx, err := connectHistory(cmd)
	if err != nil {
		return err
	}
	defer database.Close()

	rec, err := database.GetAnalysis(ctx, id)
	if err != nil {
		return err
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintReport(rec.Report)
	return nil
}
