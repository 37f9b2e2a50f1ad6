package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nao1215/appreport/internal/model"
	"github.com/nao1215/appreport/internal/report"
)

// NewSummaryCmd creates the summary command.
func NewSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Count applications per status",
		Long: `Summary prints how many applications are in each status.

The four statuses used by the bot (Новая, В работе, Выполнена, Отменена) are
always listed in workflow order; any other stored value follows.

Examples:
  appreport summary
  appreport summary --markdown -o reports/summary.md`,
		Args: cobra.NoArgs,
		RunE: runSummaryCmd,
	}
}

// runSummaryCmd executes the summary command.
func runSummaryCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)
	slog.SetDefault(logger)

	db, err := openDatabase(cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	counts, err := db.CountByStatus(commandContext(cmd))
	if err != nil {
		return err
	}

	summary := model.NewStatusSummary(counts)
	logger.Debug("status summary computed", "total", summary.Total, "statuses", len(summary.Statuses))

	return writeOutput(cmd, cfg, func(w report.Writer) error {
		_, err := w.WriteSummary(summary)
		return err
	})
}
