package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nao1215/appreport/internal/report"
)

// NewShowCmd creates the show command.
func NewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show every field of one application",
		Long: `Show prints all stored fields of a single application: user, tariff,
name, price, contact details, creation time, and status.

Examples:
  # Show application 7
  appreport show 7

  # Show application 7 as JSON
  appreport show --json 7`,
		Args: cobra.ExactArgs(1),
		RunE: runShowCmd,
	}
}

// runShowCmd executes the show command.
func runShowCmd(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid application id %q: must be a positive integer", args[0])
	}

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

	app, err := db.GetApplication(commandContext(cmd), id)
	if err != nil {
		return err
	}

	logger.Debug("application loaded", "id", app.ID, "status", app.Status.String())

	return writeOutput(cmd, cfg, func(w report.Writer) error {
		_, err := w.WriteDetail(app)
		return err
	})
}
