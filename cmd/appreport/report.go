package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/appreport/internal/config"
	"github.com/nao1215/appreport/internal/database"
	applog "github.com/nao1215/appreport/internal/log"
	"github.com/nao1215/appreport/internal/model"
	"github.com/nao1215/appreport/internal/report"
)

// runReportCmd prints the application report.
// Every database read completes before the first byte of output is written,
// so a failure never leaves a partial report behind.
func runReportCmd(cmd *cobra.Command, _ []string) error {
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

	apps, err := db.ListApplications(commandContext(cmd), database.Filter{UserID: cfg.UserID})
	if err != nil {
		return err
	}

	status := model.ParseStatus(cfg.StatusFilter)
	apps = model.FilterByStatus(apps, status)

	logger.Debug("applications loaded",
		"count", len(apps),
		"status", status.String(),
		"userId", cfg.UserID,
	)

	return writeOutput(cmd, cfg, func(w report.Writer) error {
		_, err := w.Write(model.NewApplicationReport(apps))
		return err
	})
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the configuration file and flags.
// Flags explicitly set on the command line win over the file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicitly specified config file must exist; otherwise a missing
	// file just means defaults.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := cfg.Apply(file); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if flags.Changed("db") {
		cfg.DBPath, err = flags.GetString("db")
		if err != nil {
			return nil, err
		}
	}

	if flags.Changed("json") || flags.Changed("markdown") {
		cfg.JSONReport, err = flags.GetBool("json")
		if err != nil {
			return nil, err
		}
		cfg.MarkdownReport, err = flags.GetBool("markdown")
		if err != nil {
			return nil, err
		}
	}

	if flags.Changed("output") {
		cfg.ReportFile, err = flags.GetString("output")
		if err != nil {
			return nil, err
		}
	}

	// Filters are only defined on the report command itself
	if flags.Lookup("status") != nil {
		cfg.StatusFilter, err = flags.GetString("status")
		if err != nil {
			return nil, err
		}
	}
	if flags.Lookup("user") != nil {
		cfg.UserID, err = flags.GetInt64("user")
		if err != nil {
			return nil, err
		}
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// setupLogger creates a logger on the command's stderr so that stdout only
// carries the report.
func setupLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	return applog.NewSecureLogger(cmd.ErrOrStderr(), verbose)
}

// commandContext returns the command context, or a background context when
// the command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// openDatabase opens the configured database read-only.
func openDatabase(cfg *config.Config, logger *slog.Logger) (*database.AppDB, error) {
	db, err := database.Open(cfg.DBPath, database.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	logger.Debug("database opened", "path", db.Path())
	return db, nil
}

// newWriter returns the report writer for the configured format.
func newWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output)
	}
}

// writeOutput opens the configured destination and passes a writer for the
// configured format to write.
func writeOutput(cmd *cobra.Command, cfg *config.Config, write func(report.Writer) error) (err error) {
	if cfg.ReportFile == "" {
		return write(newWriter(cfg, cmd.OutOrStdout()))
	}

	// Create directories if they don't exist
	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// The report contains applicant contact data, so only the owner may read it
	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
	}()

	return write(newWriter(cfg, f))
}
