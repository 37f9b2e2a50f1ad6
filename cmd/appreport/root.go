package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/appreport/internal/config"
)

// NewRootCmd creates the root command for appreport.
// Running it without a subcommand prints the application report.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appreport",
		Short: "Print the applications stored by the connection-request bot",
		Long: `appreport reads the bot's SQLite database and prints every application,
newest first:

  Found 2 applications
  ID=8, Name=Ivan Petrov, Status=Новая
  ID=7, Name=Jane Doe, Status=Выполнена

The database is opened read-only and is never modified.

Examples:
  # Report from the default database (db/bot_data.db)
  appreport

  # Report from a specific database
  appreport --db /srv/bot/db/bot_data.db

  # Only new applications of one user
  appreport --status new --user 123456789

  # Markdown report written to a file
  appreport --markdown -o reports/applications.md`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runReportCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("db", "d", config.DefaultDBPath,
		"Path to the bot's SQLite database")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .appreport in current or home directory)")

	// Output format flags
	cmd.PersistentFlags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --markdown)")
	cmd.PersistentFlags().BoolP("markdown", "m", false,
		"Output Markdown (mutually exclusive with --json)")
	cmd.PersistentFlags().StringP("output", "o", "",
		"Write output to specified file path (creates directories if needed)")

	// Report filters
	cmd.Flags().StringP("status", "s", "",
		"Only include applications in this status (label or alias: new, in_progress, done, cancelled)")
	cmd.Flags().Int64P("user", "u", 0,
		"Only include applications submitted by this user ID")

	// Add subcommands
	cmd.AddCommand(NewShowCmd())
	cmd.AddCommand(NewSummaryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
// SIGINT and SIGTERM cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
