package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

//go:embed templates/appreport.yaml
var configTemplate []byte

// configFileName is the default configuration file name.
const configFileName = ".appreport"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented .appreport configuration file",
		Long: `Init writes a configuration file that points appreport at the bot's
database and sets the default report format.

Examples:
  # Create .appreport in the current directory
  appreport init

  # Create the per-user config file
  appreport init -o ~/.config/appreport/config.yaml

  # Replace an existing file
  appreport init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	// Shadows the root's persistent --output, which names a report file.
	cmd.Flags().StringP("output", "o", configFileName,
		"Path of the configuration file to write")
	cmd.Flags().BoolP("force", "f", false,
		"Replace the file if it already exists")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if err := writeConfigTemplate(path, force); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"Wrote %s\nSet 'database' to the bot's database file, then run:\n  appreport --config %s\n",
		path, path)
	return nil
}

// writeConfigTemplate writes the embedded template to path with mode 0600.
// Without force an existing file is left untouched.
func writeConfigTemplate(path string, force bool) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0600)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", path)
	}
	if err != nil {
		return fmt.Errorf("failed to create configuration file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close configuration file: %w", closeErr)
		}
	}()

	if _, err := f.Write(configTemplate); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	return nil
}
