package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultDBPath is where the bot keeps its database, relative to the
	// bot's working directory.
	DefaultDBPath = "db/bot_data.db"

	// AppName is the application name used for XDG directory paths.
	AppName = "appreport"
)

// Report formats accepted in the configuration file.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Config holds all configuration options for appreport.
// It is populated from the configuration file and CLI flags and passed to
// the commands explicitly rather than kept in global state.
type Config struct {
	// DBPath is the path to the bot's SQLite database file.
	DBPath string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches the locations listed in FindConfigFile.
	ConfigFilePath string

	// Verbose enables debug log output on stderr.
	Verbose bool

	// JSONReport renders the report as JSON.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport renders the report as Markdown.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// StatusFilter limits the report to one status. Empty means all.
	StatusFilter string

	// UserID limits the report to one submitting user. Zero means all.
	UserID int64
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		DBPath: DefaultDBPath,
	}
}

// Apply copies the values set in the configuration file onto c.
// Empty fields in f leave c unchanged.
func (c *Config) Apply(f *File) error {
	if f == nil {
		return nil
	}

	if f.Database != "" {
		c.DBPath = f.Database
	}

	switch f.Format {
	case "", FormatText:
	case FormatJSON:
		c.JSONReport = true
	case FormatMarkdown:
		c.MarkdownReport = true
	default:
		return ErrInvalidFormat
	}

	if f.Output != "" {
		c.ReportFile = f.Output
	}

	return nil
}

// XDGConfigDir returns the XDG config directory for appreport.
// On Linux: ~/.config/appreport
// On macOS: ~/Library/Application Support/appreport
// On Windows: %APPDATA%\appreport
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return ErrNoDatabase
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.UserID < 0 {
		return ErrInvalidUserID
	}

	return nil
}
