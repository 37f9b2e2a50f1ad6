package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() so that callers can use
// errors.Is() while still printing a human-readable message.
var (
	// ErrNoDatabase is returned when the database path is empty.
	ErrNoDatabase = errors.New("no database specified: use --db or set 'database' in the configuration file")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidUserID is returned when the user filter is negative.
	ErrInvalidUserID = errors.New("invalid user id: must be positive")

	// ErrInvalidFormat is returned when the configuration file names an
	// unknown report format.
	ErrInvalidFormat = errors.New("invalid report format: must be text, json, or markdown")
)
