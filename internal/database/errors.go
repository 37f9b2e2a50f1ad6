package database

import "errors"

var (
	// ErrDatabaseNotFound is returned by Open when the database file does not exist.
	ErrDatabaseNotFound = errors.New("database not found")

	// ErrTableNotFound is returned by Open when the database has no applications table.
	ErrTableNotFound = errors.New("applications table not found")

	// ErrApplicationNotFound is returned when no application has the requested ID.
	ErrApplicationNotFound = errors.New("application not found")
)
