package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/appreport/internal/model"
)

// applicationColumns are the columns read for every application, in scan order.
const applicationColumns = "ID, USER_ID, TARIFF, NAME, PRICE, PHONE, EMAIL, ADDRESS, TIMESTAMP, STATUS"

// AppDB provides read access to the applications stored by the bot.
type AppDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures AppDB behavior.
type Options struct {
	// ReadOnly opens the database with mode=ro.
	// The bot may be writing concurrently; read-only mode guarantees
	// appreport never modifies its data.
	ReadOnly bool

	// BusyTimeout is how long a query waits for a lock held by the bot.
	BusyTimeout time.Duration
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		ReadOnly:    true,
		BusyTimeout: 5 * time.Second,
	}
}

// Open opens the database file at path.
// The file must already exist; Open never creates it.
// The returned AppDB has been checked to be a SQLite database containing
// an applications table.
func Open(path string, opts Options) (*AppDB, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w at %s", ErrDatabaseNotFound, path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to check database path: %w", err)
	}

	db, err := sql.Open("sqlite", buildDSN(path, opts))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One query at a time is all the report needs.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	adb := &AppDB{
		db:     db,
		dbPath: path,
	}

	if err := adb.verify(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return adb, nil
}

// uriPathReplacer escapes the characters SQLite treats as URI delimiters or
// escapes in the path of a file: URI.
var uriPathReplacer = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// buildDSN builds a modernc.org/sqlite connection string.
// The file: prefix makes SQLite interpret mode as a URI parameter, so the
// path is escaped to keep ?, # and % in file names from ending it early.
func buildDSN(path string, opts Options) string {
	mode := "rw"
	if opts.ReadOnly {
		mode = "ro"
	}

	var sb strings.Builder
	sb.WriteString("file:")
	sb.WriteString(uriPathReplacer.Replace(path))
	sb.WriteString("?mode=")
	sb.WriteString(mode)
	if opts.BusyTimeout > 0 {
		fmt.Fprintf(&sb, "&_pragma=busy_timeout(%d)", opts.BusyTimeout.Milliseconds())
	}
	return sb.String()
}

// verify checks that the file is a SQLite database with an applications table.
// SQLite opens files lazily, so this is the first statement that reads the header.
func (adb *AppDB) verify(ctx context.Context) error {
	var count int
	err := adb.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'applications'",
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to read database %s: %w", adb.dbPath, err)
	}
	if count == 0 {
		return fmt.Errorf("%w in %s", ErrTableNotFound, adb.dbPath)
	}
	return nil
}

// Close closes the database connection.
func (adb *AppDB) Close() error {
	return adb.db.Close()
}

// Path returns the path of the opened database file.
func (adb *AppDB) Path() string {
	return adb.dbPath
}

// Filter narrows the applications returned by ListApplications.
type Filter struct {
	// UserID limits results to one submitting user. Zero means all users.
	UserID int64
}

// ListApplications returns all applications matching filter, newest first.
// The full result set is read into memory before returning.
func (adb *AppDB) ListApplications(ctx context.Context, filter Filter) ([]model.Application, error) {
	query := "SELECT " + applicationColumns + " FROM applications"
	args := make([]interface{}, 0, 1)

	if filter.UserID != 0 {
		query += " WHERE USER_ID = ?"
		args = append(args, filter.UserID)
	}

	query += " ORDER BY ID DESC"

	rows, err := adb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	results := make([]model.Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read applications: %w", err)
	}

	return results, nil
}

// GetApplication returns the application with the given ID.
// It returns ErrApplicationNotFound if there is none.
func (adb *AppDB) GetApplication(ctx context.Context, id int64) (*model.Application, error) {
	query := "SELECT " + applicationColumns + " FROM applications WHERE ID = ?"

	app, err := scanApplication(adb.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrApplicationNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	return app, nil
}

// CountByStatus returns the number of applications per stored status.
func (adb *AppDB) CountByStatus(ctx context.Context) (map[model.Status]int, error) {
	query := `
	SELECT STATUS, COUNT(*) FROM applications
	GROUP BY STATUS
	`

	rows, err := adb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}
	defer rows.Close()

	counts := make(map[model.Status]int)
	for rows.Next() {
		var status sql.NullString
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[model.Status(status.String)] += count
	}

	return counts, rows.Err()
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanApplication reads one application in applicationColumns order.
// Text columns are scanned as nullable because the bot leaves optional
// fields such as EMAIL unset.
func scanApplication(row rowScanner) (*model.Application, error) {
	var app model.Application
	var (
		tariff    sql.NullString
		name      sql.NullString
		price     sql.NullString
		phone     sql.NullString
		email     sql.NullString
		address   sql.NullString
		timestamp sql.NullString
		status    sql.NullString
	)

	err := row.Scan(
		&app.ID,
		&app.UserID,
		&tariff,
		&name,
		&price,
		&phone,
		&email,
		&address,
		&timestamp,
		&status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan application: %w", err)
	}

	app.Tariff = tariff.String
	app.Name = name.String
	app.Price = parsePrice(price)
	app.Phone = phone.String
	app.Email = email.String
	app.Address = address.String
	app.CreatedAt = parseTimestamp(timestamp.String)
	app.Status = model.Status(status.String)

	return &app, nil
}

// parsePrice converts the stored price text to a decimal.
// Values that are NULL or not numeric yield an invalid NullDecimal.
func parsePrice(s sql.NullString) decimal.NullDecimal {
	if !s.Valid {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s.String))
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite CURRENT_TIMESTAMP format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
	"2006-01-02 15:04",        // strftime('%Y-%m-%d %H:%M')
	"2006-01-02",              // date only
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// If parsing fails with all formats, it returns the zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
