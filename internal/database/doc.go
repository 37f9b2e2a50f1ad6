// Package database provides read-only access to the bot's SQLite database.
//
// The database is owned by the Telegram bot that collects applications.
// AppDB opens it in read-only mode and exposes the queries used by the
// report commands; it never creates, migrates, or writes to the file.
//
// The driver is modernc.org/sqlite, a CGO-free SQLite implementation, so the
// binary cross-compiles without a C toolchain.
package database
