// Package main provides the entry point for the appreport CLI.
//
// appreport prints the applications collected by the connection-request bot
// from its SQLite database. It only reads the database.
//
// Usage:
//
//	appreport
//	appreport --db /srv/bot/db/bot_data.db
//	appreport show <id>
//	appreport summary
//
// See --help for all available options.
package main

// main is the entry point for appreport.
func main() {
	Execute()
}
