package main

import (
	"bytes"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"slices"
	"testing"

	_ "modernc.org/sqlite"
)

// botSchema is the applications table as created by the bot.
const botSchema = `
CREATE TABLE applications (
	ID INTEGER PRIMARY KEY AUTOINCREMENT,
	USER_ID INTEGER NOT NULL, TARIFF TEXT NOT NULL, PRICE TEXT NOT NULL,
	NAME TEXT NOT NULL, PHONE TEXT NOT NULL, MESSENGER TEXT,
	EMAIL TEXT, ADDRESS TEXT NOT NULL, FLYER_CODE TEXT, STATUS TEXT DEFAULT 'Новая',
	TIMESTAMP DATETIME DEFAULT CURRENT_TIMESTAMP,
	CHAT_STATUS TEXT DEFAULT 'New',
	CHAT_ADMIN_ID INTEGER DEFAULT 0,
	CHAT_POSTPONED_UNTIL DATETIME
);`

// testApp is a row inserted into a test database.
type testApp struct {
	id     int64
	userID int64
	name   string
	status string
}

// defaultTestApps are inserted in non-sorted ID order on purpose.
var defaultTestApps = []testApp{
	{id: 1, userID: 100, name: "Alice", status: "Новая"},
	{id: 7, userID: 200, name: "Jane Doe", status: "approved"},
	{id: 3, userID: 100, name: "Bob", status: "Выполнена"},
}

// createTestDB creates a bot database containing apps and returns its path.
func createTestDB(t *testing.T, apps ...testApp) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bot_data.db")
	db, err := sql.Open("sqlite", path+"?mode=rwc")
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, botSchema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	for _, app := range apps {
		_, err := db.ExecContext(ctx, `
		INSERT INTO applications (ID, USER_ID, TARIFF, PRICE, NAME, PHONE, EMAIL, ADDRESS, STATUS, TIMESTAMP)
		VALUES (?, ?, 'Home 100', '750', ?, '+79990000000', 'user@example.com', 'Lenina 1', ?, '2025-03-01 12:30:00')`,
			app.id, app.userID, app.name, app.status,
		)
		if err != nil {
			t.Fatalf("failed to insert application %d: %v", app.id, err)
		}
	}

	return path
}

// emptyConfigFile returns the path of an empty configuration file so that
// tests never pick up a .appreport from the developer's machine.
func emptyConfigFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// runApp executes the root command with args and returns stdout and stderr.
// An empty configuration file is used unless args name one.
func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	if !slices.Contains(args, "--config") {
		args = append([]string{"--config", emptyConfigFile(t)}, args...)
	}

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}
