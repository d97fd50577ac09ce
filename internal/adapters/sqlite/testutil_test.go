// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the single point where the database schema is loaded for
// tests. All setup goes through setupTestDB() and the seed* helpers, which use
// db.GetSchemaSQL() so test schemas cannot drift from production.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/ippo/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	// Every pooled connection to :memory: would get its own empty database.
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedIppo inserts a test IPPO and returns its ID.
// A zero performedAt leaves the column NULL.
func seedIppo(t *testing.T, db *sql.DB, id, title, status string, performedAt time.Time) string {
	t.Helper()
	if title == "" {
		title = "Test IPPO"
	}
	if status == "" {
		status = "pending"
	}
	var at sql.NullTime
	if !performedAt.IsZero() {
		at = sql.NullTime{Time: performedAt.UTC(), Valid: true}
	}
	_, err := db.Exec("INSERT INTO ippos (id, title, status, performed_at) VALUES (?, ?, ?, ?)", id, title, status, at)
	if err != nil {
		t.Fatalf("failed to seed ippo: %v", err)
	}
	return id
}
