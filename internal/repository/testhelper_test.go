package repository

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/tursodatabase/go-libsql"

	"github.com/leadforge/leadctl/internal/database/schema"
)

// setupTestDB creates an in-memory database for testing, initializes the
// leads schema, and returns a connection cleaned up when the test completes.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("libsql", ":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if err := schema.Init(context.Background(), db); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// setupTestRepos creates all repositories using a test database.
func setupTestRepos(t *testing.T) *Repositories {
	t.Helper()
	db := setupTestDB(t)
	return NewRepositories(db)
}

// insertTestLead inserts a lead row directly.
func insertTestLead(t *testing.T, db *sql.DB, id, name string, hasWebsite bool) {
	t.Helper()
	query := `
		INSERT INTO leads (id, name, city, category, has_website, created_at)
		VALUES (?, ?, 'Prishtina', 'dentist', ?, datetime('now'))
	`
	if _, err := db.Exec(query, id, name, boolToInt(hasWebsite)); err != nil {
		t.Fatalf("failed to insert test lead: %v", err)
	}
}

// insertTestTemplate inserts a template row directly.
func insertTestTemplate(t *testing.T, db *sql.DB, id, name, category string, isDefault bool) {
	t.Helper()
	query := `
		INSERT INTO message_templates (id, name, channel, category, content, is_default, created_at)
		VALUES (?, ?, 'whatsapp', ?, 'Pershendetje {business_name}', ?, datetime('now'))
	`
	if _, err := db.Exec(query, id, name, category, boolToInt(isDefault)); err != nil {
		t.Fatalf("failed to insert test template: %v", err)
	}
}
