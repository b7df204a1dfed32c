// Package database handles opening the leads database.
package database

import (
	"database/sql"
	"fmt"

	_ "github.com/tursodatabase/go-libsql"
)

// New opens the database using the libsql driver.
// Supports local files ("file:leads.db") and in-memory databases (":memory:").
func New(dsn string) (*sql.DB, error) {
	db, err := sql.Open("libsql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
