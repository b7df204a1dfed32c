package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leadforge/leadctl/internal/database"
	"github.com/leadforge/leadctl/internal/database/schema"
)

// execRoot runs the bare command against dsn and returns what it printed.
// Flag state is reset so tests can run the command more than once.
func execRoot(t *testing.T, dsn string) string {
	t.Helper()

	var buf bytes.Buffer
	dbFlag = ""
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--db", dsn})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v (the bare command must always succeed)", err)
	}
	return strings.TrimSpace(buf.String())
}

func TestOutcomeLine(t *testing.T) {
	tests := []struct {
		name string
		res  schema.ColumnResult
		err  error
		want string
	}{
		{"added", schema.ColumnAdded, nil, "is_default column added successfully"},
		{"exists", schema.ColumnExists, nil, "is_default column already exists"},
		{"error", schema.ColumnExists, errors.New("no such table: message_templates"), "Error: no such table: message_templates"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outcomeLine(tt.res, tt.err); got != tt.want {
				t.Errorf("outcomeLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoot_AddsColumnThenReportsExisting(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "leads.db")

	db, err := database.New(dsn)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	ddl := `CREATE TABLE message_templates (
		id TEXT PRIMARY KEY,
		name TEXT,
		content TEXT
	)`
	if _, err := db.Exec(ddl); err != nil {
		t.Fatalf("failed to create templates table: %v", err)
	}

	if out := execRoot(t, dsn); out != "is_default column added successfully" {
		t.Errorf("first run output = %q, want added message", out)
	}
	if out := execRoot(t, dsn); out != "is_default column already exists" {
		t.Errorf("second run output = %q, want already-exists message", out)
	}

	exists, err := schema.ColumnExistsIn(context.Background(), db, "message_templates", "is_default")
	if err != nil {
		t.Fatalf("ColumnExistsIn() error: %v", err)
	}
	if !exists {
		t.Error("is_default column should exist after running the command")
	}
	_ = db.Close()
}

func TestRoot_MissingTablePrintsErrorAndStillSucceeds(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "leads.db")

	out := execRoot(t, dsn)
	if !strings.HasPrefix(out, "Error: ") {
		t.Errorf("output = %q, want an Error line for the missing table", out)
	}
}
