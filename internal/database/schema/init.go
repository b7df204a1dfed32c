package schema

import (
	"context"
	"database/sql"
	"fmt"
)

// baseSchema creates the leads database tables. Every statement is
// IF NOT EXISTS so Init can run against a database in any state.
//
// message_templates is created without the is_default column on purpose:
// older databases in the field predate that column, and the same
// EnsureColumn path upgrades both fresh and old databases (see Init).
var baseSchema = []string{
	// Application users
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'sales',
		is_active INTEGER NOT NULL DEFAULT 1,
		failed_login_attempts INTEGER NOT NULL DEFAULT 0,
		locked_until TEXT,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)`,

	// Business leads from scraping and imports
	`CREATE TABLE IF NOT EXISTS leads (
		id TEXT PRIMARY KEY,
		organization_id TEXT,
		name TEXT NOT NULL,
		phone TEXT,
		email TEXT,
		city TEXT,
		address TEXT,
		country TEXT NOT NULL DEFAULT 'Kosovo',
		language TEXT NOT NULL DEFAULT 'sq',
		category TEXT,
		rating REAL NOT NULL DEFAULT 0,
		maps_url TEXT,
		website TEXT,
		whatsapp_link TEXT,
		first_message TEXT,
		lead_score INTEGER NOT NULL DEFAULT 0,
		temperature TEXT NOT NULL DEFAULT 'WARM',
		suggested_price TEXT,
		status TEXT NOT NULL DEFAULT 'NEW',
		notes TEXT,
		is_hidden INTEGER NOT NULL DEFAULT 0,
		has_website INTEGER NOT NULL DEFAULT 0,
		sequence_step INTEGER NOT NULL DEFAULT 0,
		engagement_count INTEGER NOT NULL DEFAULT 0,
		response_time_hours REAL,
		last_contacted TEXT,
		last_response TEXT,
		next_followup TEXT,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_status ON leads(status)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_category ON leads(category)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_organization_id ON leads(organization_id)`,

	// Outreach message templates
	`CREATE TABLE IF NOT EXISTS message_templates (
		id TEXT PRIMARY KEY,
		organization_id TEXT,
		name TEXT NOT NULL,
		channel TEXT NOT NULL,
		language TEXT NOT NULL DEFAULT 'sq',
		category TEXT,
		subject TEXT,
		content TEXT NOT NULL,
		variant TEXT NOT NULL DEFAULT 'A',
		times_sent INTEGER NOT NULL DEFAULT 0,
		times_opened INTEGER NOT NULL DEFAULT 0,
		times_responded INTEGER NOT NULL DEFAULT 0,
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_message_templates_category ON message_templates(category)`,

	// Per-lead outreach log
	`CREATE TABLE IF NOT EXISTS contact_logs (
		id TEXT PRIMARY KEY,
		lead_id TEXT NOT NULL REFERENCES leads(id),
		channel TEXT NOT NULL,
		direction TEXT NOT NULL DEFAULT 'outbound',
		message TEXT,
		twilio_message_sid TEXT,
		external_message_id TEXT,
		status TEXT,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_contact_logs_lead_id ON contact_logs(lead_id)`,
	`CREATE INDEX IF NOT EXISTS idx_contact_logs_twilio_message_sid ON contact_logs(twilio_message_sid)`,
}

// Init creates the leads schema if absent and brings message_templates up to
// the current column set. Idempotent.
func Init(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range baseSchema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute statement: %w\n%s", err, stmt)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	// Columns added after the original schema shipped.
	if _, err := EnsureColumn(ctx, db, "message_templates", "is_default", "BOOLEAN", "0"); err != nil {
		return err
	}

	return nil
}
