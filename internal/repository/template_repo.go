package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/leadforge/leadctl/internal/models"
)

// SQLiteTemplateRepository implements TemplateRepository for SQLite/libsql.
type SQLiteTemplateRepository struct {
	db *sql.DB
}

// NewSQLiteTemplateRepository creates a new SQLite template repository.
func NewSQLiteTemplateRepository(db *sql.DB) *SQLiteTemplateRepository {
	return &SQLiteTemplateRepository{db: db}
}

const templateColumns = `id, organization_id, name, channel, language, category, subject,
	content, variant, times_sent, times_opened, times_responded, is_active, is_default, created_at`

// Create inserts a new message template.
func (r *SQLiteTemplateRepository) Create(ctx context.Context, tmpl *models.MessageTemplate) error {
	if tmpl.ID == "" {
		tmpl.ID = ulid.Make().String()
	}
	if tmpl.Variant == "" {
		tmpl.Variant = "A"
	}
	if tmpl.Language == "" {
		tmpl.Language = "sq"
	}
	tmpl.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO message_templates (
			id, organization_id, name, channel, language, category, subject,
			content, variant, times_sent, times_opened, times_responded,
			is_active, is_default, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		tmpl.ID,
		tmpl.OrganizationID,
		tmpl.Name,
		string(tmpl.Channel),
		tmpl.Language,
		nullIfEmpty(tmpl.Category),
		nullIfEmpty(tmpl.Subject),
		tmpl.Content,
		tmpl.Variant,
		tmpl.TimesSent,
		tmpl.TimesOpened,
		tmpl.TimesResponded,
		boolToInt(tmpl.IsActive),
		boolToInt(tmpl.IsDefault),
		tmpl.CreatedAt.Format(time.RFC3339),
	)

	return err
}

// GetByID retrieves a template by ID.
func (r *SQLiteTemplateRepository) GetByID(ctx context.Context, id string) (*models.MessageTemplate, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+templateColumns+`
		FROM message_templates
		WHERE id = ?
	`, id)
	return r.scanTemplate(row)
}

// GetByName retrieves a template by name.
func (r *SQLiteTemplateRepository) GetByName(ctx context.Context, name string) (*models.MessageTemplate, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+templateColumns+`
		FROM message_templates
		WHERE name = ?
	`, name)
	return r.scanTemplate(row)
}

// GetDefault retrieves the template flagged as default, or nil if none.
func (r *SQLiteTemplateRepository) GetDefault(ctx context.Context) (*models.MessageTemplate, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+templateColumns+`
		FROM message_templates
		WHERE is_default = 1
		LIMIT 1
	`)
	return r.scanTemplate(row)
}

// SetDefault flags one template as default and clears all others, atomically.
func (r *SQLiteTemplateRepository) SetDefault(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE message_templates SET is_default = 0 WHERE is_default = 1`); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `UPDATE message_templates SET is_default = 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}

// List returns all templates, newest first.
func (r *SQLiteTemplateRepository) List(ctx context.Context) ([]*models.MessageTemplate, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+templateColumns+`
		FROM message_templates
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanTemplates(rows)
}

// ListByCategory returns templates for a target category, newest first.
func (r *SQLiteTemplateRepository) ListByCategory(ctx context.Context, category string) ([]*models.MessageTemplate, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+templateColumns+`
		FROM message_templates
		WHERE category = ?
		ORDER BY created_at DESC, id DESC
	`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanTemplates(rows)
}

// ExistsByName reports whether a template with the given name exists.
func (r *SQLiteTemplateRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM message_templates WHERE name = ?`, name).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the total number of templates.
func (r *SQLiteTemplateRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM message_templates`).Scan(&count)
	return count, err
}

// scanTemplate scans a single template row. Returns nil for sql.ErrNoRows.
func (r *SQLiteTemplateRepository) scanTemplate(row *sql.Row) (*models.MessageTemplate, error) {
	var (
		t         models.MessageTemplate
		channel   string
		category  sql.NullString
		subject   sql.NullString
		isActive  int
		isDefault int
		createdAt string
	)

	err := row.Scan(
		&t.ID, &t.OrganizationID, &t.Name, &channel, &t.Language, &category, &subject,
		&t.Content, &t.Variant, &t.TimesSent, &t.TimesOpened, &t.TimesResponded,
		&isActive, &isDefault, &createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	t.Channel = models.ContactChannel(channel)
	t.Category = category.String
	t.Subject = subject.String
	t.IsActive = isActive != 0
	t.IsDefault = isDefault != 0
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &t, nil
}

func (r *SQLiteTemplateRepository) scanTemplates(rows *sql.Rows) ([]*models.MessageTemplate, error) {
	var templates []*models.MessageTemplate
	for rows.Next() {
		var (
			t         models.MessageTemplate
			channel   string
			category  sql.NullString
			subject   sql.NullString
			isActive  int
			isDefault int
			createdAt string
		)
		err := rows.Scan(
			&t.ID, &t.OrganizationID, &t.Name, &channel, &t.Language, &category, &subject,
			&t.Content, &t.Variant, &t.TimesSent, &t.TimesOpened, &t.TimesResponded,
			&isActive, &isDefault, &createdAt,
		)
		if err != nil {
			return nil, err
		}
		t.Channel = models.ContactChannel(channel)
		t.Category = category.String
		t.Subject = subject.String
		t.IsActive = isActive != 0
		t.IsDefault = isDefault != 0
		t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		templates = append(templates, &t)
	}
	return templates, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
