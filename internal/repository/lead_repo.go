package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/leadforge/leadctl/internal/models"
)

// SQLiteLeadRepository implements LeadRepository for SQLite/libsql.
type SQLiteLeadRepository struct {
	db *sql.DB
}

// NewSQLiteLeadRepository creates a new SQLite lead repository.
func NewSQLiteLeadRepository(db *sql.DB) *SQLiteLeadRepository {
	return &SQLiteLeadRepository{db: db}
}

const leadColumns = `id, organization_id, name, phone, email, city, address, country, language,
	category, rating, maps_url, website, whatsapp_link, first_message, lead_score,
	temperature, suggested_price, status, notes, is_hidden, has_website, sequence_step,
	engagement_count, response_time_hours, last_contacted, last_response, next_followup, created_at`

// Create inserts a new lead.
func (r *SQLiteLeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	if lead.ID == "" {
		lead.ID = ulid.Make().String()
	}
	if lead.Country == "" {
		lead.Country = "Kosovo"
	}
	if lead.Language == "" {
		lead.Language = "sq"
	}
	if lead.Temperature == "" {
		lead.Temperature = models.TemperatureWarm
	}
	if lead.Status == "" {
		lead.Status = models.LeadStatusNew
	}
	lead.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO leads (
			id, organization_id, name, phone, email, city, address, country, language,
			category, rating, maps_url, website, whatsapp_link, first_message, lead_score,
			temperature, suggested_price, status, notes, is_hidden, has_website,
			sequence_step, engagement_count, response_time_hours,
			last_contacted, last_response, next_followup, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		lead.ID,
		lead.OrganizationID,
		lead.Name,
		nullIfEmpty(lead.Phone),
		nullIfEmpty(lead.Email),
		nullIfEmpty(lead.City),
		nullIfEmpty(lead.Address),
		lead.Country,
		lead.Language,
		nullIfEmpty(lead.Category),
		lead.Rating,
		nullIfEmpty(lead.MapsURL),
		nullIfEmpty(lead.Website),
		nullIfEmpty(lead.WhatsAppLink),
		nullIfEmpty(lead.FirstMessage),
		lead.LeadScore,
		string(lead.Temperature),
		nullIfEmpty(lead.SuggestedPrice),
		string(lead.Status),
		nullIfEmpty(lead.Notes),
		boolToInt(lead.IsHidden),
		boolToInt(lead.HasWebsite),
		lead.SequenceStep,
		lead.EngagementCount,
		lead.ResponseTimeHours,
		formatNullableTime(lead.LastContacted),
		formatNullableTime(lead.LastResponse),
		formatNullableTime(lead.NextFollowup),
		lead.CreatedAt.Format(time.RFC3339),
	)

	return err
}

// GetByID retrieves a lead by ID. Returns nil if not found.
func (r *SQLiteLeadRepository) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+leadColumns+`
		FROM leads
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads, err := r.scanLeads(rows)
	if err != nil {
		return nil, err
	}
	if len(leads) == 0 {
		return nil, nil
	}
	return leads[0], nil
}

// ListWithoutWebsite returns visible leads without a website, oldest first.
// Legacy databases have has_website and is_hidden nullable; NULL counts as
// "no website" and "not hidden".
func (r *SQLiteLeadRepository) ListWithoutWebsite(ctx context.Context, limit int) ([]*models.Lead, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+leadColumns+`
		FROM leads
		WHERE (has_website = 0 OR has_website IS NULL) AND IFNULL(is_hidden, 0) = 0
		ORDER BY created_at ASC, id ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanLeads(rows)
}

// Hide marks a lead as hidden so it no longer shows on the dashboard.
func (r *SQLiteLeadRepository) Hide(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE leads SET is_hidden = 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Count returns the total number of leads.
func (r *SQLiteLeadRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads`).Scan(&count)
	return count, err
}

// scanLeads reads lead rows. Every non-key column goes through a Null type:
// legacy databases have all of them nullable, and one NULL must not fail the
// whole select.
func (r *SQLiteLeadRepository) scanLeads(rows *sql.Rows) ([]*models.Lead, error) {
	var leads []*models.Lead
	for rows.Next() {
		var (
			l                           models.Lead
			phone, email, city, address sql.NullString
			country, language           sql.NullString
			category, mapsURL, website  sql.NullString
			whatsappLink, firstMessage  sql.NullString
			suggestedPrice, notes       sql.NullString
			temperature, status         sql.NullString
			rating                      sql.NullFloat64
			leadScore, sequenceStep     sql.NullInt64
			engagementCount             sql.NullInt64
			isHidden, hasWebsite        sql.NullInt64
			lastContacted, lastResponse sql.NullString
			nextFollowup, createdAt     sql.NullString
		)
		err := rows.Scan(
			&l.ID, &l.OrganizationID, &l.Name, &phone, &email, &city, &address,
			&country, &language, &category, &rating, &mapsURL, &website,
			&whatsappLink, &firstMessage, &leadScore, &temperature, &suggestedPrice,
			&status, &notes, &isHidden, &hasWebsite, &sequenceStep,
			&engagementCount, &l.ResponseTimeHours,
			&lastContacted, &lastResponse, &nextFollowup, &createdAt,
		)
		if err != nil {
			return nil, err
		}

		l.Phone = phone.String
		l.Email = email.String
		l.City = city.String
		l.Address = address.String
		l.Country = country.String
		l.Language = language.String
		l.Category = category.String
		l.MapsURL = mapsURL.String
		l.Website = website.String
		l.WhatsAppLink = whatsappLink.String
		l.FirstMessage = firstMessage.String
		l.SuggestedPrice = suggestedPrice.String
		l.Notes = notes.String
		l.Temperature = models.LeadTemperature(temperature.String)
		l.Status = models.LeadStatus(status.String)
		l.Rating = rating.Float64
		l.LeadScore = int(leadScore.Int64)
		l.SequenceStep = int(sequenceStep.Int64)
		l.EngagementCount = int(engagementCount.Int64)
		l.IsHidden = isHidden.Int64 != 0
		l.HasWebsite = hasWebsite.Int64 != 0
		l.LastContacted = parseNullableTime(lastContacted)
		l.LastResponse = parseNullableTime(lastResponse)
		l.NextFollowup = parseNullableTime(nextFollowup)
		l.CreatedAt, _ = time.Parse(time.RFC3339, createdAt.String)
		leads = append(leads, &l)
	}
	return leads, rows.Err()
}

func formatNullableTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func parseNullableTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	return &t
}
