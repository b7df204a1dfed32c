// Package export writes leads out for the website-generation pipeline.
// The row shape matches the selected_leads.json format the generators consume.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/leadforge/leadctl/internal/models"
	"github.com/leadforge/leadctl/internal/repository"
)

// DefaultLimit caps how many leads one export run selects.
const DefaultLimit = 50

// LeadRow is one exported lead.
type LeadRow struct {
	Name              string   `csv:"name" json:"name"`
	Phone             string   `csv:"phone" json:"phone"`
	Email             string   `csv:"email" json:"email"`
	City              string   `csv:"city" json:"city"`
	Address           string   `csv:"address" json:"address"`
	Country           string   `csv:"country" json:"country"`
	Language          string   `csv:"language" json:"language"`
	Category          string   `csv:"category" json:"category"`
	Rating            float64  `csv:"rating" json:"rating"`
	MapsURL           string   `csv:"maps_url" json:"maps_url"`
	Website           string   `csv:"website" json:"website"`
	WhatsAppLink      string   `csv:"whatsapp_link" json:"whatsapp_link"`
	FirstMessage      string   `csv:"first_message" json:"first_message"`
	LeadScore         int      `csv:"lead_score" json:"lead_score"`
	Temperature       string   `csv:"temperature" json:"temperature"`
	SuggestedPrice    string   `csv:"suggested_price" json:"suggested_price"`
	Status            string   `csv:"status" json:"status"`
	Notes             string   `csv:"notes" json:"notes"`
	CreatedAt         string   `csv:"created_at" json:"created_at"`
	LastContacted     string   `csv:"last_contacted" json:"last_contacted"`
	LastResponse      string   `csv:"last_response" json:"last_response"`
	NextFollowup      string   `csv:"next_followup" json:"next_followup"`
	SequenceStep      int      `csv:"sequence_step" json:"sequence_step"`
	HasWebsite        int      `csv:"has_website" json:"has_website"`
	ResponseTimeHours *float64 `csv:"response_time_hours" json:"response_time_hours"`
	EngagementCount   int      `csv:"engagement_count" json:"engagement_count"`
}

// Rows converts leads to export rows, applying the generators' fallbacks for
// missing values (rating 4.5, score 70, WARM, NEW, price range).
func Rows(leads []*models.Lead) []LeadRow {
	rows := make([]LeadRow, 0, len(leads))
	for _, l := range leads {
		row := LeadRow{
			Name:              l.Name,
			Phone:             l.Phone,
			Email:             l.Email,
			City:              l.City,
			Address:           l.Address,
			Country:           fallback(l.Country, "Kosovo"),
			Language:          fallback(l.Language, "sq"),
			Category:          fallback(l.Category, "business"),
			Rating:            l.Rating,
			MapsURL:           l.MapsURL,
			Website:           l.Website,
			WhatsAppLink:      l.WhatsAppLink,
			FirstMessage:      l.FirstMessage,
			LeadScore:         l.LeadScore,
			Temperature:       fallback(string(l.Temperature), string(models.TemperatureWarm)),
			SuggestedPrice:    fallback(l.SuggestedPrice, "300 - 500"),
			Status:            fallback(string(l.Status), string(models.LeadStatusNew)),
			Notes:             l.Notes,
			CreatedAt:         formatTime(&l.CreatedAt),
			LastContacted:     formatTime(l.LastContacted),
			LastResponse:      formatTime(l.LastResponse),
			NextFollowup:      formatTime(l.NextFollowup),
			SequenceStep:      l.SequenceStep,
			ResponseTimeHours: l.ResponseTimeHours,
			EngagementCount:   l.EngagementCount,
		}
		if l.Rating == 0 {
			row.Rating = 4.5
		}
		if l.LeadScore == 0 {
			row.LeadScore = 70
		}
		if l.HasWebsite {
			row.HasWebsite = 1
		}
		rows = append(rows, row)
	}
	return rows
}

// Fetch selects leads without a website, up to limit, and converts them.
func Fetch(ctx context.Context, repos *repository.Repositories, limit int) ([]LeadRow, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	leads, err := repos.Lead.ListWithoutWebsite(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select leads: %w", err)
	}
	return Rows(leads), nil
}

// WriteJSON writes rows as indented JSON.
func WriteJSON(w io.Writer, rows []LeadRow) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(rows)
}

// WriteCSV writes rows as CSV with a header line.
func WriteCSV(w io.Writer, rows []LeadRow) error {
	return gocsv.Marshal(rows, w)
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
