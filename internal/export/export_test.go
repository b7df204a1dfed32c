package export

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"testing"
	"time"

	_ "github.com/tursodatabase/go-libsql"

	"github.com/leadforge/leadctl/internal/database/schema"
	"github.com/leadforge/leadctl/internal/models"
	"github.com/leadforge/leadctl/internal/repository"
)

func setupTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()

	db, err := sql.Open("libsql", ":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	if err := schema.Init(context.Background(), db); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	return repository.NewRepositories(db)
}

func TestRows_Fallbacks(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	leads := []*models.Lead{
		{Name: "Bare Lead", CreatedAt: created},
	}

	rows := Rows(leads)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	row := rows[0]
	if row.Country != "Kosovo" {
		t.Errorf("country = %q, want Kosovo", row.Country)
	}
	if row.Language != "sq" {
		t.Errorf("language = %q, want sq", row.Language)
	}
	if row.Category != "business" {
		t.Errorf("category = %q, want business", row.Category)
	}
	if row.Rating != 4.5 {
		t.Errorf("rating = %v, want 4.5", row.Rating)
	}
	if row.LeadScore != 70 {
		t.Errorf("lead score = %d, want 70", row.LeadScore)
	}
	if row.Temperature != "WARM" {
		t.Errorf("temperature = %q, want WARM", row.Temperature)
	}
	if row.SuggestedPrice != "300 - 500" {
		t.Errorf("suggested price = %q, want 300 - 500", row.SuggestedPrice)
	}
	if row.Status != "NEW" {
		t.Errorf("status = %q, want NEW", row.Status)
	}
	if row.CreatedAt != "2026-03-01T10:00:00Z" {
		t.Errorf("created_at = %q, want RFC3339", row.CreatedAt)
	}
	if row.LastContacted != "" {
		t.Errorf("last_contacted = %q, want empty", row.LastContacted)
	}
}

func TestRows_KeepsRealValues(t *testing.T) {
	leads := []*models.Lead{
		{
			Name:        "Klinika Arta",
			City:        "Prizren",
			Category:    "dentist",
			Rating:      4.9,
			LeadScore:   88,
			Temperature: models.TemperatureHot,
			Status:      models.LeadStatusContacted,
			HasWebsite:  true,
			CreatedAt:   time.Now(),
		},
	}

	row := Rows(leads)[0]
	if row.Category != "dentist" {
		t.Errorf("category = %q, want dentist", row.Category)
	}
	if row.Rating != 4.9 {
		t.Errorf("rating = %v, want 4.9", row.Rating)
	}
	if row.Temperature != "HOT" {
		t.Errorf("temperature = %q, want HOT", row.Temperature)
	}
	if row.HasWebsite != 1 {
		t.Errorf("has_website = %d, want 1", row.HasWebsite)
	}
}

func TestFetch_SelectsWebsitelessLeads(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	for _, l := range []*models.Lead{
		{Name: "No Website", City: "Prishtina"},
		{Name: "Has Website", Website: "https://example.com", HasWebsite: true},
	} {
		if err := repos.Lead.Create(ctx, l); err != nil {
			t.Fatalf("failed to create lead: %v", err)
		}
	}

	rows, err := Fetch(ctx, repos, 0)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Name != "No Website" {
		t.Errorf("name = %q, want No Website", rows[0].Name)
	}
}

func TestWriteJSON(t *testing.T) {
	rows := Rows([]*models.Lead{{Name: "Byrek te Liria", City: "Gjakova", CreatedAt: time.Now()}})

	var buf bytes.Buffer
	if err := WriteJSON(&buf, rows); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("decoded %d rows, want 1", len(decoded))
	}
	if decoded[0]["name"] != "Byrek te Liria" {
		t.Errorf("name = %v, want Byrek te Liria", decoded[0]["name"])
	}
	if decoded[0]["country"] != "Kosovo" {
		t.Errorf("country = %v, want Kosovo", decoded[0]["country"])
	}
}

func TestWriteCSV(t *testing.T) {
	rows := Rows([]*models.Lead{
		{Name: "One", City: "Peja", CreatedAt: time.Now()},
		{Name: "Two", City: "Mitrovica", CreatedAt: time.Now()},
	})

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows", len(lines))
	}
	if !strings.Contains(lines[0], "name") || !strings.Contains(lines[0], "whatsapp_link") {
		t.Errorf("header missing expected columns: %q", lines[0])
	}
	if !strings.Contains(lines[1], "One") {
		t.Errorf("first row missing lead name: %q", lines[1])
	}
}
