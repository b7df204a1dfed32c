package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/leadforge/leadctl/internal/models"
)

func TestTemplateRepository_Create(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	tmpl := &models.MessageTemplate{
		Name:     "Dentist - Initial (Albanian)",
		Channel:  models.ChannelWhatsApp,
		Category: "dentist",
		Content:  "Pershendetje {business_name}",
		IsActive: true,
	}

	if err := repos.Template.Create(ctx, tmpl); err != nil {
		t.Fatalf("failed to create template: %v", err)
	}
	if tmpl.ID == "" {
		t.Error("expected ID to be generated")
	}
	if tmpl.Variant != "A" {
		t.Errorf("variant = %q, want default %q", tmpl.Variant, "A")
	}
	if tmpl.Language != "sq" {
		t.Errorf("language = %q, want default %q", tmpl.Language, "sq")
	}

	fetched, err := repos.Template.GetByID(ctx, tmpl.ID)
	if err != nil {
		t.Fatalf("failed to fetch template: %v", err)
	}
	if fetched == nil {
		t.Fatal("expected template, got nil")
	}
	if fetched.Name != tmpl.Name {
		t.Errorf("name = %q, want %q", fetched.Name, tmpl.Name)
	}
	if fetched.Category != "dentist" {
		t.Errorf("category = %q, want %q", fetched.Category, "dentist")
	}
	if fetched.IsDefault {
		t.Error("new template should not be default")
	}
}

func TestTemplateRepository_GetByID_NotFound(t *testing.T) {
	repos := setupTestRepos(t)

	fetched, err := repos.Template.GetByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetched != nil {
		t.Errorf("expected nil for missing template, got %+v", fetched)
	}
}

func TestTemplateRepository_GetDefault(t *testing.T) {
	repos := setupTestRepos(t)
	db := repos.Template.(*SQLiteTemplateRepository).db
	ctx := context.Background()

	insertTestTemplate(t, db, "t1", "Template One", "dentist", false)
	insertTestTemplate(t, db, "t2", "Template Two", "salon", true)

	def, err := repos.Template.GetDefault(ctx)
	if err != nil {
		t.Fatalf("GetDefault() error: %v", err)
	}
	if def == nil {
		t.Fatal("expected default template, got nil")
	}
	if def.ID != "t2" {
		t.Errorf("default ID = %q, want %q", def.ID, "t2")
	}
}

func TestTemplateRepository_GetDefault_NoneSet(t *testing.T) {
	repos := setupTestRepos(t)
	db := repos.Template.(*SQLiteTemplateRepository).db

	insertTestTemplate(t, db, "t1", "Template One", "dentist", false)

	def, err := repos.Template.GetDefault(context.Background())
	if err != nil {
		t.Fatalf("GetDefault() error: %v", err)
	}
	if def != nil {
		t.Errorf("expected nil when no default set, got %+v", def)
	}
}

func TestTemplateRepository_SetDefault(t *testing.T) {
	repos := setupTestRepos(t)
	db := repos.Template.(*SQLiteTemplateRepository).db
	ctx := context.Background()

	insertTestTemplate(t, db, "t1", "Template One", "dentist", true)
	insertTestTemplate(t, db, "t2", "Template Two", "salon", false)

	if err := repos.Template.SetDefault(ctx, "t2"); err != nil {
		t.Fatalf("SetDefault() error: %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM message_templates WHERE is_default = 1`).Scan(&count); err != nil {
		t.Fatalf("failed to count defaults: %v", err)
	}
	if count != 1 {
		t.Errorf("default count = %d, want exactly 1", count)
	}

	def, err := repos.Template.GetDefault(ctx)
	if err != nil {
		t.Fatalf("GetDefault() error: %v", err)
	}
	if def == nil || def.ID != "t2" {
		t.Errorf("default = %+v, want t2", def)
	}
}

func TestTemplateRepository_SetDefault_Missing(t *testing.T) {
	repos := setupTestRepos(t)

	err := repos.Template.SetDefault(context.Background(), "missing")
	if err != sql.ErrNoRows {
		t.Errorf("SetDefault() error = %v, want sql.ErrNoRows", err)
	}
}

func TestTemplateRepository_ListByCategory(t *testing.T) {
	repos := setupTestRepos(t)
	db := repos.Template.(*SQLiteTemplateRepository).db
	ctx := context.Background()

	insertTestTemplate(t, db, "t1", "Dentist A", "dentist", false)
	insertTestTemplate(t, db, "t2", "Salon A", "salon", false)
	insertTestTemplate(t, db, "t3", "Dentist B", "dentist", false)

	templates, err := repos.Template.ListByCategory(ctx, "dentist")
	if err != nil {
		t.Fatalf("ListByCategory() error: %v", err)
	}
	if len(templates) != 2 {
		t.Fatalf("got %d templates, want 2", len(templates))
	}
	for _, tmpl := range templates {
		if tmpl.Category != "dentist" {
			t.Errorf("category = %q, want dentist", tmpl.Category)
		}
	}
}

func TestTemplateRepository_ExistsByName(t *testing.T) {
	repos := setupTestRepos(t)
	db := repos.Template.(*SQLiteTemplateRepository).db
	ctx := context.Background()

	insertTestTemplate(t, db, "t1", "Dentist A", "dentist", false)

	exists, err := repos.Template.ExistsByName(ctx, "Dentist A")
	if err != nil {
		t.Fatalf("ExistsByName() error: %v", err)
	}
	if !exists {
		t.Error("expected template to exist")
	}

	exists, err = repos.Template.ExistsByName(ctx, "Nope")
	if err != nil {
		t.Fatalf("ExistsByName() error: %v", err)
	}
	if exists {
		t.Error("expected template to not exist")
	}
}

func TestTemplateRepository_Count(t *testing.T) {
	repos := setupTestRepos(t)
	db := repos.Template.(*SQLiteTemplateRepository).db
	ctx := context.Background()

	insertTestTemplate(t, db, "t1", "One", "dentist", false)
	insertTestTemplate(t, db, "t2", "Two", "salon", false)

	count, err := repos.Template.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2", count)
	}
}
