// Package repository defines repository interfaces for leads database access.
// Repositories assume an initialized database (leadctl init); they read and
// write the is_default column that init ensures on message_templates.
package repository

import (
	"context"
	"database/sql"

	"github.com/leadforge/leadctl/internal/models"
)

// TemplateRepository defines methods for message template data access.
type TemplateRepository interface {
	Create(ctx context.Context, tmpl *models.MessageTemplate) error
	GetByID(ctx context.Context, id string) (*models.MessageTemplate, error)
	GetByName(ctx context.Context, name string) (*models.MessageTemplate, error)
	// GetDefault returns the template flagged is_default, or nil if none is set.
	GetDefault(ctx context.Context) (*models.MessageTemplate, error)
	// SetDefault flags one template as the default and clears the flag on all others.
	SetDefault(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.MessageTemplate, error)
	ListByCategory(ctx context.Context, category string) ([]*models.MessageTemplate, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// LeadRepository defines methods for lead data access.
type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	GetByID(ctx context.Context, id string) (*models.Lead, error)
	// ListWithoutWebsite returns visible leads that have no website yet,
	// oldest first, for the website-generation pipeline.
	ListWithoutWebsite(ctx context.Context, limit int) ([]*models.Lead, error)
	Hide(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// UserRepository defines methods for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Count(ctx context.Context) (int, error)
}

// Repositories aggregates all repository instances.
type Repositories struct {
	Template TemplateRepository
	Lead     LeadRepository
	User     UserRepository
}

// NewRepositories creates all repository instances.
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Template: NewSQLiteTemplateRepository(db),
		Lead:     NewSQLiteLeadRepository(db),
		User:     NewSQLiteUserRepository(db),
	}
}
