// Package seed populates the leads database with the starter data the
// application expects: the default WhatsApp template, an admin user, and the
// per-category outreach template catalog.
package seed

import (
	"context"
	"fmt"

	"github.com/leadforge/leadctl/internal/models"
	"github.com/leadforge/leadctl/internal/repository"
)

// DefaultTemplateName is the name of the template installed as the default.
const DefaultTemplateName = "Default WhatsApp Template"

// defaultTemplate is the quick-send template installed on a fresh database.
var defaultTemplate = models.MessageTemplate{
	Name:     DefaultTemplateName,
	Channel:  models.ChannelWhatsApp,
	Language: "sq",
	Content: "Pershendetje 👋\n\n" +
		"Pashe {business_name} ne Google - {rating}⭐, po beni shkelqyeshem!",
	IsActive:  true,
	IsDefault: true,
}

// EnsureDefaultTemplate installs the default WhatsApp template if no template
// is currently flagged as default. Returns true if it created one.
func EnsureDefaultTemplate(ctx context.Context, repos *repository.Repositories) (bool, error) {
	existing, err := repos.Template.GetDefault(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to look up default template: %w", err)
	}
	if existing != nil {
		return false, nil
	}

	tmpl := defaultTemplate
	if err := repos.Template.Create(ctx, &tmpl); err != nil {
		return false, fmt.Errorf("failed to create default template: %w", err)
	}
	return true, nil
}

// EnsureAdminUser creates the initial admin user when the users table is
// empty. Returns true if it created one.
func EnsureAdminUser(ctx context.Context, repos *repository.Repositories, username, email, password string) (bool, error) {
	count, err := repos.User.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := user.SetPassword(password); err != nil {
		return false, fmt.Errorf("failed to hash admin password: %w", err)
	}
	if err := repos.User.Create(ctx, user); err != nil {
		return false, fmt.Errorf("failed to create admin user: %w", err)
	}
	return true, nil
}

// Templates inserts the category template catalog, skipping any template
// whose name is already present. Returns inserted and skipped counts.
func Templates(ctx context.Context, repos *repository.Repositories) (inserted, skipped int, err error) {
	for _, tmpl := range catalog {
		exists, err := repos.Template.ExistsByName(ctx, tmpl.Name)
		if err != nil {
			return inserted, skipped, fmt.Errorf("failed to check template %q: %w", tmpl.Name, err)
		}
		if exists {
			skipped++
			continue
		}

		t := tmpl
		if err := repos.Template.Create(ctx, &t); err != nil {
			return inserted, skipped, fmt.Errorf("failed to create template %q: %w", tmpl.Name, err)
		}
		inserted++
	}
	return inserted, skipped, nil
}
