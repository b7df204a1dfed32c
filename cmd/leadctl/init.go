package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leadforge/leadctl/internal/database"
	"github.com/leadforge/leadctl/internal/database/schema"
	"github.com/leadforge/leadctl/internal/repository"
	"github.com/leadforge/leadctl/internal/seed"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the leads schema and starter data",
	Long: `init creates all leads tables if absent, brings message_templates up to the
current column set, and on an empty database installs the default WhatsApp
template and the initial admin user. Safe to re-run.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig()

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := schema.Init(ctx, db); err != nil {
		return err
	}
	fmt.Println("Database initialized")

	repos := repository.NewRepositories(db)

	created, err := seed.EnsureDefaultTemplate(ctx, repos)
	if err != nil {
		return err
	}
	if created {
		fmt.Println("Default WhatsApp template created")
	} else {
		slog.Debug("default template already present")
	}

	created, err = seed.EnsureAdminUser(ctx, repos, cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return err
	}
	if created {
		fmt.Printf("Admin user %q created - change the password before going live\n", cfg.AdminUsername)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
