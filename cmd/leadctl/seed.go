package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leadforge/leadctl/internal/repository"
	"github.com/leadforge/leadctl/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Install the category template catalog",
	Long: `seed inserts the per-category outreach templates (dentist, restaurant,
salon, barber, lawyer, car repair, gym) plus the follow-up series. Templates
already present by name are skipped, so re-running is harmless.`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	repos := repository.NewRepositories(db)

	inserted, skipped, err := seed.Templates(cmd.Context(), repos)
	if err != nil {
		return err
	}

	fmt.Printf("Created %d templates (%d already present)\n", inserted, skipped)
	return nil
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
