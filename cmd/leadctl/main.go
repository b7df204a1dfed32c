// leadctl is the operational command-line tool for the leads database.
//
// Run with no arguments it performs the one pending schema fix: adding the
// is_default column to message_templates. Subcommands cover initializing a
// fresh database, seeding the template catalog, inspecting the schema, and
// exporting leads for the website generators.
package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leadforge/leadctl/internal/config"
	"github.com/leadforge/leadctl/internal/database"
	"github.com/leadforge/leadctl/internal/database/schema"
	"github.com/leadforge/leadctl/internal/logging"
)

var dbFlag string

var rootCmd = &cobra.Command{
	Use:   "leadctl",
	Short: "Manage the leads database",
	Long: `leadctl manages the schema and starter data of the leads database (leads.db).

Without a subcommand it runs the pending schema fix: it adds the is_default
column to message_templates if missing, reports the outcome, and exits 0
either way. Safe to re-run indefinitely.`,
	Run: runEnsureDefaultColumn,
}

// runEnsureDefaultColumn is the no-argument behavior: a single linear
// attempt-then-classify pass. Failures are printed, never turned into a
// non-zero exit; the connection is always closed.
func runEnsureDefaultColumn(cmd *cobra.Command, args []string) {
	db, err := openDatabase()
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), outcomeLine(schema.ColumnExists, err))
		return
	}
	defer db.Close()

	res, err := schema.EnsureColumn(cmd.Context(), db, "message_templates", "is_default", "BOOLEAN", "0")
	fmt.Fprintln(cmd.OutOrStdout(), outcomeLine(res, err))
}

// outcomeLine maps an EnsureColumn result to the line printed to the user.
func outcomeLine(res schema.ColumnResult, err error) string {
	switch {
	case err != nil:
		return fmt.Sprintf("Error: %v", err)
	case res == schema.ColumnAdded:
		return "is_default column added successfully"
	default:
		return "is_default column already exists"
	}
}

// loadConfig reads env configuration and applies the --db flag override.
func loadConfig() *config.Config {
	cfg := config.Load()
	if dbFlag != "" {
		cfg.DatabaseURL = dbFlag
	}
	return cfg
}

func openDatabase() (*sql.DB, error) {
	return database.New(loadConfig().DatabaseURL)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "database DSN (default file:leads.db, or LEADCTL_DATABASE_URL)")
}

func main() {
	logging.SetDefault()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
