package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/leadforge/leadctl/internal/export"
	"github.com/leadforge/leadctl/internal/repository"
)

var (
	exportFormat string
	exportOut    string
	exportLimit  int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export leads without a website for site generation",
	Long: `export selects visible leads that have no website yet and writes them out
for the website-generation pipeline. Defaults to selected_leads.json, the
file the generators read; use --out - to write to stdout.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if exportLimit == 0 {
		exportLimit = cfg.ExportLimit
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	repos := repository.NewRepositories(db)

	rows, err := export.Fetch(cmd.Context(), repos, exportLimit)
	if err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		out = "selected_leads." + exportFormat
	}

	var w io.Writer = os.Stdout
	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch exportFormat {
	case "json":
		err = export.WriteJSON(w, rows)
	case "csv":
		err = export.WriteCSV(w, rows)
	default:
		return fmt.Errorf("unknown format %q (want json or csv)", exportFormat)
	}
	if err != nil {
		return err
	}

	if out != "-" {
		fmt.Printf("Exported %d leads to %s\n", len(rows), out)
	}
	return nil
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json or csv")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default selected_leads.<format>, - for stdout)")
	exportCmd.Flags().IntVar(&exportLimit, "limit", 0, "max leads to export (default from LEADCTL_EXPORT_LIMIT or 50)")
	rootCmd.AddCommand(exportCmd)
}
