package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/leadforge/leadctl/internal/database/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Show tables, columns, and row counts",
	RunE:  runSchema,
}

func runSchema(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	tables, err := schema.Tables(cmd.Context(), db)
	if err != nil {
		return err
	}
	if len(tables) == 0 {
		fmt.Println("No tables found - run `leadctl init` first")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i, t := range tables {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\t(%d rows)\n", t.Name, t.RowCount)
		for _, c := range t.Columns {
			attrs := ""
			if c.PrimaryKey {
				attrs += " PRIMARY KEY"
			}
			if c.NotNull {
				attrs += " NOT NULL"
			}
			if c.Default != nil {
				attrs += " DEFAULT " + *c.Default
			}
			fmt.Fprintf(w, "  %s\t%s%s\n", c.Name, c.Type, attrs)
		}
	}
	return w.Flush()
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
