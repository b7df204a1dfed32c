package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leadforge/leadctl/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		v := version.Get()
		fmt.Printf("leadctl %s\n", v.String())
		fmt.Printf("  go:       %s\n", v.GoVersion)
		fmt.Printf("  platform: %s\n", v.Platform)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
