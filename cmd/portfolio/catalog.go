package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"portfolio.dev/internal/catalog"
	"portfolio.dev/internal/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the configured PDF catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		pdfs, err := catalog.Lookup(cfg.Catalog)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%d entries, available: %s)\n", cfg.Catalog, len(pdfs), strings.Join(catalog.Names(), ", "))
		for _, pdf := range pdfs {
			fmt.Fprintf(out, "  %-28s %s\n", pdf.Name, pdf.URL)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
