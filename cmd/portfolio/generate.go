package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"portfolio.dev/internal/export"
)

var generateCmd = &cobra.Command{
	Use:   "generate <output-dir>",
	Short: "Write the portfolio as static HTML, one page per filter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		pages, err := newPageService(cfg)
		if err != nil {
			return err
		}

		site := &export.Site{
			Pages:     pages,
			Title:     cfg.Title,
			Log:       log,
			StaticDir: cfg.StaticDir,
			AssetsDir: cfg.AssetsDir,
		}
		n, err := site.Write(args[0])
		if err != nil {
			return fmt.Errorf("generating site: %w", err)
		}

		log.WithField("files", n).Infof("generated site in %s", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
