package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"portfolio.dev/internal/catalog"
	"portfolio.dev/internal/config"
	"portfolio.dev/internal/logger"
	"portfolio.dev/internal/services"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:          "portfolio",
	Short:        "Serve or export the portfolio page",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "portfolio.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup loads config and projects and builds the logger
func setup() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	log := logger.New(level, os.Stderr)

	if err := cfg.LoadProjects(); err != nil {
		return nil, nil, fmt.Errorf("loading projects: %w", err)
	}
	log.WithFields(logrus.Fields{
		"projects": len(cfg.Projects.Projects),
		"catalog":  cfg.Catalog,
	}).Debug("configuration loaded")

	return cfg, log, nil
}

func newPageService(cfg *config.Config) (*services.PageService, error) {
	pdfs, err := catalog.Lookup(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	return services.NewPageService(
		services.NewProjectService(cfg.Projects, cfg.Filters),
		services.NewCategoryFilter(pdfs),
	), nil
}
