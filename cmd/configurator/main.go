package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/trhacknon/custom-devices/internal/catalogsource"
	"github.com/trhacknon/custom-devices/internal/config"
	"github.com/trhacknon/custom-devices/internal/repository"
	"github.com/trhacknon/custom-devices/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootOptions are flags shared by every subcommand
type rootOptions struct {
	catalogFile string
	catalogURL  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "configurator",
		Short: "TRHACKNON Custom Devices configurator",
		Long: `Price custom hardware builds and generate quotes.

A build is one board, any number of modules, one firmware and any number
of service options. Quotes are rendered as PDF or XLSX.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.catalogFile, "catalog", "", "catalog YAML file (overrides CATALOG_FILE)")
	cmd.PersistentFlags().StringVar(&opts.catalogURL, "catalog-url", "", "catalog YAML URL (overrides CATALOG_URL)")

	cmd.AddCommand(
		newServeCmd(opts),
		newQuoteCmd(opts),
		newCatalogCmd(opts),
	)

	return cmd
}

// environment is the configuration and catalog a command runs against
type environment struct {
	cfg           *config.Config
	log           *slog.Logger
	catalog       *repository.InMemoryCatalogRepository
	catalogSource string
}

// loadEnvironment reads configuration, applies flag overrides and loads the
// catalog. Logs go to logOut so commands that stream documents keep stdout clean.
func loadEnvironment(ctx context.Context, opts *rootOptions, logOut io.Writer) (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.catalogFile != "" {
		cfg.Catalog.File = opts.catalogFile
	}
	if opts.catalogURL != "" {
		cfg.Catalog.URL = opts.catalogURL
	}

	var log *slog.Logger
	if logOut != nil {
		log = logger.NewWithWriter(cfg.LogLevel, logOut)
	} else {
		log = logger.NewWithFile(cfg.LogLevel, cfg.LogFile)
	}

	catalog, source, err := catalogsource.Load(ctx, catalogsource.Options{
		File: cfg.Catalog.File,
		URL:  cfg.Catalog.URL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	return &environment{
		cfg:           cfg,
		log:           log,
		catalog:       catalog,
		catalogSource: source,
	}, nil
}
