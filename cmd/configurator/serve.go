package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/trhacknon/custom-devices/internal/document"
	"github.com/trhacknon/custom-devices/internal/handlers"
	"github.com/trhacknon/custom-devices/internal/preview"
	"github.com/trhacknon/custom-devices/internal/service"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the configurator HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func runServe(ctx context.Context, opts *rootOptions) error {
	env, err := loadEnvironment(ctx, opts, nil)
	if err != nil {
		return err
	}
	cfg, log := env.cfg, env.log
	slog.SetDefault(log)

	log.Info("starting configurator api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	catalog := env.catalog.Catalog()
	log.Info("catalog loaded",
		"source", env.catalogSource,
		"boards", len(catalog.Boards),
		"modules", len(catalog.Modules),
		"firmwares", len(catalog.Firmwares),
		"options", len(catalog.Options),
	)

	// Initialize services
	resolver := preview.NewResolver(env.catalog, cfg.Preview.ImageDir, cfg.Preview.MaxSize, log)
	store := document.NewFileStore(cfg.Quote.OutputDir, document.NewNamer(document.FilenamePolicy(cfg.Quote.FilenamePolicy)))
	catalogService := service.NewCatalogService(env.catalog)
	quoteService := service.NewQuoteService(env.catalog, resolver, store, cfg.Quote.LinesPerPage)

	router := handlers.NewRouter(handlers.RouterDeps{
		Catalog:       catalogService,
		Quotes:        quoteService,
		Images:        resolver,
		CatalogSource: env.catalogSource,
		Auth:          cfg.Auth,
		RateLimit:     cfg.RateLimit,
		Logger:        log,
	})

	if len(cfg.Auth.APIKeys) == 0 {
		log.Warn("API_KEYS not set, document routes are unauthenticated")
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "address", addr, "output_dir", store.Dir())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-quit:
	}

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server stopped gracefully")
	return nil
}
