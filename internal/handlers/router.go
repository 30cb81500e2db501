package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/trhacknon/custom-devices/internal/config"
	"github.com/trhacknon/custom-devices/internal/document"
	"github.com/trhacknon/custom-devices/internal/middleware"
	"github.com/trhacknon/custom-devices/internal/service"
)

// RouterDeps are the services and settings the HTTP API is built from
type RouterDeps struct {
	Catalog       *service.CatalogService
	Quotes        *service.QuoteService
	Images        service.ImageResolver
	CatalogSource string
	Auth          config.AuthConfig
	RateLimit     config.RateLimitConfig
	Logger        *slog.Logger
}

// NewRouter wires every route of the configurator API
func NewRouter(deps RouterDeps) http.Handler {
	log := deps.Logger

	healthHandler := NewHealthHandler(deps.CatalogSource, log)
	catalogHandler := NewCatalogHandler(deps.Catalog, log)
	quoteHandler := NewQuoteHandler(deps.Quotes, log)
	previewHandler := NewPreviewHandler(deps.Images, log)

	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", middleware.APIKeyHeader},
		ExposedHeaders:   []string{"Content-Disposition", "X-Quote-Id", "X-Quote-Total", "X-Preview-Caption"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", catalogHandler.GetCatalog)
		r.Get("/catalog/{category}", catalogHandler.ListCategory)
		r.Get("/catalog/{category}/{name}", catalogHandler.GetEntry)

		r.Post("/quote", quoteHandler.PriceQuote)

		r.Group(func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(deps.Auth))
			r.Use(middleware.RateLimit(deps.RateLimit))

			r.Post("/quote/pdf", quoteHandler.Download(document.FormatPDF))
			r.Post("/quote/xlsx", quoteHandler.Download(document.FormatXLSX))
		})

		r.Get("/preview", previewHandler.GetPreview)
	})

	return r
}
