package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/trhacknon/custom-devices/internal/models"
	"github.com/trhacknon/custom-devices/internal/repository"
	"github.com/trhacknon/custom-devices/internal/service"
)

// CatalogHandler serves the read-only device catalog
type CatalogHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger,
	}
}

// GetCatalog handles GET /api/catalog
func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.service.GetCatalog(r.Context())
	if err != nil {
		h.logger.Error("failed to list catalog", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, catalog, h.logger)
}

// ListCategory handles GET /api/catalog/{category}
func (h *CatalogHandler) ListCategory(w http.ResponseWriter, r *http.Request) {
	category := models.Category(chi.URLParam(r, "category"))

	entries, err := h.service.ListCategory(r.Context(), category)
	if err != nil {
		if errors.Is(err, repository.ErrUnknownCategory) {
			h.logger.Info("unknown catalog category", "category", category)
			WriteError(w, http.StatusNotFound, "Unknown category", h.logger)
			return
		}

		h.logger.Error("failed to list category", "category", category, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, entries, h.logger)
}

// GetEntry handles GET /api/catalog/{category}/{name}
// - 200: the entry
// - 404: unknown category or name
func (h *CatalogHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	category := models.Category(chi.URLParam(r, "category"))
	name := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	entry, err := h.service.GetEntry(r.Context(), category, name)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUnknownCategory):
			h.logger.Info("unknown catalog category", "category", category)
			WriteError(w, http.StatusNotFound, "Unknown category", h.logger)
		case errors.Is(err, repository.ErrKeyNotFound):
			h.logger.Info("catalog entry not found", "category", category, "name", name)
			WriteError(w, http.StatusNotFound, "Entry not found", h.logger)
		default:
			h.logger.Error("failed to get catalog entry", "category", category, "name", name, "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		}
		return
	}

	WriteJSON(w, http.StatusOK, entry, h.logger)
}
