package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/trhacknon/custom-devices/internal/document"
	"github.com/trhacknon/custom-devices/internal/models"
	"github.com/trhacknon/custom-devices/internal/service"
)

// maxSelectionBytes bounds the request body of quote routes
const maxSelectionBytes = 64 << 10

// QuoteHandler prices selections and serves quote documents
type QuoteHandler struct {
	quoteService *service.QuoteService
	log          *slog.Logger
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService *service.QuoteService, log *slog.Logger) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
		log:          log,
	}
}

// QuoteResponse is the JSON form of a priced selection
type QuoteResponse struct {
	*models.Quote
	TotalText string `json:"totalText"`
}

// PriceQuote handles POST /api/quote. It prices the selection without
// requiring buyer details, the way the page updates its running total.
func (h *QuoteHandler) PriceQuote(w http.ResponseWriter, r *http.Request) {
	sel, ok := h.decodeSelection(w, r)
	if !ok {
		return
	}

	q, err := h.quoteService.BuildQuote(r.Context(), sel)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, QuoteResponse{Quote: q, TotalText: document.FormatTotal(q.Total)}, h.log)
}

// Download returns the handler for POST /api/quote/{format}: it generates
// the document, stores it and sends it back as an attachment
func (h *QuoteHandler) Download(format document.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sel, ok := h.decodeSelection(w, r)
		if !ok {
			return
		}

		generated, err := h.quoteService.GenerateQuote(r.Context(), sel, format)
		if err != nil {
			h.writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", generated.Filename))
		w.Header().Set("Content-Length", strconv.Itoa(len(generated.Data)))
		w.Header().Set("X-Quote-Id", generated.Quote.ID)
		w.Header().Set("X-Quote-Total", strconv.Itoa(generated.Quote.Total))
		w.WriteHeader(http.StatusOK)

		if err := document.Stream(w, generated.Data); err != nil {
			h.log.Error("failed to stream quote", "quote_id", generated.Quote.ID, "error", err)
			return
		}

		h.log.Info("quote generated",
			"quote_id", generated.Quote.ID,
			"format", format,
			"filename", generated.Filename,
			"path", generated.Path,
			"total", generated.Quote.Total,
		)
	}
}

func (h *QuoteHandler) decodeSelection(w http.ResponseWriter, r *http.Request) (models.Selection, bool) {
	var sel models.Selection

	r.Body = http.MaxBytesReader(w, r.Body, maxSelectionBytes)
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		h.log.Warn("failed to decode selection", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return models.Selection{}, false
	}
	return sel, true
}

func (h *QuoteHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingBuyerInfo):
		h.log.Info("quote refused", "error", err)
		WriteError(w, http.StatusBadRequest, "Buyer name and email are required", h.log)
	case errors.Is(err, service.ErrKeyNotFound):
		h.log.Info("quote references unknown catalog key", "error", err)
		WriteError(w, http.StatusBadRequest, err.Error(), h.log)
	case errors.Is(err, service.ErrIOWriteFailure):
		h.log.Error("failed to store quote", "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to write quote document", h.log)
	default:
		h.log.Error("failed to build quote", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}
