package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/trhacknon/custom-devices/internal/preview"
	"github.com/trhacknon/custom-devices/internal/service"
)

// PreviewHandler serves the reference image of a selection
type PreviewHandler struct {
	images service.ImageResolver
	logger *slog.Logger
}

// NewPreviewHandler creates a new preview handler
func NewPreviewHandler(images service.ImageResolver, logger *slog.Logger) *PreviewHandler {
	return &PreviewHandler{
		images: images,
		logger: logger,
	}
}

// GetPreview handles GET /api/preview?board=&firmware=
// - 200: JPEG thumbnail
// - 204: no image for this selection
func (h *PreviewHandler) GetPreview(w http.ResponseWriter, r *http.Request) {
	board := r.URL.Query().Get("board")
	firmware := r.URL.Query().Get("firmware")

	var img *preview.Image
	if h.images != nil {
		img = h.images.Preview(r.Context(), board, firmware)
	}
	if img == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Content-Length", strconv.Itoa(len(img.JPEG)))
	w.Header().Set("X-Preview-Caption", url.PathEscape(img.Caption))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(img.JPEG); err != nil {
		h.logger.Error("failed to write preview", "path", img.Path, "error", err)
	}
}
