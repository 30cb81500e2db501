// Package preview resolves the optional reference image of a board or
// firmware and turns it into a small JPEG thumbnail.
package preview

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/trhacknon/custom-devices/internal/models"
	"github.com/trhacknon/custom-devices/internal/repository"
)

const thumbnailQuality = 70

// Image is a resolved preview ready to embed or serve
type Image struct {
	Path    string
	Caption string
	JPEG    []byte
}

// Resolver looks up catalog images under a base directory
type Resolver struct {
	catalog repository.CatalogRepository
	baseDir string
	maxSize int
	logger  *slog.Logger
}

// NewResolver creates a resolver. maxSize bounds the thumbnail's larger side in pixels.
func NewResolver(catalog repository.CatalogRepository, baseDir string, maxSize int, logger *slog.Logger) *Resolver {
	return &Resolver{
		catalog: catalog,
		baseDir: baseDir,
		maxSize: maxSize,
		logger:  logger,
	}
}

// Lookup returns the image path for the selection: the firmware's image
// wins over the board's. ok is false when neither has an image on disk.
func (r *Resolver) Lookup(ctx context.Context, board, firmware string) (path, caption string, ok bool) {
	candidates := []struct {
		category models.Category
		name     string
		label    string
	}{
		{models.CategoryFirmwares, firmware, "Firmware"},
		{models.CategoryBoards, board, "Appareil"},
	}

	for _, c := range candidates {
		if c.name == "" {
			continue
		}
		entry, err := r.catalog.Get(ctx, c.category, c.name)
		if err != nil || entry.Image == "" {
			continue
		}
		p := entry.Image
		if !filepath.IsAbs(p) {
			p = filepath.Join(r.baseDir, p)
		}
		if info, err := os.Stat(p); err != nil || info.IsDir() {
			continue
		}
		return p, fmt.Sprintf("%s : %s", c.label, c.name), true
	}

	return "", "", false
}

// Preview resolves and thumbnails the selection's image. It returns nil
// when there is no usable image; decoding failures are logged, not returned.
func (r *Resolver) Preview(ctx context.Context, board, firmware string) *Image {
	path, caption, ok := r.Lookup(ctx, board, firmware)
	if !ok {
		return nil
	}

	data, err := Thumbnail(path, r.maxSize)
	if err != nil {
		r.logger.Warn("preview image unusable", "path", path, "error", err)
		return nil
	}

	return &Image{Path: path, Caption: caption, JPEG: data}
}

// Thumbnail decodes the image at path (JPEG, PNG, GIF, TIFF, BMP or WebP),
// fits it within maxSize×maxSize and re-encodes it as JPEG
func Thumbnail(path string, maxSize int) ([]byte, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxSize || bounds.Dy() > maxSize {
		img = imaging.Fit(img, maxSize, maxSize, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(thumbnailQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}
	return buf.Bytes(), nil
}
