package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/trhacknon/custom-devices/internal/document"
	"github.com/trhacknon/custom-devices/internal/metrics"
	"github.com/trhacknon/custom-devices/internal/models"
	"github.com/trhacknon/custom-devices/internal/preview"
	"github.com/trhacknon/custom-devices/internal/repository"
)

var (
	ErrMissingBuyerInfo = errors.New("buyer name and email are required")
	ErrIOWriteFailure   = errors.New("failed to write quote document")
	ErrKeyNotFound      = repository.ErrKeyNotFound
)

// ImageResolver supplies the optional preview image of a selection
type ImageResolver interface {
	Preview(ctx context.Context, board, firmware string) *preview.Image
}

// DocumentStore persists a rendered quote and returns where it went
type DocumentStore interface {
	Save(buyerName string, format document.Format, data []byte) (string, error)
}

// QuoteService prices selections and renders quote documents.
// It holds no per-request state.
type QuoteService struct {
	catalog      repository.CatalogRepository
	images       ImageResolver
	store        DocumentStore
	linesPerPage int
	now          func() time.Time
	newID        func() string
}

// NewQuoteService creates a new quote service. images and store may be nil:
// without images quotes carry no preview, without a store GenerateQuote
// only returns the rendered bytes.
func NewQuoteService(catalog repository.CatalogRepository, images ImageResolver, store DocumentStore, linesPerPage int) *QuoteService {
	return &QuoteService{
		catalog:      catalog,
		images:       images,
		store:        store,
		linesPerPage: linesPerPage,
		now:          time.Now,
		newID:        generateQuoteID,
	}
}

// GeneratedQuote is a rendered quote and where it was written
type GeneratedQuote struct {
	Quote    *models.Quote
	Format   document.Format
	Filename string
	Path     string
	Data     []byte
}

// ComputeTotal returns price(board) + price(firmware) + the prices of the
// distinct modules and options. An empty firmware contributes nothing.
func (s *QuoteService) ComputeTotal(ctx context.Context, board, firmware string, modules, options []string) (int, error) {
	q, err := s.buildQuote(ctx, models.Selection{
		Board:    board,
		Firmware: firmware,
		Modules:  modules,
		Options:  options,
	}, false)
	if err != nil {
		return 0, err
	}
	return q.Total, nil
}

// BuildQuote resolves every selected key against the catalog and computes
// the total. A quote always names its firmware, so an empty one fails with
// ErrKeyNotFound. Module and option lines come back in catalog display order.
func (s *QuoteService) BuildQuote(ctx context.Context, sel models.Selection) (*models.Quote, error) {
	return s.buildQuote(ctx, sel, true)
}

func (s *QuoteService) buildQuote(ctx context.Context, sel models.Selection, requireFirmware bool) (*models.Quote, error) {
	board, err := s.catalog.Get(ctx, models.CategoryBoards, sel.Board)
	if err != nil {
		return nil, err
	}

	q := &models.Quote{
		ID:        s.newID(),
		Selection: sel,
		Board:     models.LineItem{Name: board.Name, Price: board.Price},
		CreatedAt: s.now().UTC(),
	}
	q.Total = board.Price

	if sel.Firmware != "" || requireFirmware {
		firmware, err := s.catalog.Get(ctx, models.CategoryFirmwares, sel.Firmware)
		if err != nil {
			return nil, err
		}
		q.Firmware = &models.LineItem{Name: firmware.Name, Price: firmware.Price}
		q.Total += firmware.Price
	}

	if q.Modules, err = s.resolveSet(ctx, models.CategoryModules, sel.Modules); err != nil {
		return nil, err
	}
	if q.Options, err = s.resolveSet(ctx, models.CategoryOptions, sel.Options); err != nil {
		return nil, err
	}

	for _, m := range q.Modules {
		q.Total += m.Price
	}
	for _, o := range q.Options {
		q.Total += o.Price
	}

	return q, nil
}

// resolveSet looks up distinct names and orders them by catalog position
func (s *QuoteService) resolveSet(ctx context.Context, category models.Category, names []string) ([]models.LineItem, error) {
	seen := make(map[string]bool, len(names))
	entries := make([]models.CatalogEntry, 0, len(names))

	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		entry, err := s.catalog.Get(ctx, category, name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Position < entries[j].Position
	})

	items := make([]models.LineItem, len(entries))
	for i, e := range entries {
		items[i] = models.LineItem{Name: e.Name, Price: e.Price}
	}
	return items, nil
}

// RenderQuote renders a quote document. Nothing is rendered unless both
// buyer name and email are present.
func (s *QuoteService) RenderQuote(ctx context.Context, q *models.Quote, format document.Format) ([]byte, error) {
	if !q.Selection.HasBuyerInfo() {
		return nil, ErrMissingBuyerInfo
	}

	start := time.Now()
	defer func() {
		metrics.ObserveRender(string(format), time.Since(start))
	}()

	layout := document.BuildLayout(q, s.linesPerPage)

	switch format {
	case document.FormatPDF:
		var thumbnail []byte
		if s.images != nil {
			if img := s.images.Preview(ctx, q.Selection.Board, q.Selection.Firmware); img != nil {
				thumbnail = img.JPEG
			}
		}
		return document.GeneratePDF(layout, thumbnail)
	case document.FormatXLSX:
		return document.GenerateExcel(q, layout)
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}
}

// GenerateQuote validates the buyer, builds and renders the quote and
// writes it to the store under the buyer's file name
func (s *QuoteService) GenerateQuote(ctx context.Context, sel models.Selection, format document.Format) (*GeneratedQuote, error) {
	if !sel.HasBuyerInfo() {
		metrics.RecordQuote(string(format), metrics.ResultInvalid, 0)
		return nil, ErrMissingBuyerInfo
	}

	q, err := s.BuildQuote(ctx, sel)
	if err != nil {
		metrics.RecordQuote(string(format), metrics.ResultInvalid, 0)
		return nil, err
	}

	data, err := s.RenderQuote(ctx, q, format)
	if err != nil {
		metrics.RecordQuote(string(format), metrics.ResultError, 0)
		return nil, err
	}

	generated := &GeneratedQuote{
		Quote:    q,
		Format:   format,
		Filename: document.NewNamer(document.PolicyOverwrite).Name(sel.BuyerName, format),
		Data:     data,
	}

	if s.store != nil {
		path, err := s.store.Save(sel.BuyerName, format, data)
		if err != nil {
			metrics.RecordQuote(string(format), metrics.ResultWriteFailed, 0)
			return nil, fmt.Errorf("%w: %w", ErrIOWriteFailure, err)
		}
		generated.Path = path
		generated.Filename = filepath.Base(path)
	}

	metrics.RecordQuote(string(format), metrics.ResultSuccess, q.Total)
	return generated, nil
}

// generateQuoteID generates a unique quote ID using UUID
func generateQuoteID() string {
	return uuid.New().String()
}
