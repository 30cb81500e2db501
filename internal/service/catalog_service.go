package service

import (
	"context"

	"github.com/trhacknon/custom-devices/internal/models"
	"github.com/trhacknon/custom-devices/internal/repository"
)

// CatalogService handles read access to the device catalog
type CatalogService struct {
	repo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repository.CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// GetCatalog returns every category in display order
func (s *CatalogService) GetCatalog(ctx context.Context) (models.Catalog, error) {
	var catalog models.Catalog
	for _, category := range models.Categories {
		entries, err := s.repo.List(ctx, category)
		if err != nil {
			return models.Catalog{}, err
		}
		switch category {
		case models.CategoryBoards:
			catalog.Boards = entries
		case models.CategoryModules:
			catalog.Modules = entries
		case models.CategoryFirmwares:
			catalog.Firmwares = entries
		case models.CategoryOptions:
			catalog.Options = entries
		}
	}
	return catalog, nil
}

// ListCategory returns the entries of one category
func (s *CatalogService) ListCategory(ctx context.Context, category models.Category) ([]models.CatalogEntry, error) {
	return s.repo.List(ctx, category)
}

// GetEntry returns one entry by category and name
func (s *CatalogService) GetEntry(ctx context.Context, category models.Category, name string) (*models.CatalogEntry, error) {
	return s.repo.Get(ctx, category, name)
}
