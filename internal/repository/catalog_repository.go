package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/trhacknon/custom-devices/internal/models"
)

var (
	ErrKeyNotFound     = errors.New("catalog key not found")
	ErrUnknownCategory = errors.New("unknown catalog category")
	ErrInvalidCatalog  = errors.New("invalid catalog")
)

// KeyNotFoundError reports a lookup of a name that is absent from a category
type KeyNotFoundError struct {
	Category models.Category
	Name     string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q in %s", ErrKeyNotFound, e.Name, e.Category)
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// CatalogRepository defines read-only access to the catalog
type CatalogRepository interface {
	List(ctx context.Context, category models.Category) ([]models.CatalogEntry, error)
	Get(ctx context.Context, category models.Category, name string) (*models.CatalogEntry, error)
}

// InMemoryCatalogRepository implements CatalogRepository over a catalog that
// is validated once at construction and never mutated afterwards
type InMemoryCatalogRepository struct {
	entries map[models.Category][]models.CatalogEntry
	index   map[models.Category]map[string]int
}

// NewInMemoryCatalogRepository creates a repository seeded with the built-in catalog
func NewInMemoryCatalogRepository() *InMemoryCatalogRepository {
	repo, err := NewCatalogRepository(DefaultCatalog())
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return repo
}

// NewCatalogRepository validates c and builds a repository from it.
// Display order follows the order of entries in c.
func NewCatalogRepository(c models.Catalog) (*InMemoryCatalogRepository, error) {
	if len(c.Boards) == 0 {
		return nil, fmt.Errorf("%w: at least one board is required", ErrInvalidCatalog)
	}

	repo := &InMemoryCatalogRepository{
		entries: make(map[models.Category][]models.CatalogEntry, len(models.Categories)),
		index:   make(map[models.Category]map[string]int, len(models.Categories)),
	}

	for _, category := range models.Categories {
		src := c.Entries(category)
		entries := make([]models.CatalogEntry, 0, len(src))
		index := make(map[string]int, len(src))

		for i, entry := range src {
			entry.Name = strings.TrimSpace(entry.Name)
			if entry.Name == "" {
				return nil, fmt.Errorf("%w: %s entry %d has no name", ErrInvalidCatalog, category, i+1)
			}
			if entry.Price < 0 {
				return nil, fmt.Errorf("%w: %s %q has negative price %d", ErrInvalidCatalog, category, entry.Name, entry.Price)
			}
			if _, exists := index[entry.Name]; exists {
				return nil, fmt.Errorf("%w: duplicate %s entry %q", ErrInvalidCatalog, category, entry.Name)
			}

			entry.Position = i
			index[entry.Name] = i
			entries = append(entries, entry)
		}

		repo.entries[category] = entries
		repo.index[category] = index
	}

	return repo, nil
}

// List returns a copy of the entries of a category in display order
func (r *InMemoryCatalogRepository) List(ctx context.Context, category models.Category) ([]models.CatalogEntry, error) {
	entries, ok := r.entries[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	out := make([]models.CatalogEntry, len(entries))
	copy(out, entries)
	return out, nil
}

// Get returns the entry with the given name
func (r *InMemoryCatalogRepository) Get(ctx context.Context, category models.Category, name string) (*models.CatalogEntry, error) {
	index, ok := r.index[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	i, exists := index[name]
	if !exists {
		return nil, &KeyNotFoundError{Category: category, Name: name}
	}
	entry := r.entries[category][i]
	return &entry, nil
}

// Catalog returns a copy of the whole catalog
func (r *InMemoryCatalogRepository) Catalog() models.Catalog {
	clone := func(category models.Category) []models.CatalogEntry {
		out := make([]models.CatalogEntry, len(r.entries[category]))
		copy(out, r.entries[category])
		return out
	}
	return models.Catalog{
		Boards:    clone(models.CategoryBoards),
		Modules:   clone(models.CategoryModules),
		Firmwares: clone(models.CategoryFirmwares),
		Options:   clone(models.CategoryOptions),
	}
}
