package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/trhacknon/custom-devices/internal/models"
)

func TestInMemoryCatalogRepository_List(t *testing.T) {
	repo := NewInMemoryCatalogRepository()

	tests := []struct {
		category  models.Category
		wantCount int
		wantFirst string
	}{
		{models.CategoryBoards, 11, "ESP32 DevKit"},
		{models.CategoryModules, 9, "Écran OLED 0.96\""},
		{models.CategoryFirmwares, 6, "Bruce"},
		{models.CategoryOptions, 4, "Montage + soudure complète"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			entries, err := repo.List(context.Background(), tt.category)
			if err != nil {
				t.Fatalf("List() unexpected error = %v", err)
			}
			if len(entries) != tt.wantCount {
				t.Errorf("expected %d entries, got %d", tt.wantCount, len(entries))
			}
			if entries[0].Name != tt.wantFirst {
				t.Errorf("expected first entry %q, got %q", tt.wantFirst, entries[0].Name)
			}
			for i, e := range entries {
				if e.Position != i {
					t.Errorf("entry %q position = %d, want %d", e.Name, e.Position, i)
				}
			}
		})
	}
}

func TestInMemoryCatalogRepository_ListReturnsCopy(t *testing.T) {
	repo := NewInMemoryCatalogRepository()
	ctx := context.Background()

	entries, _ := repo.List(ctx, models.CategoryBoards)
	entries[0].Price = 9999

	again, _ := repo.List(ctx, models.CategoryBoards)
	if again[0].Price != 25 {
		t.Errorf("catalog was mutated through List result, price = %d", again[0].Price)
	}
}

func TestInMemoryCatalogRepository_Get(t *testing.T) {
	repo := NewInMemoryCatalogRepository()
	ctx := context.Background()

	entry, err := repo.Get(ctx, models.CategoryModules, "GPS NEO-6M")
	if err != nil {
		t.Fatalf("Get() unexpected error = %v", err)
	}
	if entry.Price != 15 {
		t.Errorf("expected price 15, got %d", entry.Price)
	}

	_, err = repo.Get(ctx, models.CategoryModules, "Flux Capacitor")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	var notFound *KeyNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *KeyNotFoundError, got %T", err)
	}
	if notFound.Category != models.CategoryModules || notFound.Name != "Flux Capacitor" {
		t.Errorf("unexpected error details %+v", notFound)
	}

	_, err = repo.Get(ctx, models.Category("accessories"), "Cable")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestNewCatalogRepository_Validation(t *testing.T) {
	tests := []struct {
		name    string
		catalog models.Catalog
	}{
		{
			name:    "no boards",
			catalog: models.Catalog{Modules: []models.CatalogEntry{{Name: "GPS", Price: 1}}},
		},
		{
			name:    "negative price",
			catalog: models.Catalog{Boards: []models.CatalogEntry{{Name: "Board", Price: -1}}},
		},
		{
			name:    "empty name",
			catalog: models.Catalog{Boards: []models.CatalogEntry{{Name: "  ", Price: 1}}},
		},
		{
			name: "duplicate name",
			catalog: models.Catalog{Boards: []models.CatalogEntry{
				{Name: "Board", Price: 1},
				{Name: "Board", Price: 2},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalogRepository(tt.catalog)
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Errorf("expected ErrInvalidCatalog, got %v", err)
			}
		})
	}
}

func TestNewCatalogRepository_SameNameAcrossCategories(t *testing.T) {
	repo, err := NewCatalogRepository(models.Catalog{
		Boards:    []models.CatalogEntry{{Name: "Bus Pirate", Price: 45}},
		Firmwares: []models.CatalogEntry{{Name: "Bus Pirate", Price: 0}},
	})
	if err != nil {
		t.Fatalf("unexpected error = %v", err)
	}

	catalog := repo.Catalog()
	if len(catalog.Boards) != 1 || len(catalog.Firmwares) != 1 {
		t.Errorf("unexpected catalog %+v", catalog)
	}
	if len(catalog.Modules) != 0 || len(catalog.Options) != 0 {
		t.Errorf("expected empty modules and options, got %+v", catalog)
	}
}
