package catalogsource

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/trhacknon/custom-devices/internal/models"
	"github.com/trhacknon/custom-devices/internal/repository"
)

const testCatalogYAML = `boards:
  - name: ESP32 DevKit
    price: 25
  - name: LilyGO T-Deck
    price: 69
    image: lilygo.jpeg
modules:
  - name: GPS NEO-6M
    price: 15
firmwares:
  - name: Bruce
    price: 0
options:
  - name: Boîtier imprimé 3D
    price: 12
`

// writeTestFile creates a file with the given content in a temp dir and returns its path
func writeTestFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(data)); err != nil {
		t.Fatalf("failed to gzip data: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close gzip writer: %v", err)
	}
	return buf.Bytes()
}

func TestParse(t *testing.T) {
	repo, err := Parse(strings.NewReader(testCatalogYAML))
	if err != nil {
		t.Fatalf("Parse() unexpected error = %v", err)
	}

	want := models.Catalog{
		Boards: []models.CatalogEntry{
			{Name: "ESP32 DevKit", Price: 25, Position: 0},
			{Name: "LilyGO T-Deck", Price: 69, Image: "lilygo.jpeg", Position: 1},
		},
		Modules:   []models.CatalogEntry{{Name: "GPS NEO-6M", Price: 15}},
		Firmwares: []models.CatalogEntry{{Name: "Bruce", Price: 0}},
		Options:   []models.CatalogEntry{{Name: "Boîtier imprimé 3D", Price: 12}},
	}
	if diff := cmp.Diff(want, repo.Catalog()); diff != "" {
		t.Errorf("Parse() catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty document", ""},
		{"unknown field", "boards:\n  - name: X\n    price: 1\n    weight: 3\n"},
		{"negative price", "boards:\n  - name: X\n    price: -5\n"},
		{"no boards", "modules:\n  - name: GPS\n    price: 15\n"},
		{"not yaml mapping", "- just\n- a list\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParse_EmptyDocumentIsInvalidCatalog(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	if !errors.Is(err, repository.ErrInvalidCatalog) {
		t.Errorf("expected ErrInvalidCatalog, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("plain yaml", func(t *testing.T) {
		path := writeTestFile(t, "catalog.yaml", []byte(testCatalogYAML))

		repo, err := LoadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("LoadFile() unexpected error = %v", err)
		}
		entry, err := repo.Get(context.Background(), models.CategoryBoards, "LilyGO T-Deck")
		if err != nil {
			t.Fatalf("Get() unexpected error = %v", err)
		}
		if entry.Price != 69 {
			t.Errorf("expected price 69, got %d", entry.Price)
		}
	})

	t.Run("gzipped yaml", func(t *testing.T) {
		path := writeTestFile(t, "catalog.yaml.gz", gzipBytes(t, testCatalogYAML))

		repo, err := LoadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("LoadFile() unexpected error = %v", err)
		}
		entries, _ := repo.List(context.Background(), models.CategoryBoards)
		if len(entries) != 2 {
			t.Errorf("expected 2 boards, got %d", len(entries))
		}
	})

	t.Run("non-existent file", func(t *testing.T) {
		if _, err := LoadFile(context.Background(), "/non/existent/catalog.yaml"); err == nil {
			t.Error("expected error for non-existent file, got nil")
		}
	})
}

func TestLoadURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/catalog.yaml":
			_, _ = w.Write([]byte(testCatalogYAML))
		case "/catalog.yaml.gz":
			_, _ = w.Write(gzipBytes(t, testCatalogYAML))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"plain", "/catalog.yaml", false},
		{"gzip", "/catalog.yaml.gz", false},
		{"not found", "/missing.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := LoadURL(context.Background(), server.URL+tt.path)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadURL() unexpected error = %v", err)
			}
			if len(repo.Catalog().Boards) != 2 {
				t.Errorf("expected 2 boards, got %d", len(repo.Catalog().Boards))
			}
		})
	}
}

func TestLoad_SourcePrecedence(t *testing.T) {
	path := writeTestFile(t, "catalog.yaml", []byte(testCatalogYAML))

	_, source, err := Load(context.Background(), Options{})
	if err != nil || source != "built-in" {
		t.Errorf("expected built-in catalog, got source %q err %v", source, err)
	}

	repo, source, err := Load(context.Background(), Options{File: path})
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}
	if source != path || len(repo.Catalog().Boards) != 2 {
		t.Errorf("expected file catalog, got source %q", source)
	}
}

func TestEncode_ReadableByParse(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, repository.DefaultCatalog()); err != nil {
		t.Fatalf("Encode() unexpected error = %v", err)
	}

	repo, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse() of encoded catalog failed: %v", err)
	}
	if diff := cmp.Diff(Default().Catalog(), repo.Catalog()); diff != "" {
		t.Errorf("encoded catalog differs (-want +got):\n%s", diff)
	}
}
