// Package catalogsource loads the device catalog once at process start from
// the built-in defaults, a YAML file or a YAML document served over HTTP.
package catalogsource

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/trhacknon/custom-devices/internal/models"
	"github.com/trhacknon/custom-devices/internal/repository"
)

// maxCatalogSize bounds how much of a remote catalog is read
const maxCatalogSize = 4 << 20

// Options selects where the catalog comes from. URL wins over File;
// with neither set the built-in catalog is used.
type Options struct {
	File string
	URL  string
}

// Load returns a catalog repository from the configured source
func Load(ctx context.Context, opts Options) (*repository.InMemoryCatalogRepository, string, error) {
	switch {
	case opts.URL != "":
		repo, err := LoadURL(ctx, opts.URL)
		return repo, opts.URL, err
	case opts.File != "":
		repo, err := LoadFile(ctx, opts.File)
		return repo, opts.File, err
	default:
		return Default(), "built-in", nil
	}
}

// Default returns the built-in catalog
func Default() *repository.InMemoryCatalogRepository {
	return repository.NewInMemoryCatalogRepository()
}

// LoadFile reads a YAML catalog from disk; a .gz suffix means gzip-compressed
func LoadFile(ctx context.Context, path string) (*repository.InMemoryCatalogRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gzReader, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzReader.Close()
		r = gzReader
	}

	return Parse(r)
}

// LoadURL downloads a YAML catalog. Gzip bodies are detected from the URL
// suffix or the Content-Type header.
func LoadURL(ctx context.Context, url string) (*repository.InMemoryCatalogRepository, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var r io.Reader = io.LimitReader(resp.Body, maxCatalogSize)
	if strings.HasSuffix(url, ".gz") || strings.Contains(resp.Header.Get("Content-Type"), "gzip") {
		gzReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzReader.Close()
		r = gzReader
	}

	return Parse(r)
}

// Parse decodes a YAML catalog and validates it
func Parse(r io.Reader) (*repository.InMemoryCatalogRepository, error) {
	var catalog models.Catalog

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&catalog); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", repository.ErrInvalidCatalog)
		}
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	return repository.NewCatalogRepository(catalog)
}

// Encode writes the catalog as YAML in the format Parse reads
func Encode(w io.Writer, catalog models.Catalog) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(catalog); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return encoder.Close()
}
