package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/trhacknon/custom-devices/internal/document"
)

// Filename policies for generated quote documents
const (
	FilenamePolicyOverwrite = "overwrite"
	FilenamePolicyTimestamp = "timestamp"
	FilenamePolicyUUID      = "uuid"
)

// MaxLinesPerPage bounds QUOTE_LINES_PER_PAGE to what the PDF layout fits on
// one A4 page with the header, preview image, total and notes
const MaxLinesPerPage = document.MaxLinesPerPage

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	Catalog   CatalogConfig
	Quote     QuoteConfig
	Preview   PreviewConfig
	RateLimit RateLimitConfig
	LogLevel  string
	LogFile   string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

type AuthConfig struct {
	APIKeys []string // Valid API keys for document routes; empty disables auth
}

type CatalogConfig struct {
	File string
	URL  string
}

type QuoteConfig struct {
	OutputDir      string
	FilenamePolicy string
	LinesPerPage   int
}

type PreviewConfig struct {
	ImageDir string
	MaxSize  int
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// Load reads configuration from environment variables.
// A .env file in the working directory is applied first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Auth: AuthConfig{
			APIKeys: getEnvAsSlice("API_KEYS", nil),
		},
		Catalog: CatalogConfig{
			File: getEnv("CATALOG_FILE", ""),
			URL:  getEnv("CATALOG_URL", ""),
		},
		Quote: QuoteConfig{
			OutputDir:      getEnv("QUOTE_OUTPUT_DIR", "."),
			FilenamePolicy: getEnv("QUOTE_FILENAME_POLICY", FilenamePolicyOverwrite),
			LinesPerPage:   getEnvAsInt("QUOTE_LINES_PER_PAGE", 20),
		},
		Preview: PreviewConfig{
			ImageDir: getEnv("IMAGE_DIR", "."),
			MaxSize:  getEnvAsInt("PREVIEW_MAX_SIZE", 300),
		},
		RateLimit: RateLimitConfig{
			Requests: getEnvAsInt("RATE_LIMIT_REQUESTS", 30),
			Window:   getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	switch c.Quote.FilenamePolicy {
	case FilenamePolicyOverwrite, FilenamePolicyTimestamp, FilenamePolicyUUID:
	default:
		return fmt.Errorf("invalid quote filename policy: %s (must be overwrite, timestamp, or uuid)", c.Quote.FilenamePolicy)
	}

	if c.Quote.LinesPerPage < 1 || c.Quote.LinesPerPage > MaxLinesPerPage {
		return fmt.Errorf("QUOTE_LINES_PER_PAGE must be between 1 and %d, got %d", MaxLinesPerPage, c.Quote.LinesPerPage)
	}

	if c.Quote.OutputDir == "" {
		return fmt.Errorf("QUOTE_OUTPUT_DIR is required")
	}

	if c.Preview.MaxSize <= 0 {
		return fmt.Errorf("PREVIEW_MAX_SIZE must be positive")
	}

	if c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate limit requests and window must be positive")
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}
