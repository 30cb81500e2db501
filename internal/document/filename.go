package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Format is an output document format
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// ParseFormat accepts "pdf" or "xlsx" in any case
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPDF, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("unsupported document format %q", s)
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/pdf"
}

// FilenamePolicy decides what happens when a buyer requests a second quote
type FilenamePolicy string

const (
	// PolicyOverwrite reuses the same file name per buyer, replacing the previous quote
	PolicyOverwrite FilenamePolicy = "overwrite"
	// PolicyTimestamp appends a UTC timestamp
	PolicyTimestamp FilenamePolicy = "timestamp"
	// PolicyUUID appends a random UUID
	PolicyUUID FilenamePolicy = "uuid"
)

// Namer builds quote file names from the buyer's name
type Namer struct {
	Policy FilenamePolicy
	Now    func() time.Time
	NewID  func() string
}

// NewNamer returns a Namer using the wall clock and random UUIDs
func NewNamer(policy FilenamePolicy) Namer {
	return Namer{
		Policy: policy,
		Now:    time.Now,
		NewID:  func() string { return uuid.New().String() },
	}
}

// Name returns e.g. "devis_Jean_Dupont.pdf" for the overwrite policy
func (n Namer) Name(buyerName string, format Format) string {
	base := "devis_" + sanitizeFilename(buyerName)

	switch n.Policy {
	case PolicyTimestamp:
		base += "_" + n.Now().UTC().Format("20060102T150405Z")
	case PolicyUUID:
		base += "_" + n.NewID()
	}

	return base + "." + string(format)
}

// sanitizeFilename replaces spaces with underscores and removes path separators
func sanitizeFilename(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}
