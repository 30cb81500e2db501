package document

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// FileStore writes rendered quotes into a directory
type FileStore struct {
	dir   string
	namer Namer
}

// NewFileStore creates a store writing into dir with names from namer
func NewFileStore(dir string, namer Namer) *FileStore {
	return &FileStore{dir: dir, namer: namer}
}

// Dir returns the output directory
func (s *FileStore) Dir() string {
	return s.dir
}

// Save writes data under the buyer's quote file name and returns the path.
// The file is replaced atomically: readers see either the previous quote
// or the complete new one, and the temp file is removed on any failure.
func (s *FileStore) Save(buyerName string, format Format, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(s.dir, s.namer.Name(buyerName, format))

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0644))
	if err != nil {
		return "", fmt.Errorf("create pending quote file: %w", err)
	}
	// No-op once CloseAtomicallyReplace succeeded
	defer pendingFile.Cleanup()

	if _, err := pendingFile.Write(data); err != nil {
		return "", fmt.Errorf("write quote data: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return "", fmt.Errorf("atomically replace quote file: %w", err)
	}

	return path, nil
}

// Stream writes data to w, reporting short writes as errors
func Stream(w io.Writer, data []byte) error {
	n, err := w.Write(data)
	if err != nil {
		return fmt.Errorf("write quote stream: %w", err)
	}
	if n != len(data) {
		return fmt.Errorf("write quote stream: %w", io.ErrShortWrite)
	}
	return nil
}
