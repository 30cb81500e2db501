package document

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "quotes")
	store := NewFileStore(dir, NewNamer(PolicyOverwrite))

	path, err := store.Save("Jean Dupont", FormatPDF, []byte("first"))
	if err != nil {
		t.Fatalf("Save() unexpected error = %v", err)
	}
	if filepath.Base(path) != "devis_Jean_Dupont.pdf" {
		t.Errorf("unexpected file name %q", filepath.Base(path))
	}

	// Same buyer name replaces the previous quote
	again, err := store.Save("Jean Dupont", FormatPDF, []byte("second"))
	if err != nil {
		t.Fatalf("Save() unexpected error = %v", err)
	}
	if again != path {
		t.Errorf("expected same path, got %q and %q", path, again)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved quote: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("expected overwritten content, got %q", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to list output dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly one file and no leftovers, got %d entries", len(entries))
	}
}

func TestFileStore_SaveUnwritableDestination(t *testing.T) {
	// A regular file where the output directory should be
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create blocker file: %v", err)
	}

	store := NewFileStore(blocker, NewNamer(PolicyOverwrite))
	if _, err := store.Save("Jean", FormatPDF, []byte("data")); err == nil {
		t.Error("expected error when output directory is a file")
	}
}

type failingWriter struct{ n int }

func (w failingWriter) Write(p []byte) (int, error) {
	if w.n >= 0 {
		return w.n, nil
	}
	return 0, errors.New("disk full")
}

func TestStream(t *testing.T) {
	var buf bytes.Buffer
	if err := Stream(&buf, []byte("%PDF-1.3")); err != nil {
		t.Fatalf("Stream() unexpected error = %v", err)
	}
	if buf.String() != "%PDF-1.3" {
		t.Errorf("unexpected stream content %q", buf.String())
	}

	if err := Stream(failingWriter{n: -1}, []byte("data")); err == nil {
		t.Error("expected write error")
	}
	if err := Stream(failingWriter{n: 2}, []byte("data")); !errors.Is(err, io.ErrShortWrite) {
		t.Errorf("expected io.ErrShortWrite, got %v", err)
	}
}
