package extract

import (
	"archive/tar"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashira-dev/hashira/pkg/models"
)

// CorpusWriter appends one JSON record per extracted file to a JSONL corpus.
// The file is opened in append mode per write; the corpus must not be shared
// between concurrent writers or record boundaries would interleave.
type CorpusWriter struct {
	path string
}

// NewCorpusWriter creates a writer for the corpus file at path.
func NewCorpusWriter(path string) *CorpusWriter {
	return &CorpusWriter{path: path}
}

// CorpusFileName returns the date-stamped corpus base name for day t.
func CorpusFileName(t time.Time) string {
	return fmt.Sprintf("docs_en_%s.jsonl", t.Format("2006_01_02"))
}

// Path returns the corpus file path.
func (w *CorpusWriter) Path() string {
	return w.path
}

// Reset removes a previous corpus file at the writer's path, if any.
func (w *CorpusWriter) Reset() error {
	if err := os.Remove(w.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing corpus file: %w", err)
	}
	return nil
}

// Append writes doc as one JSON line at the end of the corpus.
func (w *CorpusWriter) Append(doc models.Document) error {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to append document: %w", err)
	}
	return nil
}

// Archive bundles the corpus into an uncompressed tar next to it, replacing
// the .jsonl extension with .tar. The tar member keeps the corpus's relative
// path.
func (w *CorpusWriter) Archive() (string, error) {
	tarPath := strings.TrimSuffix(w.path, filepath.Ext(w.path)) + ".tar"

	src, err := os.Open(w.path)
	if err != nil {
		return "", fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat corpus file: %w", err)
	}

	out, err := os.Create(tarPath)
	if err != nil {
		return "", fmt.Errorf("failed to create archive: %w", err)
	}
	defer out.Close()

	tw := tar.NewWriter(out)
	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return "", fmt.Errorf("failed to build archive header: %w", err)
	}
	hdr.Name = filepath.ToSlash(w.path)
	if err := tw.WriteHeader(hdr); err != nil {
		return "", fmt.Errorf("failed to write archive header: %w", err)
	}
	if _, err := io.Copy(tw, src); err != nil {
		return "", fmt.Errorf("failed to write archive: %w", err)
	}
	if err := tw.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize archive: %w", err)
	}
	return tarPath, nil
}
