package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"ml-platform/internal/core/domain"
	ports "ml-platform/internal/core/ports/output"
)

const DefaultFilePath = "data/database.json"

type fileWriter struct {
	path string
}

// NewFileWriter returns a writer that replaces the file at path with the
// latest snapshot. The file is written to a sibling temp file first and
// renamed over the target.
func NewFileWriter(path string) ports.SnapshotWriter {
	if path == "" {
		path = DefaultFilePath
	}
	return &fileWriter{path: path}
}

func (w *fileWriter) Name() string { return "file" }

func (w *fileWriter) Write(_ context.Context, snap *domain.Snapshot) error {
	data, err := Marshal(snap)
	if err != nil {
		return err
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), w.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

var _ ports.SnapshotWriter = (*fileWriter)(nil)
