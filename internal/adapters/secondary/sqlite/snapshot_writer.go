package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"ml-platform/internal/core/domain"
	ports "ml-platform/internal/core/ports/output"
)

const (
	bucketProjects    = "projects"
	bucketExperiments = "experiments"
)

// SnapshotWriter stores each snapshot collection as a JSON blob in a
// single-table SQLite database, one row per bucket.
type SnapshotWriter struct {
	db *sql.DB
}

func NewSnapshotWriter(path string) (*SnapshotWriter, error) {
	if path == "" {
		path = "data/snapshot.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS snapshot_state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create snapshot_state table: %w", err)
	}
	return &SnapshotWriter{db: db}, nil
}

func (w *SnapshotWriter) Name() string { return "sqlite" }

func (w *SnapshotWriter) Write(ctx context.Context, snap *domain.Snapshot) error {
	projects, err := json.Marshal(snap.Projects)
	if err != nil {
		return fmt.Errorf("marshal projects: %w", err)
	}
	experiments, err := json.Marshal(snap.Experiments)
	if err != nil {
		return fmt.Errorf("marshal experiments: %w", err)
	}

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	stmt := `INSERT INTO snapshot_state (bucket, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(bucket) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`
	for bucket, payload := range map[string][]byte{
		bucketProjects:    projects,
		bucketExperiments: experiments,
	} {
		if _, err := tx.ExecContext(ctx, stmt, bucket, payload, now); err != nil {
			return fmt.Errorf("upsert %s: %w", bucket, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Read returns the last stored snapshot. It is used by tooling and
// tests only; the service never loads state from it.
func (w *SnapshotWriter) Read(ctx context.Context) (*domain.Snapshot, error) {
	rows, err := w.db.QueryContext(ctx, `SELECT bucket, payload FROM snapshot_state`)
	if err != nil {
		return nil, fmt.Errorf("select snapshot_state: %w", err)
	}
	defer func() { _ = rows.Close() }()

	snap := &domain.Snapshot{}
	for rows.Next() {
		var bucket string
		var payload []byte
		if err := rows.Scan(&bucket, &payload); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		switch bucket {
		case bucketProjects:
			if err := json.Unmarshal(payload, &snap.Projects); err != nil {
				return nil, fmt.Errorf("decode projects: %w", err)
			}
		case bucketExperiments:
			if err := json.Unmarshal(payload, &snap.Experiments); err != nil {
				return nil, fmt.Errorf("decode experiments: %w", err)
			}
		}
	}
	return snap, rows.Err()
}

func (w *SnapshotWriter) Close() error {
	return w.db.Close()
}

var _ ports.SnapshotWriter = (*SnapshotWriter)(nil)
