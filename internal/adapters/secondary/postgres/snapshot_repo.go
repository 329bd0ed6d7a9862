package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"ml-platform/internal/adapters/secondary/snapshot"
	"ml-platform/internal/core/domain"
	"ml-platform/internal/core/ports/output"
)

const createSnapshotTable = `
	CREATE TABLE IF NOT EXISTS platform_snapshot (
		id         SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		payload    JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

type snapshotRepo struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository returns a writer keeping the latest snapshot in a
// single-row platform_snapshot table. The table is created if missing.
func NewSnapshotRepository(ctx context.Context, pool *pgxpool.Pool) (ports.SnapshotWriter, error) {
	if _, err := pool.Exec(ctx, createSnapshotTable); err != nil {
		return nil, fmt.Errorf("create platform_snapshot table: %w", err)
	}
	return &snapshotRepo{pool: pool}, nil
}

func (r *snapshotRepo) Name() string { return "postgres" }

func (r *snapshotRepo) Write(ctx context.Context, snap *domain.Snapshot) error {
	payload, err := snapshot.Marshal(snap)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO platform_snapshot (id, payload, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE
			SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
	`
	if _, err := r.pool.Exec(ctx, query, payload); err != nil {
		return fmt.Errorf("upsert platform snapshot: %w", err)
	}
	return nil
}

var _ ports.SnapshotWriter = (*snapshotRepo)(nil)
