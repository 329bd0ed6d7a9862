package ports

import (
	"context"

	"ml-platform/internal/core/domain"
)

// SnapshotWriter persists a denormalized snapshot of the store. Writers
// overwrite whatever they stored previously; nothing reads it back.
type SnapshotWriter interface {
	Name() string
	Write(ctx context.Context, snap *domain.Snapshot) error
}
