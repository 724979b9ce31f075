package ports

import (
	"context"
	"time"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
)

type BinRepository interface {
	// MoveToBin moves the owner's tasks among ids into the bin and returns how many moved.
	MoveToBin(ctx context.Context, owner string, ids []string, deletedAt, expiresAt time.Time) (int, error)
	PurgeExpired(ctx context.Context, owner string, now time.Time) (int64, error)
	ListByOwner(ctx context.Context, owner string) ([]domain.BinEntry, error)
	// Restore moves the owner's bin entries among ids back to tasks and returns how many moved.
	Restore(ctx context.Context, owner string, ids []string) (int, error)
	Delete(ctx context.Context, owner string, ids []string) (int64, error)
}

type BinService interface {
	SoftDelete(ctx context.Context, owner string, ids []string) (int, error)
	ListBin(ctx context.Context, owner string) ([]domain.BinEntry, error)
	Restore(ctx context.Context, owner string, ids []string) (int, error)
	Purge(ctx context.Context, owner string, ids []string) (int64, error)
}
