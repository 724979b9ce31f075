package memory

import (
	"context"
	"time"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/ports"
)

type BinRepository struct {
	db *Database
}

var _ ports.BinRepository = (*BinRepository)(nil)

func NewBinRepository(db *Database) *BinRepository {
	return &BinRepository{db: db}
}

func (r *BinRepository) MoveToBin(_ context.Context, owner string, ids []string, deletedAt, expiresAt time.Time) (int, error) {
	if err := validIDs(ids); err != nil {
		return 0, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	kept := make([]domain.Task, 0, len(r.db.tasks))
	moved := 0
	for _, task := range r.db.tasks {
		if task.OwnerEmail != owner || !contains(ids, task.ID) {
			kept = append(kept, task)
			continue
		}
		r.db.bin = append(r.db.bin, domain.BinEntry{
			ID:         newID(),
			OriginalID: task.ID,
			Task:       task,
			DeletedAt:  deletedAt,
			ExpiresAt:  expiresAt,
		})
		moved++
	}
	r.db.tasks = kept
	return moved, nil
}

func (r *BinRepository) PurgeExpired(_ context.Context, owner string, now time.Time) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var purged int64
	r.db.bin = r.filterBin(func(entry domain.BinEntry) bool {
		if entry.Task.OwnerEmail == owner && entry.Expired(now) {
			purged++
			return false
		}
		return true
	})
	return purged, nil
}

func (r *BinRepository) ListByOwner(_ context.Context, owner string) ([]domain.BinEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	entries := make([]domain.BinEntry, 0)
	for _, entry := range r.db.bin {
		if entry.Task.OwnerEmail == owner {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (r *BinRepository) Restore(_ context.Context, owner string, ids []string) (int, error) {
	if err := validIDs(ids); err != nil {
		return 0, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	restored := 0
	r.db.bin = r.filterBin(func(entry domain.BinEntry) bool {
		if entry.Task.OwnerEmail != owner || !contains(ids, entry.ID) {
			return true
		}
		task := entry.Restored()
		task.ID = newID()
		r.db.tasks = append(r.db.tasks, task)
		restored++
		return false
	})
	return restored, nil
}

func (r *BinRepository) Delete(_ context.Context, owner string, ids []string) (int64, error) {
	if err := validIDs(ids); err != nil {
		return 0, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var deleted int64
	r.db.bin = r.filterBin(func(entry domain.BinEntry) bool {
		if entry.Task.OwnerEmail == owner && contains(ids, entry.ID) {
			deleted++
			return false
		}
		return true
	})
	return deleted, nil
}

// filterBin keeps the entries keep returns true for. The lock must be held.
func (r *BinRepository) filterBin(keep func(domain.BinEntry) bool) []domain.BinEntry {
	kept := make([]domain.BinEntry, 0, len(r.db.bin))
	for _, entry := range r.db.bin {
		if keep(entry) {
			kept = append(kept, entry)
		}
	}
	return kept
}
