package service

import (
	"context"
	"fmt"
	"time"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/ports"
)

// BinService runs the recycle bin: ACTIVE -> DELETED -> {ACTIVE again, PURGED, EXPIRED}.
// Expiry is lazy and only enforced when the owner's bin is listed.
type BinService struct {
	binRepository ports.BinRepository
	retention     time.Duration
	opts          options
}

func NewBinService(binRepository ports.BinRepository, retention time.Duration, opts ...Option) *BinService {
	if retention <= 0 {
		retention = domain.BinRetention
	}
	return &BinService{binRepository: binRepository, retention: retention, opts: newOptions(opts)}
}

func (s *BinService) SoftDelete(ctx context.Context, owner string, ids []string) (int, error) {
	if owner == "" {
		return 0, domain.ErrUnauthorized
	}
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return 0, domain.ErrValidation
	}

	deletedAt := s.opts.now().UTC()
	moved, err := s.binRepository.MoveToBin(ctx, owner, ids, deletedAt, deletedAt.Add(s.retention))
	if err != nil {
		return 0, fmt.Errorf("move tasks to bin: %w", err)
	}
	if moved == 0 {
		return 0, domain.ErrTaskNotFound
	}

	s.opts.metrics.TasksBinned(moved)
	s.opts.publish(ctx, domain.TaskEventBinned, owner, ids, moved)
	return moved, nil
}

func (s *BinService) ListBin(ctx context.Context, owner string) ([]domain.BinEntry, error) {
	if owner == "" {
		return nil, domain.ErrUnauthorized
	}

	purged, err := s.binRepository.PurgeExpired(ctx, owner, s.opts.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("purge expired bin entries: %w", err)
	}
	if purged > 0 {
		s.opts.metrics.BinPurged("expired", purged)
		s.opts.publish(ctx, domain.TaskEventExpired, owner, nil, int(purged))
	}

	entries, err := s.binRepository.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list bin entries: %w", err)
	}
	return entries, nil
}

func (s *BinService) Restore(ctx context.Context, owner string, ids []string) (int, error) {
	if owner == "" {
		return 0, domain.ErrUnauthorized
	}
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return 0, domain.ErrValidation
	}

	restored, err := s.binRepository.Restore(ctx, owner, ids)
	if err != nil {
		return 0, fmt.Errorf("restore bin entries: %w", err)
	}
	if restored == 0 {
		return 0, domain.ErrBinEntryNotFound
	}

	s.opts.metrics.TasksRestored(restored)
	s.opts.publish(ctx, domain.TaskEventRestored, owner, ids, restored)
	return restored, nil
}

func (s *BinService) Purge(ctx context.Context, owner string, ids []string) (int64, error) {
	if owner == "" {
		return 0, domain.ErrUnauthorized
	}
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return 0, domain.ErrValidation
	}

	deleted, err := s.binRepository.Delete(ctx, owner, ids)
	if err != nil {
		return 0, fmt.Errorf("purge bin entries: %w", err)
	}
	if deleted == 0 {
		return 0, domain.ErrBinEntryNotFound
	}

	s.opts.metrics.BinPurged("manual", deleted)
	s.opts.publish(ctx, domain.TaskEventPurged, owner, ids, int(deleted))
	return deleted, nil
}

var _ ports.BinService = (*BinService)(nil)
