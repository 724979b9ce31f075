package ports

import (
	"context"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
)

type EventPublisher interface {
	Publish(ctx context.Context, event domain.TaskEvent) error
	Close() error
}
