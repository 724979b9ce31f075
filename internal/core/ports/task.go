package ports

import (
	"context"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	ListByOwner(ctx context.Context, owner string) ([]domain.Task, error)
	// Update returns the number of tasks matched by (id, owner).
	Update(ctx context.Context, owner, id string, fields domain.TaskFields) (int64, error)
	SetCompletion(ctx context.Context, owner, id string, intent domain.CompletionIntent) (int64, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, owner string, fields domain.TaskFields) (domain.Task, error)
	ListTasks(ctx context.Context, owner string, order domain.TaskOrder) ([]domain.Task, error)
	EditTask(ctx context.Context, owner, id string, fields domain.TaskFields) error
	SetCompletion(ctx context.Context, owner, id string, intent domain.CompletionIntent) error
}
