package memory

import (
	"context"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/ports"
)

type TaskRepository struct {
	db *Database
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *Database) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(_ context.Context, task domain.Task) (domain.Task, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	task.ID = newID()
	r.db.tasks = append(r.db.tasks, task)
	return task, nil
}

func (r *TaskRepository) ListByOwner(_ context.Context, owner string) ([]domain.Task, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	tasks := make([]domain.Task, 0)
	for _, task := range r.db.tasks {
		if task.OwnerEmail == owner {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (r *TaskRepository) Update(_ context.Context, owner, id string, fields domain.TaskFields) (int64, error) {
	if err := validIDs([]string{id}); err != nil {
		return 0, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	i := r.indexOf(owner, id)
	if i < 0 {
		return 0, nil
	}
	task := &r.db.tasks[i]
	task.Name = fields.Name
	task.Description = fields.Description
	task.DueDate = fields.DueDate
	task.Priority = fields.Priority
	return 1, nil
}

func (r *TaskRepository) SetCompletion(_ context.Context, owner, id string, intent domain.CompletionIntent) (int64, error) {
	if err := validIDs([]string{id}); err != nil {
		return 0, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	i := r.indexOf(owner, id)
	if i < 0 {
		return 0, nil
	}
	task := &r.db.tasks[i]
	switch intent {
	case domain.CompletionMarkDone:
		task.Completed = true
	case domain.CompletionMarkUndone:
		task.Completed = false
	case domain.CompletionToggle:
		task.Completed = !task.Completed
	}
	return 1, nil
}

// indexOf expects the lock to be held.
func (r *TaskRepository) indexOf(owner, id string) int {
	for i, task := range r.db.tasks {
		if task.ID == id && task.OwnerEmail == owner {
			return i
		}
	}
	return -1
}
