package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	opts           options
}

func NewTaskService(taskRepository ports.TaskRepository, opts ...Option) *TaskService {
	return &TaskService{taskRepository: taskRepository, opts: newOptions(opts)}
}

func (s *TaskService) CreateTask(ctx context.Context, owner string, fields domain.TaskFields) (domain.Task, error) {
	if owner == "" {
		return domain.Task{}, domain.ErrUnauthorized
	}
	fields = trimFields(fields)
	if err := fields.Validate(); err != nil {
		return domain.Task{}, err
	}

	task, err := s.taskRepository.Create(ctx, domain.Task{
		OwnerEmail:  owner,
		Name:        fields.Name,
		Description: fields.Description,
		DueDate:     fields.DueDate,
		Priority:    fields.Priority,
		Completed:   false,
	})
	if err != nil {
		return domain.Task{}, fmt.Errorf("create task: %w", err)
	}

	s.opts.metrics.TasksCreated(1)
	s.opts.publish(ctx, domain.TaskEventCreated, owner, []string{task.ID}, 1)
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, owner string, order domain.TaskOrder) ([]domain.Task, error) {
	if owner == "" {
		return nil, domain.ErrUnauthorized
	}
	tasks, err := s.taskRepository.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	sortTasks(tasks, order)
	return tasks, nil
}

func (s *TaskService) EditTask(ctx context.Context, owner, id string, fields domain.TaskFields) error {
	if owner == "" {
		return domain.ErrUnauthorized
	}
	if id == "" {
		return domain.ErrValidation
	}
	fields = trimFields(fields)
	if err := fields.Validate(); err != nil {
		return err
	}

	matched, err := s.taskRepository.Update(ctx, owner, id, fields)
	if err != nil {
		return fmt.Errorf("edit task: %w", err)
	}
	if matched == 0 {
		return domain.ErrTaskNotFound
	}

	s.opts.publish(ctx, domain.TaskEventUpdated, owner, []string{id}, 1)
	return nil
}

// SetCompletion applies the caller's intent. Marking an already completed task complete again succeeds.
func (s *TaskService) SetCompletion(ctx context.Context, owner, id string, intent domain.CompletionIntent) error {
	if owner == "" {
		return domain.ErrUnauthorized
	}
	if id == "" || !intent.Valid() {
		return domain.ErrValidation
	}

	matched, err := s.taskRepository.SetCompletion(ctx, owner, id, intent)
	if err != nil {
		return fmt.Errorf("set task completion: %w", err)
	}
	if matched == 0 {
		return domain.ErrTaskNotFound
	}

	s.opts.publish(ctx, domain.TaskEventCompleted, owner, []string{id}, 1)
	return nil
}

func trimFields(fields domain.TaskFields) domain.TaskFields {
	return domain.TaskFields{
		Name:        strings.TrimSpace(fields.Name),
		Description: strings.TrimSpace(fields.Description),
		DueDate:     strings.TrimSpace(fields.DueDate),
		Priority:    domain.Priority(strings.ToLower(strings.TrimSpace(string(fields.Priority)))),
	}
}

func sortTasks(tasks []domain.Task, order domain.TaskOrder) {
	var compare func(a, b domain.Task) int
	switch order.Field {
	case domain.SortName:
		compare = func(a, b domain.Task) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	case domain.SortDescription:
		compare = func(a, b domain.Task) int {
			return strings.Compare(strings.ToLower(a.Description), strings.ToLower(b.Description))
		}
	case domain.SortDueDate:
		compare = func(a, b domain.Task) int {
			at, _ := domain.ParseDueDate(a.DueDate)
			bt, _ := domain.ParseDueDate(b.DueDate)
			return at.Compare(bt)
		}
	case domain.SortPriority:
		compare = func(a, b domain.Task) int {
			return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
		}
	default:
		return
	}

	slices.SortStableFunc(tasks, func(a, b domain.Task) int {
		if order.Descending {
			return compare(b, a)
		}
		return compare(a, b)
	})
}

var _ ports.TaskService = (*TaskService)(nil)
