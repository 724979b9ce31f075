package mapper

import (
	"time"

	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/dto"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:              task.ID,
		Email:           task.OwnerEmail,
		TaskName:        task.Name,
		TaskDescription: task.Description,
		TaskDueDate:     task.DueDate,
		TaskPriority:    string(task.Priority),
		Completed:       task.Completed,
	}
}

// ToBinItems keeps the bin entry id as the item id; restore and purge address entries by it.
func ToBinItems(entries []domain.BinEntry) []dto.BinItem {
	items := make([]dto.BinItem, 0, len(entries))
	for _, entry := range entries {
		item := dto.BinItem{
			TaskItem:   ToTaskItem(entry.Task),
			OriginalID: entry.OriginalID,
			DeletedAt:  entry.DeletedAt.UTC().Format(time.RFC3339),
			ExpiresAt:  entry.ExpiresAt.UTC().Format(time.RFC3339),
		}
		item.ID = entry.ID
		items = append(items, item)
	}
	return items
}

func ToTaskFields(req dto.TaskRequest) domain.TaskFields {
	return domain.TaskFields{
		Name:        req.TaskName,
		Description: req.TaskDescription,
		DueDate:     req.TaskDueDate,
		Priority:    domain.Priority(req.TaskPriority),
	}
}
