package domain

import "time"

type TaskEventType string

const (
	TaskEventCreated   TaskEventType = "task.created"
	TaskEventUpdated   TaskEventType = "task.updated"
	TaskEventCompleted TaskEventType = "task.completion_changed"
	TaskEventBinned    TaskEventType = "task.binned"
	TaskEventRestored  TaskEventType = "task.restored"
	TaskEventPurged    TaskEventType = "task.purged"
	TaskEventExpired   TaskEventType = "task.expired"
)

type TaskEvent struct {
	Type       TaskEventType `json:"type"`
	OwnerEmail string        `json:"email"`
	TaskIDs    []string      `json:"ids,omitempty"`
	Count      int           `json:"count"`
	OccurredAt time.Time     `json:"occurredAt"`
}
