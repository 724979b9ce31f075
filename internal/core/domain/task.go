package domain

import (
	"strings"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank orders priorities for sorting; unknown values rank lowest.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// DueDateLayouts lists the due date formats accepted from clients, most specific first.
var DueDateLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

func ParseDueDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range DueDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

type Task struct {
	ID          string
	OwnerEmail  string
	Name        string
	Description string
	DueDate     string
	Priority    Priority
	Completed   bool
}

// TaskFields is the editable part of a task.
type TaskFields struct {
	Name        string
	Description string
	DueDate     string
	Priority    Priority
}

func (f TaskFields) Validate() error {
	if strings.TrimSpace(f.Name) == "" ||
		strings.TrimSpace(f.Description) == "" ||
		strings.TrimSpace(f.DueDate) == "" ||
		f.Priority == "" {
		return ErrValidation
	}
	if !f.Priority.Valid() {
		return ErrValidation
	}
	if _, ok := ParseDueDate(f.DueDate); !ok {
		return ErrValidation
	}
	return nil
}

// CompletionIntent is what the client asks for; the flip for CompletionToggle happens in the store.
type CompletionIntent string

const (
	CompletionMarkDone   CompletionIntent = "complete"
	CompletionMarkUndone CompletionIntent = "incomplete"
	CompletionToggle     CompletionIntent = "toggle"
)

func (i CompletionIntent) Valid() bool {
	switch i {
	case CompletionMarkDone, CompletionMarkUndone, CompletionToggle:
		return true
	}
	return false
}

type SortField string

const (
	SortNone        SortField = ""
	SortName        SortField = "taskName"
	SortDescription SortField = "taskDescription"
	SortDueDate     SortField = "taskDueDate"
	SortPriority    SortField = "taskPriority"
)

type TaskOrder struct {
	Field      SortField
	Descending bool
}
