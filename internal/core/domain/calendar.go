package domain

import (
	"strings"
	"time"
)

const importDueDateLayout = "2006-01-02T15:04"

// CalendarEvent is a future VEVENT offered for import.
type CalendarEvent struct {
	ID          string
	Summary     string
	Description string
	Location    string
	StartDate   time.Time
	EndDate     time.Time
	Priority    Priority
}

// TaskFields builds the task an imported event turns into.
func (e CalendarEvent) TaskFields() TaskFields {
	description := e.Description
	if e.Location != "" {
		if description != "" {
			description += "\nLocation: " + e.Location
		} else {
			description = "Location: " + e.Location
		}
	}
	if strings.TrimSpace(description) == "" {
		description = "Imported from iCal"
	}

	name := e.Summary
	if name == "" {
		name = "Untitled Event"
	}

	priority := e.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	return TaskFields{
		Name:        name,
		Description: description,
		DueDate:     e.EndDate.Format(importDueDateLayout),
		Priority:    priority,
	}
}

type ImportResult struct {
	Index  int
	TaskID string
	Err    error
}

type ImportReport struct {
	Imported int
	Failed   int
	Results  []ImportResult
}
