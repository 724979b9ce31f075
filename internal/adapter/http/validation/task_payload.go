package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/dto"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
)

var (
	ErrInvalidTaskPayload = errors.New("invalid task payload")
	ErrMissingTaskID      = errors.New("task id is required")
	ErrMissingTaskIDs     = errors.New("no task ids provided")
)

const actionToggle = "toggle"

// BuildCompletionIntent reads either {"id","completed":bool} or {"id","action":"toggle"}.
// A missing or null completed marks the task incomplete.
func BuildCompletionIntent(req dto.CompleteRequest, raw map[string]json.RawMessage) (string, domain.CompletionIntent, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return "", "", ErrMissingTaskID
	}

	if hasJSONField(raw, "action") {
		if strings.ToLower(strings.TrimSpace(req.Action)) != actionToggle || hasJSONField(raw, "completed") {
			return "", "", ErrInvalidTaskPayload
		}
		return id, domain.CompletionToggle, nil
	}

	if req.Completed != nil && *req.Completed {
		return id, domain.CompletionMarkDone, nil
	}
	return id, domain.CompletionMarkUndone, nil
}

// BuildIDs trims the ids and rejects an empty list.
func BuildIDs(req dto.IDsRequest) ([]string, error) {
	ids := make([]string, 0, len(req.IDs))
	for _, id := range req.IDs {
		id = strings.TrimSpace(id)
		if id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, ErrMissingTaskIDs
	}
	return ids, nil
}

func BuildTaskOrder(sortField, direction string) (domain.TaskOrder, error) {
	order := domain.TaskOrder{Field: domain.SortField(sortField)}
	switch order.Field {
	case domain.SortNone, domain.SortName, domain.SortDescription, domain.SortDueDate, domain.SortPriority:
	default:
		return domain.TaskOrder{}, ErrInvalidTaskPayload
	}

	switch strings.ToLower(direction) {
	case "", "asc":
	case "desc":
		order.Descending = true
	default:
		return domain.TaskOrder{}, ErrInvalidTaskPayload
	}
	return order, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}
