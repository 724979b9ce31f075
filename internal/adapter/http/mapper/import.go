package mapper

import (
	"time"

	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/dto"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
)

func ToCalendarEventItems(events []domain.CalendarEvent) []dto.CalendarEventItem {
	items := make([]dto.CalendarEventItem, 0, len(events))
	for _, event := range events {
		fields := event.TaskFields()
		items = append(items, dto.CalendarEventItem{
			ID:          event.ID,
			Summary:     fields.Name,
			Description: event.Description,
			Location:    event.Location,
			StartDate:   event.StartDate.UTC().Format(time.RFC3339),
			EndDate:     event.EndDate.UTC().Format(time.RFC3339),
			DueDate:     fields.DueDate,
			Priority:    string(fields.Priority),
		})
	}
	return items
}

func ToImportTasksResponse(report domain.ImportReport, translate func(error) string) dto.ImportTasksResponse {
	results := make([]dto.ImportItemResult, 0, len(report.Results))
	for _, result := range report.Results {
		item := dto.ImportItemResult{Index: result.Index, Success: result.Err == nil, ID: result.TaskID}
		if result.Err != nil {
			item.Error = translate(result.Err)
		}
		results = append(results, item)
	}
	return dto.ImportTasksResponse{
		Imported: report.Imported,
		Failed:   report.Failed,
		Results:  results,
	}
}
