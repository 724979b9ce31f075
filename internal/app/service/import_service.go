package service

import (
	"context"
	"fmt"
	"io"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/ports"
)

// ImportService previews calendar files and bulk creates tasks through the task service.
type ImportService struct {
	parser ports.CalendarParser
	tasks  ports.TaskService
	opts   options
}

func NewImportService(parser ports.CalendarParser, tasks ports.TaskService, opts ...Option) *ImportService {
	return &ImportService{parser: parser, tasks: tasks, opts: newOptions(opts)}
}

func (s *ImportService) PreviewCalendar(_ context.Context, r io.Reader) ([]domain.CalendarEvent, error) {
	events, err := s.parser.Parse(r, s.opts.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return events, nil
}

// ImportTasks creates every item independently; one failure does not stop the rest.
func (s *ImportService) ImportTasks(ctx context.Context, owner string, items []domain.TaskFields) domain.ImportReport {
	report := domain.ImportReport{Results: make([]domain.ImportResult, 0, len(items))}
	for i, fields := range items {
		task, err := s.tasks.CreateTask(ctx, owner, fields)
		result := domain.ImportResult{Index: i, TaskID: task.ID, Err: err}
		if err != nil {
			report.Failed++
		} else {
			report.Imported++
		}
		report.Results = append(report.Results, result)
	}
	return report
}

var _ ports.ImportService = (*ImportService)(nil)
