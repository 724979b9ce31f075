package ports

import (
	"context"
	"io"
	"time"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
)

type CalendarParser interface {
	Parse(r io.Reader, now time.Time) ([]domain.CalendarEvent, error)
}

type ImportService interface {
	PreviewCalendar(ctx context.Context, r io.Reader) ([]domain.CalendarEvent, error)
	ImportTasks(ctx context.Context, owner string, items []domain.TaskFields) domain.ImportReport
}
