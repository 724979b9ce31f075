package service_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/n-smith-public/cs4241e25-final-project/internal/app/service"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
)

type stubParser struct {
	events []domain.CalendarEvent
	err    error
	now    time.Time
}

func (p *stubParser) Parse(_ io.Reader, now time.Time) ([]domain.CalendarEvent, error) {
	p.now = now
	return p.events, p.err
}

func TestImportService_PreviewCalendar(t *testing.T) {
	clock := newFakeClock()
	parser := &stubParser{events: []domain.CalendarEvent{{ID: "1", Summary: "Standup"}}}
	svc := service.NewImportService(parser, nil, service.WithClock(clock.Now))

	events, err := svc.PreviewCalendar(context.Background(), strings.NewReader("BEGIN:VCALENDAR"))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, epoch, parser.now)

	parser.err = errors.New("bad calendar")
	_, err = svc.PreviewCalendar(context.Background(), strings.NewReader(""))
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestImportService_ImportTasks(t *testing.T) {
	tasks, _ := newTaskService()
	svc := service.NewImportService(&stubParser{}, tasks)
	ctx := context.Background()

	report := svc.ImportTasks(ctx, "alice@x.io", []domain.TaskFields{
		validFields("one"),
		{Name: "broken"},
		validFields("two"),
	})
	require.Equal(t, 2, report.Imported)
	require.Equal(t, 1, report.Failed)
	require.Len(t, report.Results, 3)
	require.NotEmpty(t, report.Results[0].TaskID)
	require.ErrorIs(t, report.Results[1].Err, domain.ErrValidation)
	require.Equal(t, 2, report.Results[2].Index)

	list, err := tasks.ListTasks(ctx, "alice@x.io", domain.TaskOrder{})
	require.NoError(t, err)
	require.Len(t, list, 2)
}
