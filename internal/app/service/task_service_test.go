package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/memory"
	"github.com/n-smith-public/cs4241e25-final-project/internal/app/service"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
)

func newTaskService() (*service.TaskService, *recordingPublisher) {
	publisher := &recordingPublisher{}
	repo := memory.NewTaskRepository(memory.NewDatabase())
	return service.NewTaskService(repo, service.WithEvents(publisher)), publisher
}

func TestTaskService_CreateAndList(t *testing.T) {
	svc, publisher := newTaskService()
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, "alice@x.io", domain.TaskFields{
		Name:        "  Write report ",
		Description: "quarterly",
		DueDate:     "2025-10-10T12:00",
		Priority:    "HIGH",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Write report", created.Name)
	require.Equal(t, domain.PriorityHigh, created.Priority)
	require.False(t, created.Completed)

	_, err = svc.CreateTask(ctx, "bob@x.io", validFields("bob's"))
	require.NoError(t, err)

	tasks, err := svc.ListTasks(ctx, "alice@x.io", domain.TaskOrder{})
	require.NoError(t, err)
	require.Equal(t, []domain.Task{created}, tasks)
	require.Equal(t, []domain.TaskEventType{domain.TaskEventCreated, domain.TaskEventCreated}, publisher.Types())
}

func TestTaskService_CreateValidation(t *testing.T) {
	svc, _ := newTaskService()
	ctx := context.Background()

	cases := map[string]domain.TaskFields{
		"missing name":     {Description: "d", DueDate: "2025-10-10", Priority: domain.PriorityLow},
		"blank desc":       {Name: "n", Description: "  ", DueDate: "2025-10-10", Priority: domain.PriorityLow},
		"missing due date": {Name: "n", Description: "d", Priority: domain.PriorityLow},
		"bad due date":     {Name: "n", Description: "d", DueDate: "next week", Priority: domain.PriorityLow},
		"bad priority":     {Name: "n", Description: "d", DueDate: "2025-10-10", Priority: "urgent"},
	}
	for name, fields := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateTask(ctx, "alice@x.io", fields)
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	_, err := svc.CreateTask(ctx, "", validFields("x"))
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTaskService_Edit(t *testing.T) {
	svc, _ := newTaskService()
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "alice@x.io", validFields("draft"))
	require.NoError(t, err)

	updated := validFields("final")
	updated.Priority = domain.PriorityLow
	require.NoError(t, svc.EditTask(ctx, "alice@x.io", task.ID, updated))
	require.NoError(t, svc.EditTask(ctx, "alice@x.io", task.ID, updated), "re-saving identical values succeeds")

	tasks, err := svc.ListTasks(ctx, "alice@x.io", domain.TaskOrder{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "final", tasks[0].Name)
	require.Equal(t, domain.PriorityLow, tasks[0].Priority)

	require.ErrorIs(t, svc.EditTask(ctx, "bob@x.io", task.ID, updated), domain.ErrTaskNotFound)
	require.ErrorIs(t, svc.EditTask(ctx, "alice@x.io", "65f000000000000000000000", updated), domain.ErrTaskNotFound)
	require.ErrorIs(t, svc.EditTask(ctx, "alice@x.io", "not-an-id", updated), domain.ErrInvalidID)
	require.ErrorIs(t, svc.EditTask(ctx, "alice@x.io", task.ID, domain.TaskFields{}), domain.ErrValidation)
}

func TestTaskService_SetCompletion(t *testing.T) {
	svc, _ := newTaskService()
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "alice@x.io", validFields("t"))
	require.NoError(t, err)

	completed := func() bool {
		tasks, err := svc.ListTasks(ctx, "alice@x.io", domain.TaskOrder{})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		return tasks[0].Completed
	}

	require.NoError(t, svc.SetCompletion(ctx, "alice@x.io", task.ID, domain.CompletionMarkDone))
	require.NoError(t, svc.SetCompletion(ctx, "alice@x.io", task.ID, domain.CompletionMarkDone))
	require.True(t, completed())

	require.NoError(t, svc.SetCompletion(ctx, "alice@x.io", task.ID, domain.CompletionToggle))
	require.False(t, completed())
	require.NoError(t, svc.SetCompletion(ctx, "alice@x.io", task.ID, domain.CompletionToggle))
	require.True(t, completed())

	require.NoError(t, svc.SetCompletion(ctx, "alice@x.io", task.ID, domain.CompletionMarkUndone))
	require.False(t, completed())

	require.ErrorIs(t, svc.SetCompletion(ctx, "alice@x.io", "", domain.CompletionToggle), domain.ErrValidation)
	require.ErrorIs(t, svc.SetCompletion(ctx, "alice@x.io", task.ID, "flip"), domain.ErrValidation)
}

func TestTaskService_CompletionRespectsOwnership(t *testing.T) {
	svc, _ := newTaskService()
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "alice@x.io", validFields("t"))
	require.NoError(t, err)

	err = svc.SetCompletion(ctx, "bob@x.io", task.ID, domain.CompletionToggle)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)

	tasks, err := svc.ListTasks(ctx, "alice@x.io", domain.TaskOrder{})
	require.NoError(t, err)
	require.False(t, tasks[0].Completed)
}

func TestTaskService_ListSorted(t *testing.T) {
	svc, _ := newTaskService()
	ctx := context.Background()

	for _, f := range []domain.TaskFields{
		{Name: "b", Description: "two", DueDate: "2025-10-12", Priority: domain.PriorityLow},
		{Name: "a", Description: "three", DueDate: "2025-10-11T08:00", Priority: domain.PriorityHigh},
		{Name: "C", Description: "one", DueDate: "2025-10-13", Priority: domain.PriorityMedium},
	} {
		_, err := svc.CreateTask(ctx, "alice@x.io", f)
		require.NoError(t, err)
	}

	names := func(order domain.TaskOrder) []string {
		tasks, err := svc.ListTasks(ctx, "alice@x.io", order)
		require.NoError(t, err)
		out := make([]string, 0, len(tasks))
		for _, task := range tasks {
			out = append(out, task.Name)
		}
		return out
	}

	require.Equal(t, []string{"b", "a", "C"}, names(domain.TaskOrder{}))
	require.Equal(t, []string{"a", "b", "C"}, names(domain.TaskOrder{Field: domain.SortName}))
	require.Equal(t, []string{"C", "a", "b"}, names(domain.TaskOrder{Field: domain.SortDescription}))
	require.Equal(t, []string{"a", "b", "C"}, names(domain.TaskOrder{Field: domain.SortDueDate}))
	require.Equal(t, []string{"a", "C", "b"}, names(domain.TaskOrder{Field: domain.SortPriority, Descending: true}))
}
