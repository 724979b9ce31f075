package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/dto"
	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/handlers"
	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/middleware"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
)

func newBinRouter(bin *binServiceMock) http.Handler {
	router := newRouter(newSignedInAuth())
	h := handlers.NewBinHandler(bin)
	api := router.Group("/", middleware.RequireSession())
	api.POST("/deleteTask", h.DeleteTasks)
	api.GET("/recycleBin", h.ListBin)
	api.POST("/restoreTask", h.RestoreTasks)
	api.POST("/deletePermanently", h.PurgeTasks)
	return router
}

func decodeCount(t *testing.T, body []byte) dto.CountResponse {
	t.Helper()
	var resp dto.CountResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestDeleteTasks(t *testing.T) {
	t.Run("moves to bin", func(t *testing.T) {
		bin := new(binServiceMock)
		bin.On("SoftDelete", mock.Anything, aliceEmail, []string{"t1", "t2"}).Return(2, nil).Once()

		rec := serve(newBinRouter(bin), newRequest(http.MethodPost, "/deleteTask", `{"ids":[" t1 ","t2",""]}`, true))
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeCount(t, rec.Body.Bytes())
		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, "Tasks deleted successfully.", resp.Message)
		assert.EqualValues(t, 2, resp.Count)
		bin.AssertExpectations(t)
	})

	t.Run("empty ids", func(t *testing.T) {
		bin := new(binServiceMock)

		rec := serve(newBinRouter(bin), newRequest(http.MethodPost, "/deleteTask", `{"ids":[]}`, true))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "No task IDs provided.", decodeError(t, rec.Body.Bytes()).ErrDetails.Message)
		bin.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("nothing owned matched", func(t *testing.T) {
		bin := new(binServiceMock)
		bin.On("SoftDelete", mock.Anything, aliceEmail, []string{"t9"}).Return(0, domain.ErrTaskNotFound).Once()

		rec := serve(newBinRouter(bin), newRequest(http.MethodPost, "/deleteTask", `{"ids":["t9"]}`, true))
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "No tasks found for the provided IDs.", decodeError(t, rec.Body.Bytes()).ErrDetails.Message)
	})

	t.Run("store failure", func(t *testing.T) {
		bin := new(binServiceMock)
		bin.On("SoftDelete", mock.Anything, aliceEmail, []string{"t1"}).Return(0, errors.New("tx aborted")).Once()

		rec := serve(newBinRouter(bin), newRequest(http.MethodPost, "/deleteTask", `{"ids":["t1"]}`, true))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to move tasks to bin.", decodeError(t, rec.Body.Bytes()).ErrDetails.Message)
	})
}

func TestListBin(t *testing.T) {
	deletedAt := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	bin := new(binServiceMock)
	bin.On("ListBin", mock.Anything, aliceEmail).Return([]domain.BinEntry{{
		ID:         "b1",
		OriginalID: "t1",
		Task:       domain.Task{ID: "t1", OwnerEmail: aliceEmail, Name: "Essay", Priority: domain.PriorityHigh},
		DeletedAt:  deletedAt,
		ExpiresAt:  deletedAt.Add(7 * 24 * time.Hour),
	}}, nil).Once()

	rec := serve(newBinRouter(bin), newRequest(http.MethodGet, "/recycleBin", "", true))
	require.Equal(t, http.StatusOK, rec.Code)

	var items []dto.BinItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "b1", items[0].ID)
	assert.Equal(t, "t1", items[0].OriginalID)
	assert.Equal(t, "Essay", items[0].TaskName)
	assert.Equal(t, "2025-10-01T09:00:00Z", items[0].DeletedAt)
	assert.Equal(t, "2025-10-08T09:00:00Z", items[0].ExpiresAt)
	bin.AssertExpectations(t)
}

func TestRestoreTasks(t *testing.T) {
	t.Run("restored", func(t *testing.T) {
		bin := new(binServiceMock)
		bin.On("Restore", mock.Anything, aliceEmail, []string{"b1"}).Return(1, nil).Once()

		rec := serve(newBinRouter(bin), newRequest(http.MethodPost, "/restoreTask", `{"ids":["b1"]}`, true))
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeCount(t, rec.Body.Bytes())
		assert.Equal(t, "Tasks restored successfully.", resp.Message)
		assert.EqualValues(t, 1, resp.Count)
	})

	t.Run("nothing in bin", func(t *testing.T) {
		bin := new(binServiceMock)
		bin.On("Restore", mock.Anything, aliceEmail, []string{"b9"}).Return(0, domain.ErrBinEntryNotFound).Once()

		rec := serve(newBinRouter(bin), newRequest(http.MethodPost, "/restoreTask", `{"ids":["b9"]}`, true))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing body", func(t *testing.T) {
		bin := new(binServiceMock)

		rec := serve(newBinRouter(bin), newRequest(http.MethodPost, "/restoreTask", `{}`, true))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPurgeTasks(t *testing.T) {
	t.Run("purged", func(t *testing.T) {
		bin := new(binServiceMock)
		bin.On("Purge", mock.Anything, aliceEmail, []string{"b1", "b2"}).Return(int64(2), nil).Once()

		rec := serve(newBinRouter(bin), newRequest(http.MethodPost, "/deletePermanently", `{"ids":["b1","b2"]}`, true))
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeCount(t, rec.Body.Bytes())
		assert.Equal(t, "Tasks deleted permanently.", resp.Message)
		assert.EqualValues(t, 2, resp.Count)
	})

	t.Run("store failure", func(t *testing.T) {
		bin := new(binServiceMock)
		bin.On("Purge", mock.Anything, aliceEmail, []string{"b1"}).Return(int64(0), errors.New("delete failed")).Once()

		rec := serve(newBinRouter(bin), newRequest(http.MethodPost, "/deletePermanently", `{"ids":["b1"]}`, true))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to delete tasks permanently.", decodeError(t, rec.Body.Bytes()).ErrDetails.Message)
	})

	t.Run("no session", func(t *testing.T) {
		bin := new(binServiceMock)

		rec := serve(newBinRouter(bin), newRequest(http.MethodPost, "/deletePermanently", `{"ids":["b1"]}`, false))
		require.Equal(t, http.StatusForbidden, rec.Code)
		bin.AssertNotCalled(t, "Purge", mock.Anything, mock.Anything, mock.Anything)
	})
}
