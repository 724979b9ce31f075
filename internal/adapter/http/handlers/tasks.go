package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/dto"
	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/mapper"
	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/validation"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/ports"
	"github.com/n-smith-public/cs4241e25-final-project/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
		return
	}

	if _, err := h.taskService.CreateTask(c.Request.Context(), session.Email, mapper.ToTaskFields(req)); err != nil {
		writeServiceError(c, err, apierrors.MsgFailCreateTask, "failed to create task")
		return
	}

	writeSuccess(c, http.StatusCreated, msgTaskCreated)
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	order, err := validation.BuildTaskOrder(c.Query("sort"), c.Query("dir"))
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), session.Email, order)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailListTask, "failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) EditTask(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var req dto.EditTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
		return
	}

	err := h.taskService.EditTask(c.Request.Context(), session.Email, req.ID, mapper.ToTaskFields(req.TaskRequest))
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailUpdateTask, "failed to edit task", zap.String("task_id", req.ID))
		return
	}

	writeSuccess(c, http.StatusOK, msgTaskUpdated)
}

func (h *TaskHandler) SetCompletion(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
		return
	}
	var req dto.CompleteRequest
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
		return
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
		return
	}

	id, intent, err := validation.BuildCompletionIntent(req, raw)
	if err != nil {
		if errors.Is(err, validation.ErrMissingTaskID) {
			writeError(c, http.StatusBadRequest, apierrors.MsgMissingTaskID)
			return
		}
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
		return
	}

	if err := h.taskService.SetCompletion(c.Request.Context(), session.Email, id, intent); err != nil {
		writeServiceError(c, err, apierrors.MsgFailUpdateTask, "failed to set task completion", zap.String("task_id", id))
		return
	}

	writeSuccess(c, http.StatusOK, msgTaskUpdated)
}
