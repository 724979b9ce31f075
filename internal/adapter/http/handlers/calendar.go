package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/dto"
	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/mapper"
	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/middleware"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/ports"
	"github.com/n-smith-public/cs4241e25-final-project/pkg/apierrors"
	"github.com/n-smith-public/cs4241e25-final-project/pkg/translator"
)

const (
	maxCalendarSize   = 2 << 20
	multipartOverhead = 64 << 10
)

type ImportHandler struct {
	importService ports.ImportService
}

func NewImportHandler(importService ports.ImportService) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// PreviewCalendar parses an uploaded .ics file and lists the upcoming events it would import.
func (h *ImportHandler) PreviewCalendar(c *gin.Context) {
	if _, ok := currentSession(c); !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxCalendarSize+multipartOverhead)
	header, err := c.FormFile("file")
	if err != nil || !strings.EqualFold(filepath.Ext(header.Filename), ".ics") || header.Size > maxCalendarSize {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidCalendar)
		return
	}

	file, err := header.Open()
	if err != nil {
		zap.L().Error("failed to open uploaded calendar", zap.Error(err))
		writeError(c, http.StatusInternalServerError, apierrors.MsgInternal)
		return
	}
	defer file.Close()

	events, err := h.importService.PreviewCalendar(c.Request.Context(), file)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(c, http.StatusBadRequest, apierrors.MsgInvalidCalendar)
			return
		}
		writeServiceError(c, err, apierrors.MsgInternal, "failed to preview calendar")
		return
	}

	c.JSON(http.StatusOK, mapper.ToCalendarEventItems(events))
}

// ImportTasks creates each submitted task on its own and reports per-item results.
func (h *ImportHandler) ImportTasks(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var req dto.ImportTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Tasks) == 0 {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
		return
	}

	items := make([]domain.TaskFields, 0, len(req.Tasks))
	for _, task := range req.Tasks {
		items = append(items, mapper.ToTaskFields(task))
	}

	report := h.importService.ImportTasks(c.Request.Context(), session.Email, items)
	lang := middleware.GetLang(c)
	c.JSON(http.StatusOK, mapper.ToImportTasksResponse(report, func(err error) string {
		_, msgKey, known := classify(err)
		if !known {
			zap.L().Error("failed to import task", zap.Error(err))
			msgKey = apierrors.MsgFailCreateTask
		}
		return translator.Localize(msgKey, lang)
	}))
}
