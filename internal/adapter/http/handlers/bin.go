package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/dto"
	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/mapper"
	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/validation"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/ports"
	"github.com/n-smith-public/cs4241e25-final-project/pkg/apierrors"
)

type BinHandler struct {
	binService ports.BinService
}

func NewBinHandler(binService ports.BinService) *BinHandler {
	return &BinHandler{binService: binService}
}

func (h *BinHandler) DeleteTasks(c *gin.Context) {
	session, ids, ok := h.bindIDs(c)
	if !ok {
		return
	}

	moved, err := h.binService.SoftDelete(c.Request.Context(), session.Email, ids)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			writeError(c, http.StatusNotFound, apierrors.MsgTasksNotFound)
			return
		}
		writeServiceError(c, err, apierrors.MsgFailDeleteTask, "failed to move tasks to bin")
		return
	}

	writeCount(c, msgTasksBinned, int64(moved))
}

func (h *BinHandler) ListBin(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	entries, err := h.binService.ListBin(c.Request.Context(), session.Email)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailListBin, "failed to list recycle bin")
		return
	}

	c.JSON(http.StatusOK, mapper.ToBinItems(entries))
}

func (h *BinHandler) RestoreTasks(c *gin.Context) {
	session, ids, ok := h.bindIDs(c)
	if !ok {
		return
	}

	restored, err := h.binService.Restore(c.Request.Context(), session.Email, ids)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailRestoreTask, "failed to restore tasks")
		return
	}

	writeCount(c, msgTasksRestored, int64(restored))
}

func (h *BinHandler) PurgeTasks(c *gin.Context) {
	session, ids, ok := h.bindIDs(c)
	if !ok {
		return
	}

	purged, err := h.binService.Purge(c.Request.Context(), session.Email, ids)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailPurgeTask, "failed to purge tasks")
		return
	}

	writeCount(c, msgTasksPurged, purged)
}

func (h *BinHandler) bindIDs(c *gin.Context) (domain.Session, []string, bool) {
	session, ok := currentSession(c)
	if !ok {
		return domain.Session{}, nil, false
	}

	var req dto.IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgMissingTaskIDs)
		return domain.Session{}, nil, false
	}
	ids, err := validation.BuildIDs(req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgMissingTaskIDs)
		return domain.Session{}, nil, false
	}
	return session, ids, true
}
