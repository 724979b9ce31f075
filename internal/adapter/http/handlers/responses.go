package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/dto"
	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/middleware"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
	"github.com/n-smith-public/cs4241e25-final-project/pkg/apierrors"
	"github.com/n-smith-public/cs4241e25-final-project/pkg/translator"
)

const statusSuccess = "success"

const (
	msgOTPSent            = "otpSent"
	msgOTPVerified        = "otpVerified"
	msgDisplayNameUpdated = "displayNameUpdated"
	msgTaskCreated        = "taskCreated"
	msgTaskUpdated        = "taskUpdated"
	msgTasksBinned        = "tasksBinned"
	msgTasksRestored      = "tasksRestored"
	msgTasksPurged        = "tasksPurged"
)

func writeError(c *gin.Context, status int, msgKey string) {
	c.JSON(status, apierrors.CreateError(status, msgKey, middleware.GetLang(c)))
}

func writeSuccess(c *gin.Context, status int, msgKey string) {
	c.JSON(status, dto.StatusResponse{
		Status:  statusSuccess,
		Message: translator.Localize(msgKey, middleware.GetLang(c)),
	})
}

func writeCount(c *gin.Context, msgKey string, count int64) {
	c.JSON(http.StatusOK, dto.CountResponse{
		Status:  statusSuccess,
		Message: translator.Localize(msgKey, middleware.GetLang(c)),
		Count:   count,
	})
}

// classify maps a domain error to its HTTP status and message. known is false for anything unexpected.
func classify(err error) (status int, msgKey string, known bool) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden, apierrors.MsgUnauthorized, true
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, apierrors.MsgInvalidID, true
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, apierrors.MsgInvalidPayload, true
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, apierrors.MsgUserNotFound, true
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, apierrors.MsgUserExists, true
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, apierrors.MsgTaskNotFound, true
	case errors.Is(err, domain.ErrBinEntryNotFound):
		return http.StatusNotFound, apierrors.MsgTasksNotFound, true
	case errors.Is(err, domain.ErrInvalidCode):
		return http.StatusForbidden, apierrors.MsgInvalidCode, true
	case errors.Is(err, domain.ErrCodeExpired):
		return http.StatusForbidden, apierrors.MsgCodeExpired, true
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, apierrors.MsgRateLimited, true
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable, apierrors.MsgStoreUnavailable, true
	}
	return http.StatusInternalServerError, apierrors.MsgInternal, false
}

// writeServiceError answers known domain errors with their status and logs everything else as a 500.
func writeServiceError(c *gin.Context, err error, failKey, logMsg string, fields ...zap.Field) {
	status, msgKey, known := classify(err)
	if known {
		writeError(c, status, msgKey)
		return
	}
	zap.L().Error(logMsg, append(fields, zap.Error(err))...)
	writeError(c, http.StatusInternalServerError, failKey)
}

func currentSession(c *gin.Context) (domain.Session, bool) {
	session, ok := middleware.GetSession(c)
	if !ok {
		writeError(c, http.StatusForbidden, apierrors.MsgUnauthorized)
	}
	return session, ok
}
