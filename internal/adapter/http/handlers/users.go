package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/dto"
	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/middleware"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/ports"
	"github.com/n-smith-public/cs4241e25-final-project/pkg/apierrors"
)

type UserHandler struct {
	userService  ports.UserService
	cookieSecure bool
	now          func() time.Time
}

func NewUserHandler(userService ports.UserService, cookieSecure bool) *UserHandler {
	return &UserHandler{userService: userService, cookieSecure: cookieSecure, now: time.Now}
}

func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		strings.TrimSpace(req.DisplayName) == "" ||
		strings.TrimSpace(req.Email) == "" {
		writeError(c, http.StatusBadRequest, apierrors.MsgMissingRegistration)
		return
	}

	err := h.userService.Register(c.Request.Context(), req.DisplayName, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(c, http.StatusBadRequest, apierrors.MsgMissingRegistration)
			return
		}
		writeServiceError(c, err, apierrors.MsgFailSendOTP, "failed to register user", zap.String("email", req.Email))
		return
	}

	writeSuccess(c, http.StatusOK, msgOTPSent)
}

func (h *UserHandler) UpdateDisplayName(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var req dto.DisplayNameRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.DisplayName) == "" {
		writeError(c, http.StatusBadRequest, apierrors.MsgMissingDisplayName)
		return
	}

	updated, err := h.userService.UpdateDisplayName(c.Request.Context(), session, req.DisplayName)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(c, http.StatusBadRequest, apierrors.MsgMissingDisplayName)
			return
		}
		writeServiceError(c, err, apierrors.MsgFailUpdateDisplayName, "failed to update display name", zap.String("email", session.Email))
		return
	}

	middleware.SetSessionCookies(c, updated, middleware.GetSessionToken(c), h.now(), h.cookieSecure)
	writeSuccess(c, http.StatusOK, msgDisplayNameUpdated)
}
