package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/dto"
	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/middleware"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/ports"
	"github.com/n-smith-public/cs4241e25-final-project/pkg/apierrors"
)

type AuthHandler struct {
	authService  ports.AuthService
	cookieSecure bool
	now          func() time.Time
}

func NewAuthHandler(authService ports.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{authService: authService, cookieSecure: cookieSecure, now: time.Now}
}

func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req dto.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		writeError(c, http.StatusBadRequest, apierrors.MsgMissingEmail)
		return
	}

	if err := h.authService.IssueChallenge(c.Request.Context(), req.Email); err != nil {
		writeServiceError(c, err, apierrors.MsgFailSendOTP, "failed to send otp")
		return
	}

	writeSuccess(c, http.StatusOK, msgOTPSent)
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Code) == "" || strings.TrimSpace(req.Email) == "" {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
		return
	}

	session, token, err := h.authService.VerifyChallenge(c.Request.Context(), strings.TrimSpace(req.Code), req.Email)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgInternal, "failed to verify otp")
		return
	}

	middleware.SetSessionCookies(c, session, token, h.now(), h.cookieSecure)
	writeSuccess(c, http.StatusOK, msgOTPVerified)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.CookieAuth); err == nil {
		if err := h.authService.Terminate(c.Request.Context(), token); err != nil {
			zap.L().Warn("failed to terminate session", zap.Error(err))
		}
	}
	middleware.ClearSessionCookies(c, h.cookieSecure)
	c.Redirect(http.StatusFound, "/login")
}

// Session reports the caller's session for the page's periodic check.
func (h *AuthHandler) Session(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusOK, dto.SessionResponse{Authenticated: false})
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{
		Authenticated: true,
		Email:         session.Email,
		DisplayName:   session.DisplayName,
		ExpiresAt:     session.ExpiresAt.UTC().Format(time.RFC3339),
	})
}
