package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/middleware"
)

const (
	StatusOk             = "ok"
	StatusDown           = "down"
	healthCheckTimeout   = 2 * time.Second
	healthTimeLayout     = "2006-01-02 15:04:05"
	defaultHealthAppName = "magnolia"
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthAdvanced struct {
	AppName           string            `json:"app_name"`
	AppVersion        string            `json:"app_version"`
	CurrentSystemTime string            `json:"current_system_time"`
	Language          string            `json:"language"`
	Status            map[string]string `json:"status"`
}

// Pinger reports whether a backing service answers.
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	checks map[string]Pinger
}

// NewHealthHandler takes one ping per backing service, keyed by the name shown in the report.
func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{checks: checks}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk

	for _, status := range h.runChecks(c.Request.Context()) {
		if status != StatusOk {
			statusCode = http.StatusInternalServerError
			message = StatusDown
			break
		}
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           getAppName(),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format(healthTimeLayout),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           getAppName(),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format(healthTimeLayout),
		Language:          middleware.GetLang(c),
		Status:            h.runChecks(c.Request.Context()),
	})
}

func (h *HealthHandler) runChecks(ctx context.Context) map[string]string {
	statuses := make(map[string]string, len(h.checks))
	for name, ping := range h.checks {
		timeoutCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		err := ping(timeoutCtx)
		cancel()

		statuses[name] = StatusOk
		if err != nil {
			statuses[name] = StatusDown
		}
	}
	return statuses
}

func getAppName() string {
	name := os.Getenv("APP_NAME")
	if name == "" {
		return defaultHealthAppName
	}
	return name
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
