package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/middleware"
	"github.com/n-smith-public/cs4241e25-final-project/pkg/apierrors"
	"github.com/n-smith-public/cs4241e25-final-project/pkg/translator"
)

const defaultRobots = "User-agent: *\nAllow: /\n"

// PageHandler serves the single page app shell and the small public files around it.
type PageHandler struct {
	staticDir string
}

func NewPageHandler(staticDir string) *PageHandler {
	return &PageHandler{staticDir: staticDir}
}

func (h *PageHandler) Index(c *gin.Context) {
	index := filepath.Join(h.staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		h.NotFound(c)
		return
	}
	c.File(index)
}

func (h *PageHandler) Root(c *gin.Context) {
	if _, ok := middleware.GetSession(c); ok {
		c.Redirect(http.StatusFound, "/home")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

func (h *PageHandler) Robots(c *gin.Context) {
	robots := filepath.Join(h.staticDir, "robots.txt")
	if _, err := os.Stat(robots); err == nil {
		c.File(robots)
		return
	}
	c.String(http.StatusOK, defaultRobots)
}

func (h *PageHandler) NotFound(c *gin.Context) {
	c.String(http.StatusNotFound, translator.Localize(apierrors.MsgPageNotFound, middleware.GetLang(c)))
}
