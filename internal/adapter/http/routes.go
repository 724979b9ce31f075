package http

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/handlers"
	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/middleware"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/ports"
)

type Handlers struct {
	Health *handlers.HealthHandler
	Pages  *handlers.PageHandler
	Auth   *handlers.AuthHandler
	Users  *handlers.UserHandler
	Tasks  *handlers.TaskHandler
	Bin    *handlers.BinHandler
	Import *handlers.ImportHandler
}

type RouteOptions struct {
	AuthService ports.AuthService
	// StoreReady gates every data endpoint; nil means always ready.
	StoreReady func() bool
	StaticDir  string
	// Metrics is mounted on /metrics when set.
	Metrics http.Handler
}

func RegisterRoutes(r *gin.Engine, h Handlers, opts RouteOptions) {
	r.Use(middleware.LanguageMiddleware(), middleware.SessionMiddleware(opts.AuthService))

	if opts.StaticDir != "" {
		r.Static("/assets", filepath.Join(opts.StaticDir, "assets"))
		r.Static("/css", filepath.Join(opts.StaticDir, "css"))
		r.Static("/media", filepath.Join(opts.StaticDir, "media"))
		r.StaticFile("/vite.svg", filepath.Join(opts.StaticDir, "vite.svg"))
	}

	r.GET("/robots.txt", h.Pages.Robots)
	r.GET("/health", h.Health.CheckHealth)
	r.GET("/health/report", h.Health.CheckHealthReport)
	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics))
	}

	r.GET("/", h.Pages.Root)
	r.GET("/home", middleware.RequirePageSession(), h.Pages.Index)
	r.GET("/tasks", middleware.RequirePageSession(), h.Pages.Index)
	r.GET("/login", middleware.RedirectIfAuthenticated(), h.Pages.Index)
	r.GET("/register", middleware.RedirectIfAuthenticated(), h.Pages.Index)

	r.GET("/logout", h.Auth.Logout)
	r.GET("/session", h.Auth.Session)

	store := middleware.RequireStore(opts.StoreReady)
	public := r.Group("", store)
	{
		public.POST("/sendOTP", h.Auth.SendOTP)
		public.POST("/verifyOTP", h.Auth.VerifyOTP)
		public.POST("/registerUser", h.Users.RegisterUser)
	}

	api := r.Group("", store, middleware.RequireSession())
	{
		api.POST("/updateDisplayName", h.Users.UpdateDisplayName)
		api.POST("/submit", h.Tasks.CreateTask)
		api.GET("/entries", h.Tasks.ListTasks)
		api.POST("/editTask", h.Tasks.EditTask)
		api.POST("/complete", h.Tasks.SetCompletion)
		api.POST("/deleteTask", h.Bin.DeleteTasks)
		api.GET("/recycleBin", h.Bin.ListBin)
		api.POST("/restoreTask", h.Bin.RestoreTasks)
		api.POST("/deletePermanently", h.Bin.PurgeTasks)
		api.POST("/calendar/preview", h.Import.PreviewCalendar)
		api.POST("/importTasks", h.Import.ImportTasks)
	}

	r.NoRoute(h.Pages.NotFound)
}
