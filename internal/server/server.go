package server

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"homesite/internal/config"
	"homesite/internal/storage/sqlite"
)

// Server provides the HTTP surface of the site: public pages, the admin
// area, and the JSON endpoints used by the roadmap frontend.
type Server struct {
	engine *gin.Engine
	store  *sqlite.Store
	cfg    config.Config
	logger *slog.Logger
}

// New constructs the HTTP server with sessions, templates and routes wired.
func New(store *sqlite.Store, cfg config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   86400 * 7,
	})
	router.Use(sessions.Sessions("site_session", sessionStore))

	srv := &Server{
		engine: router,
		store:  store,
		cfg:    cfg,
		logger: logger,
	}

	srv.loadTemplates()
	srv.registerRoutes()
	srv.mountStatic()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// loadTemplates points gin at the HTML views when the directory exists.
func (s *Server) loadTemplates() {
	if s.cfg.TemplatesDir == "" {
		s.logger.Warn("templates directory not configured; HTML routes disabled")
		return
	}
	info, err := os.Stat(s.cfg.TemplatesDir)
	if err != nil || !info.IsDir() {
		s.logger.Warn("templates directory missing", "path", s.cfg.TemplatesDir, "error", err)
		return
	}
	s.engine.LoadHTMLGlob(filepath.Join(s.cfg.TemplatesDir, "*.html"))
}

// registerRoutes wires the public pages, the JSON endpoints and the admin
// area together.
func (s *Server) registerRoutes() {
	s.engine.GET("/", s.handleHome)
	s.engine.GET("/blog", s.handleBlog)
	s.engine.GET("/post/:id", s.handlePost)
	s.engine.GET("/works", s.handleWorks)
	s.engine.GET("/roadmap", s.handleRoadmap)

	toggle := s.engine.Group("/roadmap")
	if s.cfg.ToggleRequiresAuth {
		toggle.Use(s.requireAdmin())
	}
	toggle.POST("/task/:id/toggle", s.handleToggleTask)

	s.engine.GET("/admin/login", s.handleLoginForm)
	s.engine.POST("/admin/login", s.handleLogin)
	s.engine.GET("/admin/logout", s.handleLogout)

	admin := s.engine.Group("/admin", s.requireAdmin())
	{
		admin.GET("", s.handleDashboard)

		admin.GET("/posts", s.handleAdminPosts)
		admin.GET("/posts/new", s.handlePostForm)
		admin.POST("/posts/new", s.handlePostCreate)
		admin.GET("/posts/:id/edit", s.handlePostEditForm)
		admin.POST("/posts/:id/edit", s.handlePostUpdate)
		admin.POST("/posts/:id/delete", s.handlePostDelete)

		admin.GET("/works", s.handleAdminWorks)
		admin.GET("/works/new", s.handleWorkForm)
		admin.POST("/works/new", s.handleWorkCreate)
		admin.GET("/works/:id/edit", s.handleWorkEditForm)
		admin.POST("/works/:id/edit", s.handleWorkUpdate)
		admin.POST("/works/:id/delete", s.handleWorkDelete)

		admin.GET("/roadmaps", s.handleAdminRoadmaps)
		admin.GET("/roadmaps/new", s.handleRoadmapForm)
		admin.POST("/roadmaps/new", s.handleRoadmapCreate)
		admin.GET("/roadmaps/:id/edit", s.handleRoadmapEditForm)
		admin.POST("/roadmaps/:id/edit", s.handleRoadmapUpdate)
		admin.POST("/roadmaps/:id/delete", s.handleRoadmapDelete)

		admin.GET("/roadmaps/:id/stages", s.handleAdminStages)
		admin.GET("/roadmaps/:id/stages/new", s.handleStageForm)
		admin.POST("/roadmaps/:id/stages/new", s.handleStageCreate)
		admin.POST("/roadmaps/:id/stages/reorder", s.handleStageReorder)
		admin.GET("/stages/:id/edit", s.handleStageEditForm)
		admin.POST("/stages/:id/edit", s.handleStageUpdate)
		admin.POST("/stages/:id/delete", s.handleStageDelete)

		admin.GET("/stages/:id/tasks", s.handleAdminTasks)
		admin.GET("/stages/:id/tasks/new", s.handleTaskForm)
		admin.POST("/stages/:id/tasks/new", s.handleTaskCreate)
		admin.POST("/stages/:id/tasks/reorder", s.handleTaskReorder)
		admin.GET("/tasks/:id/edit", s.handleTaskEditForm)
		admin.POST("/tasks/:id/edit", s.handleTaskUpdate)
		admin.POST("/tasks/:id/delete", s.handleTaskDelete)
	}
}

// parseID converts a path parameter to int64 with error handling.
func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid identifier"})
		return 0, false
	}
	return id, true
}

// respondError logs the error and returns a JSON payload with the right
// status for the store's sentinel errors.
func (s *Server) respondError(c *gin.Context, status int, err error) {
	if err != nil {
		s.logger.Error("request failed", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// mountStatic serves site assets from the configured directory when present.
func (s *Server) mountStatic() {
	if s.cfg.StaticDir == "" {
		return
	}
	info, err := os.Stat(s.cfg.StaticDir)
	if err != nil || !info.IsDir() {
		s.logger.Warn("static directory missing", "path", s.cfg.StaticDir, "error", err)
		return
	}
	s.engine.StaticFS("/static", gin.Dir(s.cfg.StaticDir, false))

	favicon := filepath.Join(s.cfg.StaticDir, "favicon.ico")
	if _, err := os.Stat(favicon); err == nil {
		s.engine.StaticFile("/favicon.ico", favicon)
	}
}
