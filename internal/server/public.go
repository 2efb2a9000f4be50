package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"homesite/internal/storage/sqlite"
)

// recentLimit caps how many posts and works the home page shows.
const recentLimit = 3

// statusFor maps store errors onto HTTP statuses for the JSON endpoints.
func statusFor(err error) int {
	switch {
	case errors.Is(err, sqlite.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, sqlite.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// handleHome renders the landing page with the most recent posts and works.
func (s *Server) handleHome(c *gin.Context) {
	posts, err := s.store.ListPosts(c.Request.Context())
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	works, err := s.store.ListWorks(c.Request.Context())
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Posts": firstN(posts, recentLimit),
		"Works": firstN(works, recentLimit),
	})
}

// handleBlog renders the full blog listing.
func (s *Server) handleBlog(c *gin.Context) {
	posts, err := s.store.ListPosts(c.Request.Context())
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "blog.html", gin.H{"Posts": posts})
}

// handlePost renders a single post, 404 when the id is unknown.
func (s *Server) handlePost(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	post, err := s.store.GetPost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, sqlite.ErrNotFound) {
			c.HTML(http.StatusNotFound, "notfound.html", gin.H{})
			return
		}
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "post.html", gin.H{"Post": post})
}

// handleWorks renders the portfolio listing.
func (s *Server) handleWorks(c *gin.Context) {
	works, err := s.store.ListWorks(c.Request.Context())
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "works.html", gin.H{"Works": works})
}

// handleRoadmap renders every roadmap with stages, tasks and computed
// progress percentages.
func (s *Server) handleRoadmap(c *gin.Context) {
	views, err := s.store.RoadmapViews(c.Request.Context())
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "roadmap.html", gin.H{"Roadmaps": views})
}

// handleToggleTask flips a task's done flag and returns the fresh progress
// numbers for its stage and roadmap so the frontend can update both bars
// without a second request.
func (s *Server) handleToggleTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	task, err := s.store.ToggleTask(ctx, id)
	if err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}

	stage, err := s.store.GetStage(ctx, task.StageID)
	if err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}
	stageProgress, err := s.store.StageProgress(ctx, stage.ID)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	roadmapProgress, err := s.store.RoadmapProgress(ctx, stage.RoadmapID)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":           "ok",
		"is_done":          task.IsDone,
		"stage_progress":   stageProgress,
		"roadmap_progress": roadmapProgress,
		"stage_id":         stage.ID,
		"roadmap_id":       stage.RoadmapID,
	})
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
