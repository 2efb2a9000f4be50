package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"homesite/internal/models"
	"homesite/internal/storage/sqlite"
)

func formRoadmap(c *gin.Context) models.Roadmap {
	return models.Roadmap{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
}

// handleAdminRoadmaps lists roadmaps for the admin area.
func (s *Server) handleAdminRoadmaps(c *gin.Context) {
	roadmaps, err := s.store.ListRoadmaps(c.Request.Context())
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "admin_roadmaps.html", gin.H{
		"Roadmaps": roadmaps,
		"Flashes":  s.takeFlashes(c),
	})
}

func (s *Server) handleRoadmapForm(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_roadmap_form.html", gin.H{"Roadmap": models.Roadmap{}})
}

func (s *Server) handleRoadmapCreate(c *gin.Context) {
	roadmap, err := s.store.CreateRoadmap(c.Request.Context(), formRoadmap(c))
	if err != nil {
		if errors.Is(err, sqlite.ErrValidation) {
			s.flash(c, "Title is required")
			c.Redirect(http.StatusSeeOther, "/admin/roadmaps")
			return
		}
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	s.logger.Info("roadmap created", "id", roadmap.ID)
	s.flash(c, "Roadmap created")
	c.Redirect(http.StatusSeeOther, "/admin/roadmaps")
}

func (s *Server) handleRoadmapEditForm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	roadmap, err := s.store.GetRoadmap(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}
	c.HTML(http.StatusOK, "admin_roadmap_form.html", gin.H{"Roadmap": roadmap})
}

func (s *Server) handleRoadmapUpdate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	roadmap := formRoadmap(c)
	roadmap.ID = id
	if _, err := s.store.UpdateRoadmap(c.Request.Context(), roadmap); err != nil {
		if errors.Is(err, sqlite.ErrValidation) {
			s.flash(c, "Title is required")
			c.Redirect(http.StatusSeeOther, "/admin/roadmaps")
			return
		}
		s.respondError(c, statusFor(err), err)
		return
	}
	s.flash(c, "Roadmap updated")
	c.Redirect(http.StatusSeeOther, "/admin/roadmaps")
}

// handleRoadmapDelete removes a roadmap and, through the cascade, every
// stage and task beneath it.
func (s *Server) handleRoadmapDelete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeleteRoadmap(c.Request.Context(), id); err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}
	s.flash(c, "Roadmap deleted")
	c.Redirect(http.StatusSeeOther, "/admin/roadmaps")
}
