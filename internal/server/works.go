package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"homesite/internal/models"
	"homesite/internal/storage/sqlite"
)

func formWork(c *gin.Context) models.Work {
	return models.Work{
		Title:    c.PostForm("title"),
		Year:     c.PostForm("year"),
		Category: c.PostForm("category"),
		Desc:     c.PostForm("desc"),
		Image:    c.PostForm("image"),
	}
}

// handleAdminWorks lists portfolio items for the admin area.
func (s *Server) handleAdminWorks(c *gin.Context) {
	works, err := s.store.ListWorks(c.Request.Context())
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "admin_works.html", gin.H{
		"Works":   works,
		"Flashes": s.takeFlashes(c),
	})
}

func (s *Server) handleWorkForm(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_work_form.html", gin.H{"Work": models.Work{}})
}

func (s *Server) handleWorkCreate(c *gin.Context) {
	work, err := s.store.CreateWork(c.Request.Context(), formWork(c))
	if err != nil {
		if errors.Is(err, sqlite.ErrValidation) {
			s.flash(c, "Title is required")
			c.Redirect(http.StatusSeeOther, "/admin/works")
			return
		}
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	s.logger.Info("work created", "id", work.ID)
	s.flash(c, "Work created")
	c.Redirect(http.StatusSeeOther, "/admin/works")
}

func (s *Server) handleWorkEditForm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	work, err := s.store.GetWork(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}
	c.HTML(http.StatusOK, "admin_work_form.html", gin.H{"Work": work})
}

func (s *Server) handleWorkUpdate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	work := formWork(c)
	work.ID = id
	if _, err := s.store.UpdateWork(c.Request.Context(), work); err != nil {
		if errors.Is(err, sqlite.ErrValidation) {
			s.flash(c, "Title is required")
			c.Redirect(http.StatusSeeOther, "/admin/works")
			return
		}
		s.respondError(c, statusFor(err), err)
		return
	}
	s.flash(c, "Work updated")
	c.Redirect(http.StatusSeeOther, "/admin/works")
}

func (s *Server) handleWorkDelete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeleteWork(c.Request.Context(), id); err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}
	s.flash(c, "Work deleted")
	c.Redirect(http.StatusSeeOther, "/admin/works")
}
