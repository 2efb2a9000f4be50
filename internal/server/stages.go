package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"homesite/internal/models"
	"homesite/internal/storage/sqlite"
)

// reorderRequest is the JSON body of the drag-and-drop reorder endpoints:
// sibling ids in their new display sequence.
type reorderRequest struct {
	Order []int64 `json:"order"`
}

func formStage(c *gin.Context) models.Stage {
	return models.Stage{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
}

// handleAdminStages lists the stages of one roadmap.
func (s *Server) handleAdminStages(c *gin.Context) {
	roadmapID, ok := parseID(c, "id")
	if !ok {
		return
	}
	roadmap, err := s.store.GetRoadmap(c.Request.Context(), roadmapID)
	if err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}
	stages, err := s.store.ListStages(c.Request.Context(), roadmapID)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "admin_stages.html", gin.H{
		"Roadmap": roadmap,
		"Stages":  stages,
		"Flashes": s.takeFlashes(c),
	})
}

func (s *Server) handleStageForm(c *gin.Context) {
	roadmapID, ok := parseID(c, "id")
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "admin_stage_form.html", gin.H{
		"Stage": models.Stage{RoadmapID: roadmapID},
	})
}

func (s *Server) handleStageCreate(c *gin.Context) {
	roadmapID, ok := parseID(c, "id")
	if !ok {
		return
	}
	stage := formStage(c)
	stage.RoadmapID = roadmapID

	created, err := s.store.CreateStage(c.Request.Context(), stage)
	if err != nil {
		if errors.Is(err, sqlite.ErrValidation) {
			s.flash(c, "Title is required")
			c.Redirect(http.StatusSeeOther, fmt.Sprintf("/admin/roadmaps/%d/stages", roadmapID))
			return
		}
		s.respondError(c, statusFor(err), err)
		return
	}
	s.logger.Info("stage created", "id", created.ID, "roadmap_id", roadmapID)
	s.flash(c, "Stage created")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/admin/roadmaps/%d/stages", roadmapID))
}

func (s *Server) handleStageEditForm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	stage, err := s.store.GetStage(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}
	c.HTML(http.StatusOK, "admin_stage_form.html", gin.H{"Stage": stage})
}

func (s *Server) handleStageUpdate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	current, err := s.store.GetStage(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}

	stage := formStage(c)
	stage.ID = id
	if _, err := s.store.UpdateStage(c.Request.Context(), stage); err != nil {
		if errors.Is(err, sqlite.ErrValidation) {
			s.flash(c, "Title is required")
			c.Redirect(http.StatusSeeOther, fmt.Sprintf("/admin/roadmaps/%d/stages", current.RoadmapID))
			return
		}
		s.respondError(c, statusFor(err), err)
		return
	}
	s.flash(c, "Stage updated")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/admin/roadmaps/%d/stages", current.RoadmapID))
}

// handleStageDelete removes a stage and its tasks.
func (s *Server) handleStageDelete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	stage, err := s.store.GetStage(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}
	if err := s.store.DeleteStage(c.Request.Context(), id); err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}
	s.flash(c, "Stage deleted")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/admin/roadmaps/%d/stages", stage.RoadmapID))
}

// handleStageReorder persists a new stage sequence for one roadmap.
func (s *Server) handleStageReorder(c *gin.Context) {
	roadmapID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := s.store.ReorderStages(c.Request.Context(), roadmapID, req.Order); err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
