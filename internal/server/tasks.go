package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"homesite/internal/models"
	"homesite/internal/storage/sqlite"
)

func formTask(c *gin.Context) models.Task {
	return models.Task{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		IsDone:      c.PostForm("is_done") != "",
	}
}

// handleAdminTasks lists the tasks of one stage.
func (s *Server) handleAdminTasks(c *gin.Context) {
	stageID, ok := parseID(c, "id")
	if !ok {
		return
	}
	stage, err := s.store.GetStage(c.Request.Context(), stageID)
	if err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}
	tasks, err := s.store.ListTasks(c.Request.Context(), stageID)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "admin_tasks.html", gin.H{
		"Stage":   stage,
		"Tasks":   tasks,
		"Flashes": s.takeFlashes(c),
	})
}

func (s *Server) handleTaskForm(c *gin.Context) {
	stageID, ok := parseID(c, "id")
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "admin_task_form.html", gin.H{
		"Task": models.Task{StageID: stageID},
	})
}

func (s *Server) handleTaskCreate(c *gin.Context) {
	stageID, ok := parseID(c, "id")
	if !ok {
		return
	}
	task := formTask(c)
	task.StageID = stageID

	created, err := s.store.CreateTask(c.Request.Context(), task)
	if err != nil {
		if errors.Is(err, sqlite.ErrValidation) {
			s.flash(c, "Title is required")
			c.Redirect(http.StatusSeeOther, fmt.Sprintf("/admin/stages/%d/tasks", stageID))
			return
		}
		s.respondError(c, statusFor(err), err)
		return
	}
	s.logger.Info("task created", "id", created.ID, "stage_id", stageID)
	s.flash(c, "Task created")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/admin/stages/%d/tasks", stageID))
}

func (s *Server) handleTaskEditForm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	task, err := s.store.GetTask(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}
	c.HTML(http.StatusOK, "admin_task_form.html", gin.H{"Task": task})
}

func (s *Server) handleTaskUpdate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	current, err := s.store.GetTask(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}

	task := formTask(c)
	task.ID = id
	if _, err := s.store.UpdateTask(c.Request.Context(), task); err != nil {
		if errors.Is(err, sqlite.ErrValidation) {
			s.flash(c, "Title is required")
			c.Redirect(http.StatusSeeOther, fmt.Sprintf("/admin/stages/%d/tasks", current.StageID))
			return
		}
		s.respondError(c, statusFor(err), err)
		return
	}
	s.flash(c, "Task updated")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/admin/stages/%d/tasks", current.StageID))
}

func (s *Server) handleTaskDelete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	task, err := s.store.GetTask(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}
	if err := s.store.DeleteTask(c.Request.Context(), id); err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}
	s.flash(c, "Task deleted")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/admin/stages/%d/tasks", task.StageID))
}

// handleTaskReorder persists a new task sequence for one stage.
func (s *Server) handleTaskReorder(c *gin.Context) {
	stageID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := s.store.ReorderTasks(c.Request.Context(), stageID, req.Order); err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
