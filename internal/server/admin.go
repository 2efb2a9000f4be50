package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleDashboard shows entity totals as the admin landing page.
func (s *Server) handleDashboard(c *gin.Context) {
	counts, err := s.store.Counts(c.Request.Context())
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"Counts":  counts,
		"Flashes": s.takeFlashes(c),
	})
}
