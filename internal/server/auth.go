package server

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionAdminKey = "admin"

// requireAdmin redirects to the login page when the session does not carry
// the admin flag. There are no roles beyond admin vs anonymous.
func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if flag, ok := session.Get(sessionAdminKey).(bool); !ok || !flag {
			c.Redirect(http.StatusSeeOther, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// handleLoginForm renders the login prompt.
func (s *Server) handleLoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// handleLogin checks the submitted credentials against the configured pair
// and sets the session flag on match. Comparison is constant-time; there is
// no lockout or rate limit on repeated attempts.
func (s *Server) handleLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1
	if !userOK || !passOK {
		s.logger.Warn("failed admin login", "username", username)
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Error": "invalid username or password"})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionAdminKey, true)
	if err := session.Save(); err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}

	s.logger.Info("admin logged in")
	c.Redirect(http.StatusSeeOther, "/admin")
}

// handleLogout clears the admin flag and returns to the public site.
func (s *Server) handleLogout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(sessionAdminKey)
	if err := session.Save(); err != nil {
		s.logger.Error("failed to clear session", "error", err.Error())
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// flash queues a transient notice shown on the next rendered admin page.
func (s *Server) flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	if err := session.Save(); err != nil {
		s.logger.Error("failed to save flash", "error", err.Error())
	}
}

// takeFlashes drains queued notices for rendering.
func (s *Server) takeFlashes(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(); err != nil {
		s.logger.Error("failed to clear flashes", "error", err.Error())
	}
	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}
