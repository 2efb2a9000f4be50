package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"homesite/internal/models"
	"homesite/internal/storage/sqlite"
)

// formPost builds a Post from the submitted form. Forms always send every
// field; an omitted field becomes an empty string and overwrites on update.
func formPost(c *gin.Context) models.Post {
	return models.Post{
		Title:   c.PostForm("title"),
		Date:    c.PostForm("date"),
		Tags:    c.PostForm("tags"),
		Desc:    c.PostForm("desc"),
		Content: c.PostForm("content"),
	}
}

// handleAdminPosts lists posts for the admin area.
func (s *Server) handleAdminPosts(c *gin.Context) {
	posts, err := s.store.ListPosts(c.Request.Context())
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "admin_posts.html", gin.H{
		"Posts":   posts,
		"Flashes": s.takeFlashes(c),
	})
}

// handlePostForm renders an empty post form.
func (s *Server) handlePostForm(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_post_form.html", gin.H{"Post": models.Post{}})
}

// handlePostCreate persists a new post from the form.
func (s *Server) handlePostCreate(c *gin.Context) {
	post, err := s.store.CreatePost(c.Request.Context(), formPost(c))
	if err != nil {
		if errors.Is(err, sqlite.ErrValidation) {
			s.flash(c, "Title is required")
			c.Redirect(http.StatusSeeOther, "/admin/posts")
			return
		}
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	s.logger.Info("post created", "id", post.ID)
	s.flash(c, "Post created")
	c.Redirect(http.StatusSeeOther, "/admin/posts")
}

// handlePostEditForm renders the form prefilled with an existing post.
func (s *Server) handlePostEditForm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	post, err := s.store.GetPost(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}
	c.HTML(http.StatusOK, "admin_post_form.html", gin.H{"Post": post})
}

// handlePostUpdate replaces all fields of a post with the submitted form.
func (s *Server) handlePostUpdate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	post := formPost(c)
	post.ID = id
	if _, err := s.store.UpdatePost(c.Request.Context(), post); err != nil {
		if errors.Is(err, sqlite.ErrValidation) {
			s.flash(c, "Title is required")
			c.Redirect(http.StatusSeeOther, "/admin/posts")
			return
		}
		s.respondError(c, statusFor(err), err)
		return
	}
	s.flash(c, "Post updated")
	c.Redirect(http.StatusSeeOther, "/admin/posts")
}

// handlePostDelete removes a post. Reached only through a POST form.
func (s *Server) handlePostDelete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeletePost(c.Request.Context(), id); err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}
	s.flash(c, "Post deleted")
	c.Redirect(http.StatusSeeOther, "/admin/posts")
}
