package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"homesite/internal/models"
)

// ListPosts retrieves all posts, most recent first.
func (s *Store) ListPosts(ctx context.Context) ([]models.Post, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, date, tags, "desc", content FROM posts ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Date, &p.Tags, &p.Desc, &p.Content); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// GetPost fetches a single post by id.
func (s *Store) GetPost(ctx context.Context, id int64) (models.Post, error) {
	var p models.Post
	err := s.db.QueryRowContext(ctx, `SELECT id, title, date, tags, "desc", content FROM posts WHERE id = ?`, id).
		Scan(&p.ID, &p.Title, &p.Date, &p.Tags, &p.Desc, &p.Content)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, fmt.Errorf("post %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Post{}, fmt.Errorf("get post: %w", err)
	}
	return p, nil
}

// CreatePost persists a new post. The title is required, everything else
// defaults to the empty string.
func (s *Store) CreatePost(ctx context.Context, p models.Post) (models.Post, error) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return models.Post{}, fmt.Errorf("post title: %w", ErrValidation)
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO posts(title, date, tags, "desc", content) VALUES(?, ?, ?, ?, ?)`,
		p.Title, p.Date, p.Tags, p.Desc, p.Content)
	if err != nil {
		return models.Post{}, fmt.Errorf("insert post: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Post{}, fmt.Errorf("post id: %w", err)
	}
	return s.GetPost(ctx, id)
}

// UpdatePost replaces every field of an existing post. Omitted fields arrive
// as empty strings and overwrite; callers submit the full form each time.
func (s *Store) UpdatePost(ctx context.Context, p models.Post) (models.Post, error) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return models.Post{}, fmt.Errorf("post title: %w", ErrValidation)
	}

	res, err := s.db.ExecContext(ctx, `UPDATE posts SET title = ?, date = ?, tags = ?, "desc" = ?, content = ? WHERE id = ?`,
		p.Title, p.Date, p.Tags, p.Desc, p.Content, p.ID)
	if err != nil {
		return models.Post{}, fmt.Errorf("update post: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Post{}, err
	}
	if affected == 0 {
		return models.Post{}, fmt.Errorf("post %d: %w", p.ID, ErrNotFound)
	}
	return s.GetPost(ctx, p.ID)
}

// DeletePost removes a post by id.
func (s *Store) DeletePost(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("post %d: %w", id, ErrNotFound)
	}
	return nil
}
