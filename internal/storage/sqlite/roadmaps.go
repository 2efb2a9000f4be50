package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"homesite/internal/models"
)

// ListRoadmaps retrieves all roadmaps in creation order.
func (s *Store) ListRoadmaps(ctx context.Context) ([]models.Roadmap, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, description FROM roadmaps ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list roadmaps: %w", err)
	}
	defer rows.Close()

	var roadmaps []models.Roadmap
	for rows.Next() {
		var r models.Roadmap
		if err := rows.Scan(&r.ID, &r.Title, &r.Description); err != nil {
			return nil, fmt.Errorf("scan roadmap: %w", err)
		}
		roadmaps = append(roadmaps, r)
	}
	return roadmaps, rows.Err()
}

// GetRoadmap fetches a single roadmap by id.
func (s *Store) GetRoadmap(ctx context.Context, id int64) (models.Roadmap, error) {
	var r models.Roadmap
	err := s.db.QueryRowContext(ctx, `SELECT id, title, description FROM roadmaps WHERE id = ?`, id).
		Scan(&r.ID, &r.Title, &r.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Roadmap{}, fmt.Errorf("roadmap %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Roadmap{}, fmt.Errorf("get roadmap: %w", err)
	}
	return r, nil
}

// CreateRoadmap persists a new roadmap.
func (s *Store) CreateRoadmap(ctx context.Context, r models.Roadmap) (models.Roadmap, error) {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return models.Roadmap{}, fmt.Errorf("roadmap title: %w", ErrValidation)
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO roadmaps(title, description) VALUES(?, ?)`, r.Title, r.Description)
	if err != nil {
		return models.Roadmap{}, fmt.Errorf("insert roadmap: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Roadmap{}, fmt.Errorf("roadmap id: %w", err)
	}
	return s.GetRoadmap(ctx, id)
}

// UpdateRoadmap replaces every field of an existing roadmap.
func (s *Store) UpdateRoadmap(ctx context.Context, r models.Roadmap) (models.Roadmap, error) {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return models.Roadmap{}, fmt.Errorf("roadmap title: %w", ErrValidation)
	}

	res, err := s.db.ExecContext(ctx, `UPDATE roadmaps SET title = ?, description = ? WHERE id = ?`,
		r.Title, r.Description, r.ID)
	if err != nil {
		return models.Roadmap{}, fmt.Errorf("update roadmap: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Roadmap{}, err
	}
	if affected == 0 {
		return models.Roadmap{}, fmt.Errorf("roadmap %d: %w", r.ID, ErrNotFound)
	}
	return s.GetRoadmap(ctx, r.ID)
}

// DeleteRoadmap removes a roadmap. Its stages and their tasks go with it
// through the cascading foreign keys, all within one statement.
func (s *Store) DeleteRoadmap(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM roadmaps WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete roadmap: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("roadmap %d: %w", id, ErrNotFound)
	}
	return nil
}

// Counts returns per-entity row totals for the admin dashboard.
func (s *Store) Counts(ctx context.Context) (models.Counts, error) {
	var c models.Counts
	row := s.db.QueryRowContext(ctx, `SELECT
        (SELECT COUNT(*) FROM posts),
        (SELECT COUNT(*) FROM works),
        (SELECT COUNT(*) FROM roadmaps),
        (SELECT COUNT(*) FROM stages),
        (SELECT COUNT(*) FROM tasks)`)
	if err := row.Scan(&c.Posts, &c.Works, &c.Roadmaps, &c.Stages, &c.Tasks); err != nil {
		return models.Counts{}, fmt.Errorf("count entities: %w", err)
	}
	return c, nil
}
