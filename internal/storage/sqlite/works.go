package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"homesite/internal/models"
)

// ListWorks retrieves all portfolio items, most recent first.
func (s *Store) ListWorks(ctx context.Context) ([]models.Work, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, year, category, "desc", image FROM works ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list works: %w", err)
	}
	defer rows.Close()

	var works []models.Work
	for rows.Next() {
		var w models.Work
		if err := rows.Scan(&w.ID, &w.Title, &w.Year, &w.Category, &w.Desc, &w.Image); err != nil {
			return nil, fmt.Errorf("scan work: %w", err)
		}
		works = append(works, w)
	}
	return works, rows.Err()
}

// GetWork fetches a single portfolio item by id.
func (s *Store) GetWork(ctx context.Context, id int64) (models.Work, error) {
	var w models.Work
	err := s.db.QueryRowContext(ctx, `SELECT id, title, year, category, "desc", image FROM works WHERE id = ?`, id).
		Scan(&w.ID, &w.Title, &w.Year, &w.Category, &w.Desc, &w.Image)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Work{}, fmt.Errorf("work %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Work{}, fmt.Errorf("get work: %w", err)
	}
	return w, nil
}

// CreateWork persists a new portfolio item.
func (s *Store) CreateWork(ctx context.Context, w models.Work) (models.Work, error) {
	w.Title = strings.TrimSpace(w.Title)
	if w.Title == "" {
		return models.Work{}, fmt.Errorf("work title: %w", ErrValidation)
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO works(title, year, category, "desc", image) VALUES(?, ?, ?, ?, ?)`,
		w.Title, w.Year, w.Category, w.Desc, w.Image)
	if err != nil {
		return models.Work{}, fmt.Errorf("insert work: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Work{}, fmt.Errorf("work id: %w", err)
	}
	return s.GetWork(ctx, id)
}

// UpdateWork replaces every field of an existing portfolio item.
func (s *Store) UpdateWork(ctx context.Context, w models.Work) (models.Work, error) {
	w.Title = strings.TrimSpace(w.Title)
	if w.Title == "" {
		return models.Work{}, fmt.Errorf("work title: %w", ErrValidation)
	}

	res, err := s.db.ExecContext(ctx, `UPDATE works SET title = ?, year = ?, category = ?, "desc" = ?, image = ? WHERE id = ?`,
		w.Title, w.Year, w.Category, w.Desc, w.Image, w.ID)
	if err != nil {
		return models.Work{}, fmt.Errorf("update work: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Work{}, err
	}
	if affected == 0 {
		return models.Work{}, fmt.Errorf("work %d: %w", w.ID, ErrNotFound)
	}
	return s.GetWork(ctx, w.ID)
}

// DeleteWork removes a portfolio item by id.
func (s *Store) DeleteWork(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM works WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete work: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("work %d: %w", id, ErrNotFound)
	}
	return nil
}
