package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"homesite/internal/models"
)

// ListStages returns the stages of a roadmap sorted by their order value,
// falling back to id so ties keep insertion order.
func (s *Store) ListStages(ctx context.Context, roadmapID int64) ([]models.Stage, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, roadmap_id, title, description, ord
        FROM stages WHERE roadmap_id = ? ORDER BY ord ASC, id ASC`, roadmapID)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	defer rows.Close()

	var stages []models.Stage
	for rows.Next() {
		var st models.Stage
		if err := rows.Scan(&st.ID, &st.RoadmapID, &st.Title, &st.Description, &st.Ord); err != nil {
			return nil, fmt.Errorf("scan stage: %w", err)
		}
		stages = append(stages, st)
	}
	return stages, rows.Err()
}

// GetStage fetches a single stage by id.
func (s *Store) GetStage(ctx context.Context, id int64) (models.Stage, error) {
	var st models.Stage
	err := s.db.QueryRowContext(ctx, `SELECT id, roadmap_id, title, description, ord FROM stages WHERE id = ?`, id).
		Scan(&st.ID, &st.RoadmapID, &st.Title, &st.Description, &st.Ord)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Stage{}, fmt.Errorf("stage %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Stage{}, fmt.Errorf("get stage: %w", err)
	}
	return st, nil
}

// CreateStage persists a new stage under its roadmap. The parent must exist.
func (s *Store) CreateStage(ctx context.Context, st models.Stage) (models.Stage, error) {
	st.Title = strings.TrimSpace(st.Title)
	if st.Title == "" {
		return models.Stage{}, fmt.Errorf("stage title: %w", ErrValidation)
	}
	if _, err := s.GetRoadmap(ctx, st.RoadmapID); err != nil {
		return models.Stage{}, err
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO stages(roadmap_id, title, description, ord) VALUES(?, ?, ?, ?)`,
		st.RoadmapID, st.Title, st.Description, st.Ord)
	if err != nil {
		return models.Stage{}, fmt.Errorf("insert stage: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Stage{}, fmt.Errorf("stage id: %w", err)
	}
	return s.GetStage(ctx, id)
}

// UpdateStage replaces the editable fields of an existing stage. The owning
// roadmap and order value are not changed here; reordering has its own path.
func (s *Store) UpdateStage(ctx context.Context, st models.Stage) (models.Stage, error) {
	st.Title = strings.TrimSpace(st.Title)
	if st.Title == "" {
		return models.Stage{}, fmt.Errorf("stage title: %w", ErrValidation)
	}

	res, err := s.db.ExecContext(ctx, `UPDATE stages SET title = ?, description = ? WHERE id = ?`,
		st.Title, st.Description, st.ID)
	if err != nil {
		return models.Stage{}, fmt.Errorf("update stage: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Stage{}, err
	}
	if affected == 0 {
		return models.Stage{}, fmt.Errorf("stage %d: %w", st.ID, ErrNotFound)
	}
	return s.GetStage(ctx, st.ID)
}

// DeleteStage removes a stage and, via the cascade, its tasks.
func (s *Store) DeleteStage(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM stages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete stage: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("stage %d: %w", id, ErrNotFound)
	}
	return nil
}

// ReorderStages assigns 1-based order values to the given stage ids in the
// sequence submitted. Ids that do not belong to the roadmap are skipped; ids
// left out of the sequence keep their previous order. The whole pass runs in
// one transaction so a failure leaves the previous ordering intact.
func (s *Store) ReorderStages(ctx context.Context, roadmapID int64, ids []int64) error {
	return s.reorder(ctx, `UPDATE stages SET ord = ? WHERE id = ? AND roadmap_id = ?`, roadmapID, ids)
}

func (s *Store) reorder(ctx context.Context, query string, parentID int64, ids []int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reorder: %w", err)
	}
	defer tx.Rollback()

	for idx, id := range ids {
		if _, err := tx.ExecContext(ctx, query, idx+1, id, parentID); err != nil {
			return fmt.Errorf("reorder id %d: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reorder: %w", err)
	}
	return nil
}
