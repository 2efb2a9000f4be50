package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"homesite/internal/models"
)

// ListTasks returns the tasks of a stage sorted by their order value, ties
// broken by id.
func (s *Store) ListTasks(ctx context.Context, stageID int64) ([]models.Task, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, stage_id, title, description, is_done, ord
        FROM tasks WHERE stage_id = ? ORDER BY ord ASC, id ASC`, stageID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.StageID, &t.Title, &t.Description, &t.IsDone, &t.Ord); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// GetTask retrieves a task by id.
func (s *Store) GetTask(ctx context.Context, id int64) (models.Task, error) {
	var t models.Task
	err := s.db.QueryRowContext(ctx, `SELECT id, stage_id, title, description, is_done, ord FROM tasks WHERE id = ?`, id).
		Scan(&t.ID, &t.StageID, &t.Title, &t.Description, &t.IsDone, &t.Ord)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// CreateTask inserts a new task under its stage. The parent must exist.
func (s *Store) CreateTask(ctx context.Context, t models.Task) (models.Task, error) {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return models.Task{}, fmt.Errorf("task title: %w", ErrValidation)
	}
	if _, err := s.GetStage(ctx, t.StageID); err != nil {
		return models.Task{}, err
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO tasks(stage_id, title, description, is_done, ord) VALUES(?, ?, ?, ?, ?)`,
		t.StageID, t.Title, t.Description, t.IsDone, t.Ord)
	if err != nil {
		return models.Task{}, fmt.Errorf("insert task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Task{}, fmt.Errorf("task id: %w", err)
	}
	return s.GetTask(ctx, id)
}

// UpdateTask replaces the editable fields of an existing task.
func (s *Store) UpdateTask(ctx context.Context, t models.Task) (models.Task, error) {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return models.Task{}, fmt.Errorf("task title: %w", ErrValidation)
	}

	res, err := s.db.ExecContext(ctx, `UPDATE tasks SET title = ?, description = ?, is_done = ? WHERE id = ?`,
		t.Title, t.Description, t.IsDone, t.ID)
	if err != nil {
		return models.Task{}, fmt.Errorf("update task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Task{}, err
	}
	if affected == 0 {
		return models.Task{}, fmt.Errorf("task %d: %w", t.ID, ErrNotFound)
	}
	return s.GetTask(ctx, t.ID)
}

// DeleteTask removes a task by id.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return nil
}

// ToggleTask inverts the completion flag of a task and returns the updated
// row. Unknown ids surface ErrNotFound.
func (s *Store) ToggleTask(ctx context.Context, id int64) (models.Task, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE tasks SET is_done = NOT is_done WHERE id = ?`, id)
	if err != nil {
		return models.Task{}, fmt.Errorf("toggle task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Task{}, err
	}
	if affected == 0 {
		return models.Task{}, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return s.GetTask(ctx, id)
}

// ReorderTasks assigns 1-based order values to the given task ids in the
// sequence submitted, scoped to one stage. Same contract as ReorderStages.
func (s *Store) ReorderTasks(ctx context.Context, stageID int64, ids []int64) error {
	return s.reorder(ctx, `UPDATE tasks SET ord = ? WHERE id = ? AND stage_id = ?`, stageID, ids)
}
