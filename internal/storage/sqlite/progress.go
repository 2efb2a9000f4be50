package sqlite

import (
	"context"
	"fmt"

	"homesite/internal/models"
	"homesite/internal/progress"
)

// StageProgress computes the completion percentage of one stage from the
// current state of its tasks. Nothing is cached; the counts are cheap and
// always reflect the latest toggles.
func (s *Store) StageProgress(ctx context.Context, stageID int64) (int, error) {
	var done, total int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(CASE WHEN is_done THEN 1 END), COUNT(*) FROM tasks WHERE stage_id = ?`, stageID).
		Scan(&done, &total)
	if err != nil {
		return 0, fmt.Errorf("stage progress: %w", err)
	}
	return progress.Percent(done, total), nil
}

// RoadmapProgress aggregates completion over every task of every stage of
// the roadmap. A roadmap with no tasks anywhere reports 0.
func (s *Store) RoadmapProgress(ctx context.Context, roadmapID int64) (int, error) {
	var done, total int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(CASE WHEN t.is_done THEN 1 END), COUNT(*)
         FROM tasks t JOIN stages st ON st.id = t.stage_id
         WHERE st.roadmap_id = ?`, roadmapID).
		Scan(&done, &total)
	if err != nil {
		return 0, fmt.Errorf("roadmap progress: %w", err)
	}
	return progress.Percent(done, total), nil
}

// RoadmapViews assembles the full public roadmap listing: every roadmap with
// its ordered stages, their ordered tasks, and computed percentages.
func (s *Store) RoadmapViews(ctx context.Context) ([]models.RoadmapView, error) {
	roadmaps, err := s.ListRoadmaps(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.RoadmapView, 0, len(roadmaps))
	for _, r := range roadmaps {
		stages, err := s.ListStages(ctx, r.ID)
		if err != nil {
			return nil, err
		}

		var roadmapDone, roadmapTotal int64
		stageViews := make([]models.StageView, 0, len(stages))
		for _, st := range stages {
			tasks, err := s.ListTasks(ctx, st.ID)
			if err != nil {
				return nil, err
			}
			var done int64
			for _, t := range tasks {
				if t.IsDone {
					done++
				}
			}
			total := int64(len(tasks))
			roadmapDone += done
			roadmapTotal += total
			stageViews = append(stageViews, models.StageView{
				Stage:    st,
				Tasks:    tasks,
				Progress: progress.Percent(done, total),
			})
		}

		views = append(views, models.RoadmapView{
			Roadmap:  r,
			Stages:   stageViews,
			Progress: progress.Percent(roadmapDone, roadmapTotal),
		})
	}
	return views, nil
}
