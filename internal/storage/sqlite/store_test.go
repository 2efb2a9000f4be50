package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homesite/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPostCRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.CreatePost(ctx, models.Post{Title: "   "})
	require.ErrorIs(t, err, ErrValidation)

	first, err := store.CreatePost(ctx, models.Post{Title: "First", Date: "12 Feb 2019", Tags: "go"})
	require.NoError(t, err)
	second, err := store.CreatePost(ctx, models.Post{Title: "Second", Desc: "short", Content: "body"})
	require.NoError(t, err)

	posts, err := store.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	// Most recent first.
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)

	// Full-field replacement: omitted fields overwrite with empty strings.
	updated, err := store.UpdatePost(ctx, models.Post{ID: first.ID, Title: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Empty(t, updated.Date)
	assert.Empty(t, updated.Tags)

	require.NoError(t, store.DeletePost(ctx, first.ID))
	_, err = store.GetPost(ctx, first.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.DeletePost(ctx, first.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWorkCRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.CreateWork(ctx, models.Work{})
	require.ErrorIs(t, err, ErrValidation)

	work, err := store.CreateWork(ctx, models.Work{Title: "Portfolio site", Year: "2024", Category: "web"})
	require.NoError(t, err)
	assert.Equal(t, "Portfolio site", work.Title)

	works, err := store.ListWorks(ctx)
	require.NoError(t, err)
	require.Len(t, works, 1)

	require.NoError(t, store.DeleteWork(ctx, work.ID))
	_, err = store.GetWork(ctx, work.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func seedRoadmap(t *testing.T, store *Store) (models.Roadmap, models.Stage, []models.Task) {
	t.Helper()
	ctx := context.Background()

	roadmap, err := store.CreateRoadmap(ctx, models.Roadmap{Title: "Learn Go"})
	require.NoError(t, err)
	stage, err := store.CreateStage(ctx, models.Stage{RoadmapID: roadmap.ID, Title: "Basics"})
	require.NoError(t, err)

	var tasks []models.Task
	for _, title := range []string{"Tour", "Book", "Project"} {
		task, err := store.CreateTask(ctx, models.Task{StageID: stage.ID, Title: title})
		require.NoError(t, err)
		tasks = append(tasks, task)
	}
	return roadmap, stage, tasks
}

func TestStageRequiresExistingRoadmap(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.CreateStage(ctx, models.Stage{RoadmapID: 99, Title: "Orphan"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.CreateTask(ctx, models.Task{StageID: 99, Title: "Orphan"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStageProgress(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	_, stage, tasks := seedRoadmap(t, store)

	// No tasks done yet.
	pct, err := store.StageProgress(ctx, stage.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, pct)

	// 1 of 3 truncates to 33.
	_, err = store.ToggleTask(ctx, tasks[0].ID)
	require.NoError(t, err)
	pct, err = store.StageProgress(ctx, stage.ID)
	require.NoError(t, err)
	assert.Equal(t, 33, pct)

	// 2 of 3 truncates to 66.
	_, err = store.ToggleTask(ctx, tasks[1].ID)
	require.NoError(t, err)
	pct, err = store.StageProgress(ctx, stage.ID)
	require.NoError(t, err)
	assert.Equal(t, 66, pct)
}

func TestEmptyStageProgressIsZero(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	roadmap, err := store.CreateRoadmap(ctx, models.Roadmap{Title: "Empty plan"})
	require.NoError(t, err)
	stage, err := store.CreateStage(ctx, models.Stage{RoadmapID: roadmap.ID, Title: "Empty"})
	require.NoError(t, err)

	pct, err := store.StageProgress(ctx, stage.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, pct)

	pct, err = store.RoadmapProgress(ctx, roadmap.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, pct)
}

func TestRoadmapProgressAggregatesStages(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	roadmap, _, tasks := seedRoadmap(t, store)

	second, err := store.CreateStage(ctx, models.Stage{RoadmapID: roadmap.ID, Title: "Advanced"})
	require.NoError(t, err)
	extra, err := store.CreateTask(ctx, models.Task{StageID: second.ID, Title: "Generics"})
	require.NoError(t, err)

	// 2 done of 4 total across both stages.
	_, err = store.ToggleTask(ctx, tasks[0].ID)
	require.NoError(t, err)
	_, err = store.ToggleTask(ctx, extra.ID)
	require.NoError(t, err)

	pct, err := store.RoadmapProgress(ctx, roadmap.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, pct)
}

func TestToggleTask(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	_, _, tasks := seedRoadmap(t, store)

	toggled, err := store.ToggleTask(ctx, tasks[0].ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsDone)

	toggled, err = store.ToggleTask(ctx, tasks[0].ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsDone)

	_, err = store.ToggleTask(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReorderStages(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	roadmap, err := store.CreateRoadmap(ctx, models.Roadmap{Title: "Plan"})
	require.NoError(t, err)
	var ids []int64
	for _, title := range []string{"A", "B", "C"} {
		stage, err := store.CreateStage(ctx, models.Stage{RoadmapID: roadmap.ID, Title: title})
		require.NoError(t, err)
		ids = append(ids, stage.ID)
	}

	// Submit C, A, B as the new sequence.
	require.NoError(t, store.ReorderStages(ctx, roadmap.ID, []int64{ids[2], ids[0], ids[1]}))

	stages, err := store.ListStages(ctx, roadmap.ID)
	require.NoError(t, err)
	require.Len(t, stages, 3)
	assert.Equal(t, ids[2], stages[0].ID)
	assert.Equal(t, ids[0], stages[1].ID)
	assert.Equal(t, ids[1], stages[2].ID)
	assert.Equal(t, int64(1), stages[0].Ord)
	assert.Equal(t, int64(2), stages[1].Ord)
	assert.Equal(t, int64(3), stages[2].Ord)
}

func TestReorderIgnoresForeignIDs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	roadmap, err := store.CreateRoadmap(ctx, models.Roadmap{Title: "Plan"})
	require.NoError(t, err)
	other, err := store.CreateRoadmap(ctx, models.Roadmap{Title: "Other plan"})
	require.NoError(t, err)

	mine, err := store.CreateStage(ctx, models.Stage{RoadmapID: roadmap.ID, Title: "Mine"})
	require.NoError(t, err)
	foreign, err := store.CreateStage(ctx, models.Stage{RoadmapID: other.ID, Title: "Foreign"})
	require.NoError(t, err)

	// The foreign stage sits at position 1 in the submitted sequence but
	// belongs to another roadmap, so only the second entry applies.
	require.NoError(t, store.ReorderStages(ctx, roadmap.ID, []int64{foreign.ID, mine.ID}))

	got, err := store.GetStage(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Ord)

	untouched, err := store.GetStage(ctx, foreign.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), untouched.Ord)
}

func TestReorderTasks(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	_, stage, tasks := seedRoadmap(t, store)

	require.NoError(t, store.ReorderTasks(ctx, stage.ID, []int64{tasks[1].ID, tasks[2].ID, tasks[0].ID}))

	listed, err := store.ListTasks(ctx, stage.ID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, tasks[1].ID, listed[0].ID)
	assert.Equal(t, tasks[2].ID, listed[1].ID)
	assert.Equal(t, tasks[0].ID, listed[2].ID)
}

func TestDeleteRoadmapCascades(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	roadmap, stage, tasks := seedRoadmap(t, store)

	require.NoError(t, store.DeleteRoadmap(ctx, roadmap.ID))

	stages, err := store.ListStages(ctx, roadmap.ID)
	require.NoError(t, err)
	assert.Empty(t, stages)

	_, err = store.GetStage(ctx, stage.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	for _, task := range tasks {
		_, err = store.GetTask(ctx, task.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	}
}

func TestDeleteStageCascadesToTasks(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	_, stage, tasks := seedRoadmap(t, store)

	require.NoError(t, store.DeleteStage(ctx, stage.ID))

	for _, task := range tasks {
		_, err := store.GetTask(ctx, task.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	}
}

func TestRoadmapViews(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	roadmap, stage, tasks := seedRoadmap(t, store)

	_, err := store.ToggleTask(ctx, tasks[0].ID)
	require.NoError(t, err)

	views, err := store.RoadmapViews(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, roadmap.ID, views[0].Roadmap.ID)
	assert.Equal(t, 33, views[0].Progress)
	require.Len(t, views[0].Stages, 1)
	assert.Equal(t, stage.ID, views[0].Stages[0].Stage.ID)
	assert.Equal(t, 33, views[0].Stages[0].Progress)
	assert.Len(t, views[0].Stages[0].Tasks, 3)
}

func TestCounts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedRoadmap(t, store)

	_, err := store.CreatePost(ctx, models.Post{Title: "Hello"})
	require.NoError(t, err)

	counts, err := store.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Posts)
	assert.Equal(t, int64(0), counts.Works)
	assert.Equal(t, int64(1), counts.Roadmaps)
	assert.Equal(t, int64(1), counts.Stages)
	assert.Equal(t, int64(3), counts.Tasks)
}
