package service

import (
	"context"
	"testing"
	"time"

	"buddyai/internal/domain"
	"buddyai/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoadmapService_CreateAssignsIDs(t *testing.T) {
	st := testutil.NewTestStore(t)
	svc := NewRoadmapService(st)
	ctx := context.Background()

	roadmap := &domain.Roadmap{
		Title:      "Learn Go",
		Category:   "Learning",
		Difficulty: domain.DifficultyBeginner,
		Duration:   "2 weeks",
		Steps: []domain.RoadmapStep{
			{Title: "Basics", Duration: "1 week"},
			{Title: "Practice", Duration: "1 week"},
		},
	}
	require.NoError(t, svc.Create(ctx, roadmap))

	assert.NotEmpty(t, roadmap.ID)
	for _, step := range roadmap.Steps {
		assert.NotEmpty(t, step.ID)
	}
	assert.False(t, roadmap.CreatedAt.IsZero())
}

func TestRoadmapService_GenerateTasks(t *testing.T) {
	st := testutil.NewTestStore(t)
	svc := NewRoadmapService(st)
	ctx := context.Background()

	roadmap := testutil.NewTestRoadmap("JavaScript", 0, testutil.WithSteps(
		domain.RoadmapStep{ID: "s1", Title: "Fundamentals", Description: "Variables and functions", Duration: "1 week"},
		domain.RoadmapStep{ID: "s2", Title: "Projects", Description: "Portfolio work", Duration: "3 weeks"},
		domain.RoadmapStep{ID: "s3", Title: "Mastery", Description: "Deep dives", Duration: "6 weeks"},
	))
	require.NoError(t, svc.Create(ctx, roadmap))

	created, err := svc.GenerateTasks(ctx, roadmap.ID)
	require.NoError(t, err)

	// One main task per step, plus weekly sub-tasks for multi-week steps
	// capped at four: 1 + (1+3) + (1+4).
	require.Len(t, created, 10)

	main := created[0]
	assert.Equal(t, "Fundamentals", main.Title)
	assert.Equal(t, domain.PriorityHigh, main.Priority)
	assert.Equal(t, roadmap.Category, main.Category)
	assert.Equal(t, "Variables and functions", main.Notes)
	assert.Equal(t, roadmap.ID, main.RoadmapID)
	assert.Equal(t, "s1", main.RoadmapStepID)
	require.NotNil(t, main.DueDate)

	// Second step: main task due a week later, Medium priority, then weekly
	// sub-tasks spaced seven days apart.
	second := created[1]
	assert.Equal(t, "Projects", second.Title)
	assert.Equal(t, domain.PriorityMedium, second.Priority)
	assert.Equal(t, 7*24*time.Hour, second.DueDate.Sub(*main.DueDate))

	sub := created[2]
	assert.Equal(t, "Projects - Week 1", sub.Title)
	assert.Equal(t, domain.PriorityMedium, sub.Priority)
	assert.Equal(t, "Week 1 focus for: Portfolio work", sub.Notes)
	assert.Equal(t, *second.DueDate, *sub.DueDate)
	assert.Equal(t, 7*24*time.Hour, created[3].DueDate.Sub(*sub.DueDate))

	// Third step: Low priority main, sub-tasks capped at four weeks.
	third := created[5]
	assert.Equal(t, "Mastery", third.Title)
	assert.Equal(t, domain.PriorityLow, third.Priority)
	assert.Equal(t, "Mastery - Week 4", created[9].Title)

	// All generated tasks land in the store.
	stored, err := st.Tasks(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 10)
}

func TestRoadmapService_CompleteStepCompletesTasks(t *testing.T) {
	st := testutil.NewTestStore(t)
	svc := NewRoadmapService(st)
	ctx := context.Background()

	roadmap := testutil.NewTestRoadmap("Go", 0, testutil.WithSteps(
		domain.RoadmapStep{ID: "s1", Title: "Basics", Duration: "2 weeks"},
		domain.RoadmapStep{ID: "s2", Title: "Practice", Duration: "1 week"},
	))
	require.NoError(t, svc.Create(ctx, roadmap))
	created, err := svc.GenerateTasks(ctx, roadmap.ID)
	require.NoError(t, err)
	require.Len(t, created, 4)

	got, err := svc.CompleteStep(ctx, roadmap.ID, "s1")
	require.NoError(t, err)
	assert.True(t, got.Steps[0].Completed)
	assert.Equal(t, 50, got.Progress)
	assert.False(t, got.Completed)

	tasks, err := st.Tasks(ctx)
	require.NoError(t, err)
	for _, task := range tasks {
		if task.RoadmapStepID == "s1" {
			assert.True(t, task.Done, task.Title)
			assert.NotNil(t, task.CompletedAt, task.Title)
		} else {
			assert.False(t, task.Done, task.Title)
		}
	}
}

func TestRoadmapService_SyncIgnoresStepsWithoutTasks(t *testing.T) {
	st := testutil.NewTestStore(t)
	svc := NewRoadmapService(st)
	ctx := context.Background()

	roadmap := testutil.NewTestRoadmap("Go", 2)
	require.NoError(t, svc.Create(ctx, roadmap))

	// No tasks generated: syncing must not complete anything.
	got, err := svc.SyncTaskCompletion(ctx, roadmap.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Progress)
	for _, step := range got.Steps {
		assert.False(t, step.Completed)
	}
}

func TestRoadmapService_Remove(t *testing.T) {
	st := testutil.NewTestStore(t)
	svc := NewRoadmapService(st)
	ctx := context.Background()

	roadmap := testutil.NewTestRoadmap("Go", 1)
	require.NoError(t, svc.Create(ctx, roadmap))
	require.NoError(t, svc.Remove(ctx, roadmap.ID))

	_, err := svc.Get(ctx, roadmap.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Remove(ctx, roadmap.ID), ErrNotFound)
}
