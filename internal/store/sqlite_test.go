package store

import (
	"context"
	"testing"
	"time"

	"buddyai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSQLiteStore(db)
}

var storeNow = time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC)

func TestSQLiteStore_TaskRoundTrip(t *testing.T) {
	s := newMemoryStore(t)
	ctx := context.Background()

	due := storeNow.AddDate(0, 0, 7)
	done := storeNow.Add(2 * time.Hour)
	tasks := []domain.Task{
		{
			ID: "t1", Title: "Read chapter one", Status: domain.TaskActive,
			Priority: domain.PriorityHigh, Category: "Learning",
			Notes: "start here", DueDate: &due, CreatedAt: storeNow,
			RoadmapID: "r1", RoadmapStepID: "s1",
		},
		{
			ID: "t2", Title: "Write summary", Done: true, Status: domain.TaskCompleted,
			CreatedAt: storeNow, CompletedAt: &done,
		},
		{
			ID: "t3", Title: "Stretch", Status: domain.TaskPaused,
			CreatedAt: storeNow, PausedAt: &done,
		},
	}

	require.NoError(t, s.SaveTasks(ctx, tasks))

	got, err := s.Tasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, tasks, got)
}

// Saving replaces the whole collection, including removals and reordering.
func TestSQLiteStore_SaveTasksReplaces(t *testing.T) {
	s := newMemoryStore(t)
	ctx := context.Background()

	first := []domain.Task{
		{ID: "a", Title: "A", Status: domain.TaskActive, CreatedAt: storeNow},
		{ID: "b", Title: "B", Status: domain.TaskActive, CreatedAt: storeNow},
	}
	require.NoError(t, s.SaveTasks(ctx, first))

	second := []domain.Task{
		{ID: "b", Title: "B renamed", Status: domain.TaskActive, CreatedAt: storeNow},
	}
	require.NoError(t, s.SaveTasks(ctx, second))

	got, err := s.Tasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestSQLiteStore_RoadmapRoundTrip(t *testing.T) {
	s := newMemoryStore(t)
	ctx := context.Background()

	stepDone := storeNow.Add(time.Hour)
	roadmaps := []domain.Roadmap{
		{
			ID: "r1", Title: "Go Learning Path", Description: "A beginner level roadmap",
			Category: "Learning", Difficulty: domain.DifficultyBeginner,
			Duration: "3 months", Progress: 50,
			CreatedAt: storeNow, UpdatedAt: storeNow,
			Steps: []domain.RoadmapStep{
				{ID: "s1", Title: "Basics", Description: "Syntax", Duration: "1 week",
					Completed: true, CompletedAt: &stepDone},
				{ID: "s2", Title: "Practice", Description: "Exercises", Duration: "2 weeks"},
			},
		},
		{
			ID: "r2", Title: "Custom Plan", Category: "Custom",
			Difficulty: domain.DifficultyIntermediate, Duration: "4 weeks",
			CreatedAt: storeNow, UpdatedAt: storeNow,
		},
	}

	require.NoError(t, s.SaveRoadmaps(ctx, roadmaps))

	got, err := s.Roadmaps(ctx)
	require.NoError(t, err)
	assert.Equal(t, roadmaps, got)
}

func TestSQLiteStore_NoteAndSessionRoundTrip(t *testing.T) {
	s := newMemoryStore(t)
	ctx := context.Background()

	notes := []domain.Note{
		{
			ID: "n1", Title: "Morning pages", Content: "Slept well", Date: "2026-04-02",
			Mood: domain.MoodGood, Tags: []string{"sleep", "habit"},
			Outcomes:  []string{"drafted plan"},
			CreatedAt: storeNow, UpdatedAt: storeNow,
		},
		{
			ID: "n2", Content: "Short one", Date: "2026-04-03",
			CreatedAt: storeNow, UpdatedAt: storeNow,
		},
	}
	require.NoError(t, s.SaveNotes(ctx, notes))

	gotNotes, err := s.Notes(ctx)
	require.NoError(t, err)
	assert.Equal(t, notes, gotNotes)

	sessions := []domain.FocusSession{
		{EndedAt: storeNow, Duration: 25},
		{EndedAt: storeNow.Add(time.Hour), Duration: 50},
	}
	require.NoError(t, s.SaveSessions(ctx, sessions))

	gotSessions, err := s.Sessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, sessions, gotSessions)
}

func TestSQLiteStore_StatsDefaultsAndUpsert(t *testing.T) {
	s := newMemoryStore(t)
	ctx := context.Background()

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.NewStats(), stats)

	day := domain.DayFloor(storeNow)
	stats = &domain.Stats{XP: 40, Level: 2, Streak: 3, LastActiveDay: &day}
	require.NoError(t, s.SaveStats(ctx, stats))
	require.NoError(t, s.SaveStats(ctx, stats))

	got, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats, got)
}

func TestSQLiteStore_SettingsDefaultsAndUpsert(t *testing.T) {
	s := newMemoryStore(t)
	ctx := context.Background()

	settings, err := s.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)

	settings.Tone = domain.ToneMentor
	settings.Notifications = true
	settings.BotName = "Max"
	settings.ReminderTimes = []string{"08:00"}
	require.NoError(t, s.SaveSettings(ctx, settings))

	got, err := s.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings, got)
}
