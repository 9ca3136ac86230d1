package store

import (
	"context"

	"buddyai/internal/domain"
)

// Store persists the application collections. Collections are read and
// written whole: callers load, modify, and save back, which keeps local and
// remote copies byte-equivalent after every write.
type Store interface {
	Tasks(ctx context.Context) ([]domain.Task, error)
	SaveTasks(ctx context.Context, tasks []domain.Task) error

	Roadmaps(ctx context.Context) ([]domain.Roadmap, error)
	SaveRoadmaps(ctx context.Context, roadmaps []domain.Roadmap) error

	Notes(ctx context.Context) ([]domain.Note, error)
	SaveNotes(ctx context.Context, notes []domain.Note) error

	Sessions(ctx context.Context) ([]domain.FocusSession, error)
	SaveSessions(ctx context.Context, sessions []domain.FocusSession) error

	Stats(ctx context.Context) (*domain.Stats, error)
	SaveStats(ctx context.Context, stats *domain.Stats) error

	Settings(ctx context.Context) (*domain.Settings, error)
	SaveSettings(ctx context.Context, settings *domain.Settings) error
}
