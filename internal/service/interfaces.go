package service

import (
	"context"
	"errors"

	"buddyai/internal/chat"
	"buddyai/internal/domain"
)

// ErrNotFound is returned when a referenced entity does not exist.
var ErrNotFound = errors.New("not found")

// TaskService manages the task list.
type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	List(ctx context.Context) ([]domain.Task, error)
	Get(ctx context.Context, id string) (*domain.Task, error)
	// Toggle flips completion and reconciles any linked roadmap step.
	Toggle(ctx context.Context, id string) (*domain.Task, error)
	SetStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error)
	Pause(ctx context.Context, id string) (*domain.Task, error)
	Resume(ctx context.Context, id string) (*domain.Task, error)
	Remove(ctx context.Context, id string) error
}

// RoadmapService manages roadmaps and the tasks generated from them.
type RoadmapService interface {
	Create(ctx context.Context, r *domain.Roadmap) error
	List(ctx context.Context) ([]domain.Roadmap, error)
	Get(ctx context.Context, id string) (*domain.Roadmap, error)
	Remove(ctx context.Context, id string) error
	// GenerateTasks materializes one dated task per step plus weekly
	// sub-tasks for multi-week steps, and appends them to the task list.
	GenerateTasks(ctx context.Context, roadmapID string) ([]domain.Task, error)
	// CompleteStep marks a step done directly, completing its open tasks.
	CompleteStep(ctx context.Context, roadmapID, stepID string) (*domain.Roadmap, error)
	// SyncTaskCompletion rolls task completion up into step and roadmap
	// progress. It is safe to call repeatedly.
	SyncTaskCompletion(ctx context.Context, roadmapID string) (*domain.Roadmap, error)
}

// NoteService manages journal notes.
type NoteService interface {
	Create(ctx context.Context, n *domain.Note) error
	Update(ctx context.Context, n *domain.Note) error
	List(ctx context.Context) ([]domain.Note, error)
	ListByDate(ctx context.Context, date string) ([]domain.Note, error)
	ListByRange(ctx context.Context, from, to string) ([]domain.Note, error)
	Remove(ctx context.Context, id string) error
}

// SessionService records completed focus sessions.
type SessionService interface {
	Record(ctx context.Context, minutes int) (*domain.FocusSession, error)
	List(ctx context.Context) ([]domain.FocusSession, error)
	// TotalMinutes sums focus time over the trailing number of days.
	TotalMinutes(ctx context.Context, days int) (int, error)
}

// StatsService manages the gamification counters.
type StatsService interface {
	Get(ctx context.Context) (*domain.Stats, error)
	AddXP(ctx context.Context, amount int) (*domain.Stats, error)
	Reset(ctx context.Context) error
}

// SettingsService reads and writes user settings.
type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, s *domain.Settings) error
}

// ChatReply is the user-visible outcome of one chat turn.
type ChatReply struct {
	// Text is the reply with any data payload stripped.
	Text string
	// Roadmap is set when the turn produced a roadmap, after persistence.
	Roadmap *domain.Roadmap
	// TasksCreated counts the tasks generated for a produced roadmap.
	TasksCreated int
}

// ChatService runs chat turns and applies their side effects.
type ChatService interface {
	Send(ctx context.Context, history []chat.Message, text string) (*ChatReply, error)
}
