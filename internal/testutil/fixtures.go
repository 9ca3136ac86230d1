package testutil

import (
	"time"

	"buddyai/internal/domain"
	"github.com/google/uuid"
)

// Task options
type TaskOption func(*domain.Task)

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithCategory(c string) TaskOption {
	return func(t *domain.Task) {
		t.Category = c
	}
}

func WithStepRef(roadmapID, stepID string) TaskOption {
	return func(t *domain.Task) {
		t.RoadmapID = roadmapID
		t.RoadmapStepID = stepID
	}
}

func WithTaskDone(completedAt time.Time) TaskOption {
	return func(t *domain.Task) {
		t.Done = true
		t.Status = domain.TaskCompleted
		t.CompletedAt = &completedAt
	}
}

// NewTestTask creates a valid active task with sensible defaults.
func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	task := domain.NewTask(uuid.New().String(), title)
	for _, opt := range opts {
		opt(task)
	}
	return task
}

// Roadmap options
type RoadmapOption func(*domain.Roadmap)

func WithDifficulty(d domain.Difficulty) RoadmapOption {
	return func(r *domain.Roadmap) {
		r.Difficulty = d
	}
}

func WithSteps(steps ...domain.RoadmapStep) RoadmapOption {
	return func(r *domain.Roadmap) {
		r.Steps = steps
	}
}

// NewTestRoadmap creates a roadmap with the given number of one-week steps.
func NewTestRoadmap(title string, stepCount int, opts ...RoadmapOption) *domain.Roadmap {
	now := time.Now().UTC()
	r := &domain.Roadmap{
		ID:         uuid.New().String(),
		Title:      title,
		Category:   "Learning",
		Difficulty: domain.DifficultyIntermediate,
		Duration:   "4 weeks",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for i := 0; i < stepCount; i++ {
		r.Steps = append(r.Steps, NewTestStep(title))
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewTestStep creates a single incomplete roadmap step.
func NewTestStep(topic string) domain.RoadmapStep {
	return domain.RoadmapStep{
		ID:          uuid.New().String(),
		Title:       topic + " practice",
		Description: "Work through " + topic,
		Duration:    "1 week",
	}
}

// NewTestNote creates a note dated today.
func NewTestNote(content string) *domain.Note {
	now := time.Now().UTC()
	return &domain.Note{
		ID:        uuid.New().String(),
		Title:     "Test note",
		Content:   content,
		Date:      now.Format("2006-01-02"),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
