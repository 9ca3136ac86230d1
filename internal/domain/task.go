package domain

import (
	"fmt"
	"time"
)

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Done        bool       `json:"done"`
	Status      TaskStatus `json:"status"`
	Priority    Priority   `json:"priority,omitempty"`
	Category    string     `json:"category,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	PausedAt    *time.Time `json:"pausedAt,omitempty"`

	// Back-references for roadmap-generated tasks. Either both are set or
	// neither is: tasks are generated per step, never per roadmap.
	RoadmapID     string `json:"roadmapId,omitempty"`
	RoadmapStepID string `json:"roadmapStepId,omitempty"`
}

// NewTask creates a task in the active state with a fresh timestamp.
func NewTask(id, title string) *Task {
	return &Task{
		ID:        id,
		Title:     title,
		Status:    TaskActive,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate checks the structural invariants: done mirrors the completed
// status, completedAt is set exactly when done, and roadmap back-references
// come in pairs.
func (t *Task) Validate() error {
	if t.Done != (t.Status == TaskCompleted) {
		return fmt.Errorf("task %s: done=%v inconsistent with status %q", t.ID, t.Done, t.Status)
	}
	if t.Done != (t.CompletedAt != nil) {
		return fmt.Errorf("task %s: completedAt must be set exactly when done", t.ID)
	}
	if (t.RoadmapID == "") != (t.RoadmapStepID == "") {
		return fmt.Errorf("task %s: roadmapId and roadmapStepId must be set together", t.ID)
	}
	return nil
}

// Toggle flips the completion state at the given time, keeping done, status
// and completedAt consistent.
func (t *Task) Toggle(now time.Time) {
	if t.Done {
		t.Done = false
		t.Status = TaskActive
		t.CompletedAt = nil
		return
	}
	t.Done = true
	t.Status = TaskCompleted
	t.CompletedAt = &now
	t.PausedAt = nil
}

// Complete marks the task done at the given time. No-op when already done.
func (t *Task) Complete(now time.Time) {
	if t.Done {
		return
	}
	t.Done = true
	t.Status = TaskCompleted
	t.CompletedAt = &now
	t.PausedAt = nil
}

// Pause suspends an active task.
func (t *Task) Pause(now time.Time) {
	t.Status = TaskPaused
	t.PausedAt = &now
}

// Resume returns a paused task to the active state.
func (t *Task) Resume() {
	t.Status = TaskActive
	t.PausedAt = nil
}

// SetStatus applies a status transition, adjusting done/completedAt/pausedAt
// to keep the invariants.
func (t *Task) SetStatus(status TaskStatus, now time.Time) {
	switch status {
	case TaskCompleted:
		t.Complete(now)
	case TaskPaused:
		t.Done = false
		t.CompletedAt = nil
		t.Pause(now)
	case TaskActive:
		t.Done = false
		t.CompletedAt = nil
		t.Resume()
	}
}

// LinkedToStep reports whether the task was generated from the given roadmap step.
func (t *Task) LinkedToStep(roadmapID, stepID string) bool {
	return t.RoadmapID == roadmapID && t.RoadmapStepID == stepID
}
