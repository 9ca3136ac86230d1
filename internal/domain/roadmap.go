package domain

import (
	"fmt"
	"math"
	"time"
)

type RoadmapStep struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    string     `json:"duration"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Complete marks the step done at the given time. No-op when already completed.
func (s *RoadmapStep) Complete(now time.Time) {
	if s.Completed {
		return
	}
	s.Completed = true
	s.CompletedAt = &now
}

type Roadmap struct {
	ID          string        `json:"id,omitempty"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Difficulty  Difficulty    `json:"difficulty"`
	Duration    string        `json:"duration"`
	Steps       []RoadmapStep `json:"steps"`
	Progress    int           `json:"progress"`
	Completed   bool          `json:"completed"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
	CreatedAt   time.Time     `json:"createdAt,omitzero"`
	UpdatedAt   time.Time     `json:"updatedAt,omitzero"`
}

// Validate checks the aggregate invariants: progress matches the completed
// step ratio, completed mirrors progress==100, and every step keeps
// completedAt consistent with completed.
func (r *Roadmap) Validate() error {
	for i := range r.Steps {
		s := &r.Steps[i]
		if s.Completed != (s.CompletedAt != nil) {
			return fmt.Errorf("roadmap %s step %s: completedAt must be set exactly when completed", r.ID, s.ID)
		}
	}
	if want := r.computeProgress(); r.Progress != want {
		return fmt.Errorf("roadmap %s: progress %d, expected %d", r.ID, r.Progress, want)
	}
	if r.Completed != (r.Progress == 100) {
		return fmt.Errorf("roadmap %s: completed=%v inconsistent with progress %d", r.ID, r.Completed, r.Progress)
	}
	if r.Completed != (r.CompletedAt != nil) {
		return fmt.Errorf("roadmap %s: completedAt must be set exactly when completed", r.ID)
	}
	return nil
}

// Step returns the step with the given ID, or nil.
func (r *Roadmap) Step(stepID string) *RoadmapStep {
	for i := range r.Steps {
		if r.Steps[i].ID == stepID {
			return &r.Steps[i]
		}
	}
	return nil
}

func (r *Roadmap) computeProgress() int {
	if len(r.Steps) == 0 {
		return 0
	}
	done := 0
	for i := range r.Steps {
		if r.Steps[i].Completed {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(r.Steps))))
}

// RecalcProgress recomputes progress from the steps and rolls completion
// state and timestamps forward. updatedAt is always bumped.
func (r *Roadmap) RecalcProgress(now time.Time) {
	r.Progress = r.computeProgress()
	if r.Progress == 100 {
		if !r.Completed {
			r.Completed = true
			r.CompletedAt = &now
		}
	} else {
		r.Completed = false
		r.CompletedAt = nil
	}
	r.UpdatedAt = now
}
