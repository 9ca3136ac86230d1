package service

import (
	"context"
	"fmt"
	"time"

	"buddyai/internal/domain"
	"buddyai/internal/store"
)

// syncRoadmapProgress rolls task completion up into the roadmap: a step with
// at least one linked task becomes complete once every linked task is done,
// then progress, completion state and updatedAt are recomputed. Steps are
// never un-completed by this path, and steps with no linked tasks are left
// alone. Calling it again with no task changes is a no-op apart from the
// updatedAt bump.
func syncRoadmapProgress(ctx context.Context, st store.Store, roadmapID string, now time.Time) (*domain.Roadmap, error) {
	roadmaps, err := st.Roadmaps(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range roadmaps {
		if roadmaps[i].ID == roadmapID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("roadmap %s: %w", roadmapID, ErrNotFound)
	}

	tasks, err := st.Tasks(ctx)
	if err != nil {
		return nil, err
	}

	r := &roadmaps[idx]
	for i := range r.Steps {
		step := &r.Steps[i]
		if step.Completed {
			continue
		}
		linked, allDone := 0, true
		for j := range tasks {
			if !tasks[j].LinkedToStep(roadmapID, step.ID) {
				continue
			}
			linked++
			if !tasks[j].Done {
				allDone = false
			}
		}
		if linked > 0 && allDone {
			step.Complete(now)
		}
	}
	r.RecalcProgress(now)

	if err := st.SaveRoadmaps(ctx, roadmaps); err != nil {
		return nil, err
	}
	out := *r
	return &out, nil
}
