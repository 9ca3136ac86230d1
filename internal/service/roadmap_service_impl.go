package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"buddyai/internal/domain"
	"buddyai/internal/store"
	"github.com/google/uuid"
)

type roadmapService struct {
	store store.Store
}

func NewRoadmapService(st store.Store) RoadmapService {
	return &roadmapService{store: st}
}

func (s *roadmapService) Create(ctx context.Context, r *domain.Roadmap) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	for i := range r.Steps {
		if r.Steps[i].ID == "" {
			r.Steps[i].ID = uuid.New().String()
		}
	}
	if err := r.Validate(); err != nil {
		return err
	}

	roadmaps, err := s.store.Roadmaps(ctx)
	if err != nil {
		return err
	}
	roadmaps = append(roadmaps, *r)
	return s.store.SaveRoadmaps(ctx, roadmaps)
}

func (s *roadmapService) List(ctx context.Context) ([]domain.Roadmap, error) {
	return s.store.Roadmaps(ctx)
}

func (s *roadmapService) Get(ctx context.Context, id string) (*domain.Roadmap, error) {
	roadmaps, err := s.store.Roadmaps(ctx)
	if err != nil {
		return nil, err
	}
	for i := range roadmaps {
		if roadmaps[i].ID == id {
			return &roadmaps[i], nil
		}
	}
	return nil, fmt.Errorf("roadmap %s: %w", id, ErrNotFound)
}

func (s *roadmapService) Remove(ctx context.Context, id string) error {
	roadmaps, err := s.store.Roadmaps(ctx)
	if err != nil {
		return err
	}
	kept := roadmaps[:0]
	found := false
	for _, r := range roadmaps {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return fmt.Errorf("roadmap %s: %w", id, ErrNotFound)
	}
	return s.store.SaveRoadmaps(ctx, kept)
}

var stepWeeksRe = regexp.MustCompile(`(\d+)\s*week`)

// stepWeeks reads the number of weeks out of a step duration, defaulting to 1
// for day-denominated or unparseable durations.
func stepWeeks(duration string) int {
	m := stepWeeksRe.FindStringSubmatch(duration)
	if m == nil {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 1
	}
	return n
}

func stepPriority(index int) domain.Priority {
	switch index {
	case 0:
		return domain.PriorityHigh
	case 1:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}

func (s *roadmapService) GenerateTasks(ctx context.Context, roadmapID string) ([]domain.Task, error) {
	roadmap, err := s.Get(ctx, roadmapID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.store.Tasks(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	today := domain.DayFloor(now)
	var created []domain.Task

	for i, step := range roadmap.Steps {
		// Steps start a week apart regardless of their stated duration; the
		// due-date spread and the duration text are deliberately decoupled.
		stepDate := today.AddDate(0, 0, i*7)

		main := domain.Task{
			ID:            uuid.New().String(),
			Title:         step.Title,
			Status:        domain.TaskActive,
			CreatedAt:     now,
			DueDate:       &stepDate,
			Priority:      stepPriority(i),
			Category:      roadmap.Category,
			Notes:         step.Description,
			RoadmapID:     roadmap.ID,
			RoadmapStepID: step.ID,
		}
		created = append(created, main)

		// Multi-week steps also get one sub-task per week, capped at four.
		weeks := stepWeeks(step.Duration)
		if weeks > 1 {
			for week := 1; week <= min(weeks, 4); week++ {
				subDate := stepDate.AddDate(0, 0, (week-1)*7)
				created = append(created, domain.Task{
					ID:            uuid.New().String(),
					Title:         fmt.Sprintf("%s - Week %d", step.Title, week),
					Status:        domain.TaskActive,
					CreatedAt:     now,
					DueDate:       &subDate,
					Priority:      domain.PriorityMedium,
					Category:      roadmap.Category,
					Notes:         fmt.Sprintf("Week %d focus for: %s", week, step.Description),
					RoadmapID:     roadmap.ID,
					RoadmapStepID: step.ID,
				})
			}
		}
	}

	if err := s.store.SaveTasks(ctx, append(tasks, created...)); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *roadmapService) CompleteStep(ctx context.Context, roadmapID, stepID string) (*domain.Roadmap, error) {
	roadmaps, err := s.store.Roadmaps(ctx)
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

	now := time.Now().UTC()
	r := &roadmaps[idx]
	step := r.Step(stepID)
	if step == nil {
		return nil, fmt.Errorf("roadmap %s step %s: %w", roadmapID, stepID, ErrNotFound)
	}
	step.Complete(now)
	r.RecalcProgress(now)

	if err := s.store.SaveRoadmaps(ctx, roadmaps); err != nil {
		return nil, err
	}

	// Completing a step directly completes its open tasks as well.
	tasks, err := s.store.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	changed := false
	for i := range tasks {
		if tasks[i].LinkedToStep(roadmapID, stepID) && !tasks[i].Done {
			tasks[i].Complete(now)
			changed = true
		}
	}
	if changed {
		if err := s.store.SaveTasks(ctx, tasks); err != nil {
			return nil, err
		}
	}

	out := *r
	return &out, nil
}

func (s *roadmapService) SyncTaskCompletion(ctx context.Context, roadmapID string) (*domain.Roadmap, error) {
	return syncRoadmapProgress(ctx, s.store, roadmapID, time.Now().UTC())
}
