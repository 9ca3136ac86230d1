package service

import (
	"context"
	"fmt"
	"time"

	"buddyai/internal/domain"
	"buddyai/internal/store"
	"github.com/google/uuid"
)

type taskService struct {
	store store.Store
}

func NewTaskService(st store.Store) TaskService {
	return &taskService{store: st}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = domain.TaskActive
	}
	t.CreatedAt = time.Now().UTC()
	if err := t.Validate(); err != nil {
		return err
	}

	tasks, err := s.store.Tasks(ctx)
	if err != nil {
		return err
	}
	tasks = append(tasks, *t)
	return s.store.SaveTasks(ctx, tasks)
}

func (s *taskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.store.Tasks(ctx)
}

func (s *taskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	tasks, err := s.store.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
}

// mutate applies fn to the task with the given id and saves the collection.
func (s *taskService) mutate(ctx context.Context, id string, fn func(t *domain.Task)) (*domain.Task, error) {
	tasks, err := s.store.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			fn(&tasks[i])
			if err := s.store.SaveTasks(ctx, tasks); err != nil {
				return nil, err
			}
			out := tasks[i]
			return &out, nil
		}
	}
	return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
}

func (s *taskService) Toggle(ctx context.Context, id string) (*domain.Task, error) {
	now := time.Now().UTC()
	task, err := s.mutate(ctx, id, func(t *domain.Task) {
		t.Toggle(now)
	})
	if err != nil {
		return nil, err
	}
	if task.RoadmapID != "" {
		if _, err := syncRoadmapProgress(ctx, s.store, task.RoadmapID, now); err != nil {
			return nil, err
		}
	}
	return task, nil
}

func (s *taskService) SetStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error) {
	if !domain.ValidTaskStatuses[string(status)] {
		return nil, fmt.Errorf("invalid task status %q", status)
	}
	now := time.Now().UTC()
	task, err := s.mutate(ctx, id, func(t *domain.Task) {
		t.SetStatus(status, now)
	})
	if err != nil {
		return nil, err
	}
	if status == domain.TaskCompleted && task.RoadmapID != "" {
		if _, err := syncRoadmapProgress(ctx, s.store, task.RoadmapID, now); err != nil {
			return nil, err
		}
	}
	return task, nil
}

func (s *taskService) Pause(ctx context.Context, id string) (*domain.Task, error) {
	now := time.Now().UTC()
	return s.mutate(ctx, id, func(t *domain.Task) {
		t.Pause(now)
	})
}

func (s *taskService) Resume(ctx context.Context, id string) (*domain.Task, error) {
	return s.mutate(ctx, id, func(t *domain.Task) {
		t.Resume()
	})
}

func (s *taskService) Remove(ctx context.Context, id string) error {
	tasks, err := s.store.Tasks(ctx)
	if err != nil {
		return err
	}
	kept := tasks[:0]
	found := false
	for _, t := range tasks {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return s.store.SaveTasks(ctx, kept)
}
