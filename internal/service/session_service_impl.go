package service

import (
	"context"
	"fmt"
	"time"

	"buddyai/internal/domain"
	"buddyai/internal/store"
)

type sessionService struct {
	store store.Store
}

func NewSessionService(st store.Store) SessionService {
	return &sessionService{store: st}
}

func (s *sessionService) Record(ctx context.Context, minutes int) (*domain.FocusSession, error) {
	if minutes <= 0 {
		return nil, fmt.Errorf("session duration must be positive, got %d", minutes)
	}
	sessions, err := s.store.Sessions(ctx)
	if err != nil {
		return nil, err
	}
	fs := domain.FocusSession{EndedAt: time.Now().UTC(), Duration: minutes}
	sessions = append(sessions, fs)
	if err := s.store.SaveSessions(ctx, sessions); err != nil {
		return nil, err
	}
	return &fs, nil
}

func (s *sessionService) List(ctx context.Context) ([]domain.FocusSession, error) {
	return s.store.Sessions(ctx)
}

func (s *sessionService) TotalMinutes(ctx context.Context, days int) (int, error) {
	sessions, err := s.store.Sessions(ctx)
	if err != nil {
		return 0, err
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	total := 0
	for _, fs := range sessions {
		if fs.EndedAt.After(cutoff) {
			total += fs.Duration
		}
	}
	return total, nil
}
