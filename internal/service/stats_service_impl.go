package service

import (
	"context"
	"fmt"
	"time"

	"buddyai/internal/domain"
	"buddyai/internal/store"
)

type statsService struct {
	store store.Store
}

func NewStatsService(st store.Store) StatsService {
	return &statsService{store: st}
}

func (s *statsService) Get(ctx context.Context) (*domain.Stats, error) {
	return s.store.Stats(ctx)
}

func (s *statsService) AddXP(ctx context.Context, amount int) (*domain.Stats, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("xp amount must be positive, got %d", amount)
	}
	stats, err := s.store.Stats(ctx)
	if err != nil {
		return nil, err
	}
	stats.AddXP(amount, time.Now().UTC())
	if err := s.store.SaveStats(ctx, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *statsService) Reset(ctx context.Context) error {
	return s.store.SaveStats(ctx, domain.NewStats())
}

type settingsService struct {
	store store.Store
}

func NewSettingsService(st store.Store) SettingsService {
	return &settingsService{store: st}
}

func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	return s.store.Settings(ctx)
}

func (s *settingsService) Update(ctx context.Context, settings *domain.Settings) error {
	return s.store.SaveSettings(ctx, settings)
}
