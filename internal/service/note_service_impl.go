package service

import (
	"context"
	"fmt"
	"time"

	"buddyai/internal/domain"
	"buddyai/internal/store"
	"github.com/google/uuid"
)

type noteService struct {
	store store.Store
}

func NewNoteService(st store.Store) NoteService {
	return &noteService{store: st}
}

func (s *noteService) Create(ctx context.Context, n *domain.Note) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if n.Date == "" {
		n.Date = now.Format("2006-01-02")
	}
	if !domain.ValidNoteDate(n.Date) {
		return fmt.Errorf("invalid note date %q", n.Date)
	}
	n.CreatedAt = now
	n.UpdatedAt = now

	notes, err := s.store.Notes(ctx)
	if err != nil {
		return err
	}
	notes = append(notes, *n)
	return s.store.SaveNotes(ctx, notes)
}

func (s *noteService) Update(ctx context.Context, n *domain.Note) error {
	if !domain.ValidNoteDate(n.Date) {
		return fmt.Errorf("invalid note date %q", n.Date)
	}
	notes, err := s.store.Notes(ctx)
	if err != nil {
		return err
	}
	for i := range notes {
		if notes[i].ID == n.ID {
			n.CreatedAt = notes[i].CreatedAt
			n.UpdatedAt = time.Now().UTC()
			notes[i] = *n
			return s.store.SaveNotes(ctx, notes)
		}
	}
	return fmt.Errorf("note %s: %w", n.ID, ErrNotFound)
}

func (s *noteService) List(ctx context.Context) ([]domain.Note, error) {
	return s.store.Notes(ctx)
}

func (s *noteService) ListByDate(ctx context.Context, date string) ([]domain.Note, error) {
	if !domain.ValidNoteDate(date) {
		return nil, fmt.Errorf("invalid note date %q", date)
	}
	notes, err := s.store.Notes(ctx)
	if err != nil {
		return nil, err
	}
	var matched []domain.Note
	for _, n := range notes {
		if n.Date == date {
			matched = append(matched, n)
		}
	}
	return matched, nil
}

func (s *noteService) ListByRange(ctx context.Context, from, to string) ([]domain.Note, error) {
	if !domain.ValidNoteDate(from) {
		return nil, fmt.Errorf("invalid note date %q", from)
	}
	if !domain.ValidNoteDate(to) {
		return nil, fmt.Errorf("invalid note date %q", to)
	}
	notes, err := s.store.Notes(ctx)
	if err != nil {
		return nil, err
	}
	// Dates are YYYY-MM-DD, so string comparison is chronological.
	var matched []domain.Note
	for _, n := range notes {
		if n.Date >= from && n.Date <= to {
			matched = append(matched, n)
		}
	}
	return matched, nil
}

func (s *noteService) Remove(ctx context.Context, id string) error {
	notes, err := s.store.Notes(ctx)
	if err != nil {
		return err
	}
	kept := notes[:0]
	found := false
	for _, n := range notes {
		if n.ID == id {
			found = true
			continue
		}
		kept = append(kept, n)
	}
	if !found {
		return fmt.Errorf("note %s: %w", id, ErrNotFound)
	}
	return s.store.SaveNotes(ctx, kept)
}
