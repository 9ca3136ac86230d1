package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"buddyai/internal/domain"
)

func (s *SQLiteStore) Notes(ctx context.Context) ([]domain.Note, error) {
	query := `SELECT id, title, content, date, mood, tags, outcomes, created_at, updated_at
		FROM notes ORDER BY position`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		var n domain.Note
		var tags, outcomes, createdAt, updatedAt string
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Date, &n.Mood,
			&tags, &outcomes, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		n.Tags = jsonToStrings(tags)
		n.Outcomes = jsonToStrings(outcomes)
		if n.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing note created_at: %w", err)
		}
		if n.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
			return nil, fmt.Errorf("parsing note updated_at: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}
	return notes, nil
}

func (s *SQLiteStore) SaveNotes(ctx context.Context, notes []domain.Note) error {
	return s.replaceAll(ctx, "notes", func(tx *sql.Tx) error {
		query := `INSERT INTO notes (id, title, content, date, mood, tags, outcomes,
			created_at, updated_at, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		for i, n := range notes {
			if _, err := tx.ExecContext(ctx, query,
				n.ID,
				n.Title,
				n.Content,
				n.Date,
				string(n.Mood),
				stringsToJSON(n.Tags),
				stringsToJSON(n.Outcomes),
				n.CreatedAt.Format(time.RFC3339),
				n.UpdatedAt.Format(time.RFC3339),
				i,
			); err != nil {
				return fmt.Errorf("inserting note %s: %w", n.ID, err)
			}
		}
		return nil
	})
}

func (s *SQLiteStore) Sessions(ctx context.Context) ([]domain.FocusSession, error) {
	query := `SELECT ended_at, duration FROM sessions ORDER BY position`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.FocusSession
	for rows.Next() {
		var fs domain.FocusSession
		var endedAt string
		if err := rows.Scan(&endedAt, &fs.Duration); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		if fs.EndedAt, err = time.Parse(time.RFC3339, endedAt); err != nil {
			return nil, fmt.Errorf("parsing session ended_at: %w", err)
		}
		sessions = append(sessions, fs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

func (s *SQLiteStore) SaveSessions(ctx context.Context, sessions []domain.FocusSession) error {
	return s.replaceAll(ctx, "sessions", func(tx *sql.Tx) error {
		query := `INSERT INTO sessions (ended_at, duration, position) VALUES (?, ?, ?)`
		for i, fs := range sessions {
			if _, err := tx.ExecContext(ctx, query,
				fs.EndedAt.Format(time.RFC3339), fs.Duration, i); err != nil {
				return fmt.Errorf("inserting session: %w", err)
			}
		}
		return nil
	})
}
