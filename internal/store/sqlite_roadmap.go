package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"buddyai/internal/domain"
)

func (s *SQLiteStore) Roadmaps(ctx context.Context) ([]domain.Roadmap, error) {
	query := `SELECT id, title, description, category, difficulty, duration,
		progress, completed, completed_at, created_at, updated_at
		FROM roadmaps ORDER BY position`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing roadmaps: %w", err)
	}
	defer rows.Close()

	var roadmaps []domain.Roadmap
	for rows.Next() {
		var r domain.Roadmap
		var completed int
		var completedAt sql.NullString
		var createdAt, updatedAt string
		if err := rows.Scan(&r.ID, &r.Title, &r.Description, &r.Category, &r.Difficulty,
			&r.Duration, &r.Progress, &completed, &completedAt, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning roadmap: %w", err)
		}
		r.Completed = intToBool(completed)
		r.CompletedAt = parseNullableTime(completedAt, time.RFC3339)
		if r.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing roadmap created_at: %w", err)
		}
		if r.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
			return nil, fmt.Errorf("parsing roadmap updated_at: %w", err)
		}
		roadmaps = append(roadmaps, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating roadmaps: %w", err)
	}

	for i := range roadmaps {
		steps, err := s.roadmapSteps(ctx, roadmaps[i].ID)
		if err != nil {
			return nil, err
		}
		roadmaps[i].Steps = steps
	}
	return roadmaps, nil
}

func (s *SQLiteStore) roadmapSteps(ctx context.Context, roadmapID string) ([]domain.RoadmapStep, error) {
	query := `SELECT id, title, description, duration, completed, completed_at
		FROM roadmap_steps WHERE roadmap_id = ? ORDER BY order_index`
	rows, err := s.db.QueryContext(ctx, query, roadmapID)
	if err != nil {
		return nil, fmt.Errorf("listing roadmap steps: %w", err)
	}
	defer rows.Close()

	var steps []domain.RoadmapStep
	for rows.Next() {
		var st domain.RoadmapStep
		var completed int
		var completedAt sql.NullString
		if err := rows.Scan(&st.ID, &st.Title, &st.Description, &st.Duration,
			&completed, &completedAt); err != nil {
			return nil, fmt.Errorf("scanning roadmap step: %w", err)
		}
		st.Completed = intToBool(completed)
		st.CompletedAt = parseNullableTime(completedAt, time.RFC3339)
		steps = append(steps, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating roadmap steps: %w", err)
	}
	return steps, nil
}

func (s *SQLiteStore) SaveRoadmaps(ctx context.Context, roadmaps []domain.Roadmap) error {
	return s.replaceAll(ctx, "roadmaps", func(tx *sql.Tx) error {
		// The cascade covers steps only when foreign keys are on for this
		// connection; clear explicitly so the replacement never depends on it.
		if _, err := tx.ExecContext(ctx, "DELETE FROM roadmap_steps"); err != nil {
			return fmt.Errorf("clearing roadmap_steps: %w", err)
		}

		roadmapQuery := `INSERT INTO roadmaps (id, title, description, category, difficulty,
			duration, progress, completed, completed_at, created_at, updated_at, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		stepQuery := `INSERT INTO roadmap_steps (id, roadmap_id, title, description,
			duration, completed, completed_at, order_index)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

		for i, r := range roadmaps {
			if _, err := tx.ExecContext(ctx, roadmapQuery,
				r.ID,
				r.Title,
				r.Description,
				r.Category,
				string(r.Difficulty),
				r.Duration,
				r.Progress,
				boolToInt(r.Completed),
				nullableTimeToString(r.CompletedAt, time.RFC3339),
				r.CreatedAt.Format(time.RFC3339),
				r.UpdatedAt.Format(time.RFC3339),
				i,
			); err != nil {
				return fmt.Errorf("inserting roadmap %s: %w", r.ID, err)
			}
			for j, st := range r.Steps {
				if _, err := tx.ExecContext(ctx, stepQuery,
					st.ID,
					r.ID,
					st.Title,
					st.Description,
					st.Duration,
					boolToInt(st.Completed),
					nullableTimeToString(st.CompletedAt, time.RFC3339),
					j,
				); err != nil {
					return fmt.Errorf("inserting roadmap step %s: %w", st.ID, err)
				}
			}
		}
		return nil
	})
}
