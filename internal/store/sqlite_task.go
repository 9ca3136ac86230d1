package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"buddyai/internal/domain"
)

func (s *SQLiteStore) Tasks(ctx context.Context) ([]domain.Task, error) {
	query := `SELECT id, title, done, status, priority, category, notes, due_date,
		created_at, completed_at, paused_at, roadmap_id, roadmap_step_id
		FROM tasks ORDER BY position`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		var done int
		var dueDate, completedAt, pausedAt sql.NullString
		var createdAt string
		if err := rows.Scan(&t.ID, &t.Title, &done, &t.Status, &t.Priority, &t.Category,
			&t.Notes, &dueDate, &createdAt, &completedAt, &pausedAt,
			&t.RoadmapID, &t.RoadmapStepID); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		t.Done = intToBool(done)
		t.DueDate = parseNullableTime(dueDate, time.RFC3339)
		t.CompletedAt = parseNullableTime(completedAt, time.RFC3339)
		t.PausedAt = parseNullableTime(pausedAt, time.RFC3339)
		if t.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing task created_at: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (s *SQLiteStore) SaveTasks(ctx context.Context, tasks []domain.Task) error {
	return s.replaceAll(ctx, "tasks", func(tx *sql.Tx) error {
		query := `INSERT INTO tasks (id, title, done, status, priority, category, notes,
			due_date, created_at, completed_at, paused_at, roadmap_id, roadmap_step_id, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		for i, t := range tasks {
			if _, err := tx.ExecContext(ctx, query,
				t.ID,
				t.Title,
				boolToInt(t.Done),
				string(t.Status),
				string(t.Priority),
				t.Category,
				t.Notes,
				nullableTimeToString(t.DueDate, time.RFC3339),
				t.CreatedAt.Format(time.RFC3339),
				nullableTimeToString(t.CompletedAt, time.RFC3339),
				nullableTimeToString(t.PausedAt, time.RFC3339),
				t.RoadmapID,
				t.RoadmapStepID,
				i,
			); err != nil {
				return fmt.Errorf("inserting task %s: %w", t.ID, err)
			}
		}
		return nil
	})
}
