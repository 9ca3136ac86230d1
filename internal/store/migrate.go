package store

import (
	"database/sql"
	"fmt"
	"strings"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id              TEXT PRIMARY KEY,
		title           TEXT NOT NULL,
		done            INTEGER NOT NULL DEFAULT 0,
		status          TEXT NOT NULL CHECK(status IN ('active','paused','completed')),
		priority        TEXT NOT NULL DEFAULT '',
		category        TEXT NOT NULL DEFAULT '',
		notes           TEXT NOT NULL DEFAULT '',
		due_date        TEXT,
		created_at      TEXT NOT NULL,
		completed_at    TEXT,
		paused_at       TEXT,
		roadmap_id      TEXT NOT NULL DEFAULT '',
		roadmap_step_id TEXT NOT NULL DEFAULT '',
		position        INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_roadmap ON tasks(roadmap_id, roadmap_step_id)`,

	`CREATE TABLE IF NOT EXISTS roadmaps (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		category     TEXT NOT NULL DEFAULT '',
		difficulty   TEXT NOT NULL CHECK(difficulty IN ('Beginner','Intermediate','Advanced')),
		duration     TEXT NOT NULL DEFAULT '',
		progress     INTEGER NOT NULL DEFAULT 0,
		completed    INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL,
		position     INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS roadmap_steps (
		id           TEXT PRIMARY KEY,
		roadmap_id   TEXT NOT NULL REFERENCES roadmaps(id) ON DELETE CASCADE,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		duration     TEXT NOT NULL DEFAULT '',
		completed    INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT,
		order_index  INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_roadmap_steps_roadmap ON roadmap_steps(roadmap_id)`,

	`CREATE TABLE IF NOT EXISTS notes (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL DEFAULT '',
		content    TEXT NOT NULL,
		date       TEXT NOT NULL,
		mood       TEXT NOT NULL DEFAULT '',
		tags       TEXT NOT NULL DEFAULT '[]',
		outcomes   TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		position   INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notes_date ON notes(date)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		ended_at TEXT NOT NULL,
		duration INTEGER NOT NULL,
		position INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS stats (
		id              INTEGER PRIMARY KEY CHECK(id = 1),
		xp              INTEGER NOT NULL,
		level           INTEGER NOT NULL,
		streak          INTEGER NOT NULL,
		last_active_day TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id             INTEGER PRIMARY KEY CHECK(id = 1),
		tone           TEXT NOT NULL,
		gamification   INTEGER NOT NULL,
		reminders      INTEGER NOT NULL,
		notifications  INTEGER NOT NULL,
		bot_name       TEXT NOT NULL DEFAULT '',
		theme_color    TEXT NOT NULL DEFAULT '',
		reminder_times TEXT NOT NULL DEFAULT '[]'
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
