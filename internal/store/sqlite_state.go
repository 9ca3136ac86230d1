package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"buddyai/internal/domain"
)

// Stats returns the gamification counters, or the zero-progress starting
// state when none have been saved yet.
func (s *SQLiteStore) Stats(ctx context.Context) (*domain.Stats, error) {
	query := `SELECT xp, level, streak, last_active_day FROM stats WHERE id = 1`
	var st domain.Stats
	var lastActive sql.NullString
	err := s.db.QueryRowContext(ctx, query).Scan(&st.XP, &st.Level, &st.Streak, &lastActive)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewStats(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading stats: %w", err)
	}
	st.LastActiveDay = parseNullableTime(lastActive, time.RFC3339)
	return &st, nil
}

func (s *SQLiteStore) SaveStats(ctx context.Context, stats *domain.Stats) error {
	query := `INSERT INTO stats (id, xp, level, streak, last_active_day)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			xp = excluded.xp,
			level = excluded.level,
			streak = excluded.streak,
			last_active_day = excluded.last_active_day`
	_, err := s.db.ExecContext(ctx, query,
		stats.XP,
		stats.Level,
		stats.Streak,
		nullableTimeToString(stats.LastActiveDay, time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving stats: %w", err)
	}
	return nil
}

// Settings returns the saved configuration, or the defaults when none have
// been saved yet.
func (s *SQLiteStore) Settings(ctx context.Context) (*domain.Settings, error) {
	query := `SELECT tone, gamification, reminders, notifications, bot_name, theme_color, reminder_times
		FROM settings WHERE id = 1`
	var st domain.Settings
	var gamification, reminders, notifications int
	var reminderTimes string
	err := s.db.QueryRowContext(ctx, query).Scan(&st.Tone, &gamification, &reminders,
		&notifications, &st.BotName, &st.ThemeColor, &reminderTimes)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	st.Gamification = intToBool(gamification)
	st.Reminders = intToBool(reminders)
	st.Notifications = intToBool(notifications)
	st.ReminderTimes = jsonToStrings(reminderTimes)
	return &st, nil
}

func (s *SQLiteStore) SaveSettings(ctx context.Context, settings *domain.Settings) error {
	query := `INSERT INTO settings (id, tone, gamification, reminders, notifications, bot_name, theme_color, reminder_times)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			tone = excluded.tone,
			gamification = excluded.gamification,
			reminders = excluded.reminders,
			notifications = excluded.notifications,
			bot_name = excluded.bot_name,
			theme_color = excluded.theme_color,
			reminder_times = excluded.reminder_times`
	_, err := s.db.ExecContext(ctx, query,
		string(settings.Tone),
		boolToInt(settings.Gamification),
		boolToInt(settings.Reminders),
		boolToInt(settings.Notifications),
		settings.BotName,
		settings.ThemeColor,
		stringsToJSON(settings.ReminderTimes),
	)
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
