package domain

import (
	"math"
	"time"
)

// Stats holds the gamification counters. LastActiveDay is a day-floored
// timestamp (local midnight); nil means no activity recorded yet.
type Stats struct {
	XP            int        `json:"xp"`
	Level         int        `json:"level"`
	Streak        int        `json:"streak"`
	LastActiveDay *time.Time `json:"lastActiveDay"`
}

// NewStats returns the zero-progress starting state.
func NewStats() *Stats {
	return &Stats{XP: 0, Level: 1, Streak: 0}
}

// NextLevelXP returns the XP required to reach the next level.
func (s *Stats) NextLevelXP() int {
	return 100 + (s.Level-1)*25
}

// LevelProgress returns how far into the current level the XP is, 0-100.
func (s *Stats) LevelProgress() int {
	p := int(math.Round(100 * float64(s.XP) / float64(s.NextLevelXP())))
	if p > 100 {
		p = 100
	}
	return p
}

// AddXP awards XP at the given moment, carrying overflow into level-ups and
// updating the daily streak: unchanged on a same-day award, +1 on a
// consecutive day, reset to 1 after a gap.
func (s *Stats) AddXP(amount int, now time.Time) {
	s.XP += amount
	for s.XP >= s.NextLevelXP() {
		s.XP -= s.NextLevelXP()
		s.Level++
	}

	today := DayFloor(now)
	if s.LastActiveDay == nil {
		s.Streak = 1
	} else {
		switch days := daysBetween(*s.LastActiveDay, today); {
		case days == 1:
			s.Streak++
		case days > 1:
			s.Streak = 1
		}
	}
	s.LastActiveDay = &today
}

// CurrentStreak returns the streak as of now: the stored value while the last
// active day is today or yesterday, otherwise zero.
func (s *Stats) CurrentStreak(now time.Time) int {
	if s.LastActiveDay == nil {
		return 0
	}
	if daysBetween(*s.LastActiveDay, DayFloor(now)) <= 1 {
		return s.Streak
	}
	return 0
}

// DayFloor truncates t to midnight in its own location.
func DayFloor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
