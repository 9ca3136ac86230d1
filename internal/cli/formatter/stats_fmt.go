package formatter

import (
	"fmt"
	"strings"

	"buddyai/internal/domain"
)

// StatsCard renders the level, XP, and streak summary box.
func StatsCard(s *domain.Stats) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n",
		Bold(fmt.Sprintf("Level %d", s.Level)),
		Dim(fmt.Sprintf("%d / %d XP", s.XP, s.NextLevelXP()))))
	b.WriteString(RenderProgress(float64(s.LevelProgress())/100, 20))
	b.WriteString("\n")

	streak := "no streak yet"
	if s.Streak == 1 {
		streak = "1 day streak 🔥"
	} else if s.Streak > 1 {
		streak = fmt.Sprintf("%d day streak 🔥", s.Streak)
	}
	b.WriteString(StyleYellow.Render(streak))

	return RenderBox("stats", b.String())
}

// FocusSummary renders recorded focus sessions with the total time.
func FocusSummary(sessions []domain.FocusSession, totalMinutes int) string {
	if len(sessions) == 0 {
		return Dim("No focus sessions yet. Start one with: buddyai focus")
	}
	var b strings.Builder
	for i := range sessions {
		s := &sessions[i]
		b.WriteString(fmt.Sprintf("%s  %s\n",
			StyleFg.Render(fmt.Sprintf("%3d min", s.Duration)),
			Dim(RelativeDate(s.EndedAt))))
	}
	b.WriteString(Dim(fmt.Sprintf("total %s", FormatMinutes(totalMinutes))))
	return strings.TrimRight(b.String(), "\n")
}

// FormatMinutes renders a minute count as "Xh Ym" or "Ym".
func FormatMinutes(minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}
