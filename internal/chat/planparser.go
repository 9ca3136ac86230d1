package chat

import (
	"fmt"
	"regexp"
	"strings"

	"buddyai/internal/domain"
	"github.com/google/uuid"
)

var (
	stepPrefixRe  = regexp.MustCompile(`(?i)^(week|day|step)\s*\d*:?\s*`)
	parenDurRe    = regexp.MustCompile(`(?i)\(\d+\s*(week|day)s?\)`)
	leadingNumRe  = regexp.MustCompile(`^\d+\.\s*`)
	leadingDashRe = regexp.MustCompile(`^-\s*`)
	weekDurRe     = regexp.MustCompile(`(?i)(\d+)\s*weeks?`)
	dayDurRe      = regexp.MustCompile(`(?i)(\d+)\s*days?`)
	digitStartRe  = regexp.MustCompile(`^\d+\.`)
	numberRe      = regexp.MustCompile(`\d+`)
)

// LooksLikePlan reports whether pasted text is parseable as a plan: at least
// three non-blank lines, one of which carries a step marker.
func LooksLikePlan(text string) bool {
	lines := nonBlankLines(text)
	if len(lines) < 3 {
		return false
	}
	for _, line := range lines {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "day ") || strings.Contains(lower, "week ") || strings.Contains(lower, "step ") {
			return true
		}
		trimmed := strings.TrimSpace(line)
		if digitStartRe.MatchString(trimmed) || strings.HasPrefix(trimmed, "-") {
			return true
		}
	}
	return false
}

func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ParseCustomPlan segments a pasted multi-line plan into a roadmap: marker
// prefixes are stripped, per-step durations inferred, and the aggregate
// duration summed with day-denominated steps rounded up to whole weeks.
func ParseCustomPlan(text string) *domain.Roadmap {
	lines := nonBlankLines(text)

	title := "Custom Learning Plan"
	if len(lines) > 0 {
		first := strings.TrimSpace(lines[0])
		if len(first) <= 50 {
			if stripped := strings.TrimSpace(stepPrefixRe.ReplaceAllString(first, "")); stripped != "" {
				title = stripped
			}
		}
	}

	var steps []domain.RoadmapStep
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) < 5 {
			continue
		}

		duration := "1 week"
		if m := weekDurRe.FindStringSubmatch(trimmed); m != nil {
			duration = fmt.Sprintf("%s week%s", m[1], plural(m[1]))
		} else if m := dayDurRe.FindStringSubmatch(trimmed); m != nil {
			duration = fmt.Sprintf("%s day%s", m[1], plural(m[1]))
		}

		stepTitle := trimmed
		stepTitle = stepPrefixRe.ReplaceAllString(stepTitle, "")
		stepTitle = parenDurRe.ReplaceAllString(stepTitle, "")
		stepTitle = leadingNumRe.ReplaceAllString(stepTitle, "")
		stepTitle = leadingDashRe.ReplaceAllString(stepTitle, "")
		stepTitle = strings.TrimSpace(stepTitle)
		if len(stepTitle) < 3 {
			continue
		}

		description := fmt.Sprintf("Focus on %s", strings.ToLower(stepTitle))
		if len(stepTitle) > 50 {
			description = stepTitle[:50] + "..."
		}

		if len(stepTitle) > 60 {
			stepTitle = stepTitle[:60] + "..."
		}

		steps = append(steps, domain.RoadmapStep{
			ID:          uuid.New().String(),
			Title:       stepTitle,
			Description: description,
			Duration:    duration,
		})
	}

	// Degrade to a single placeholder rather than failing on unusable input.
	if len(steps) == 0 {
		steps = append(steps, domain.RoadmapStep{
			ID:          uuid.New().String(),
			Title:       "Getting Started",
			Description: "Begin your custom learning journey",
			Duration:    "1 week",
		})
	}

	totalWeeks := 0
	for _, s := range steps {
		totalWeeks += durationWeeks(s.Duration)
	}

	return &domain.Roadmap{
		Title:       title,
		Description: fmt.Sprintf("Custom roadmap with %d steps", len(steps)),
		Category:    "Custom",
		Difficulty:  domain.DifficultyIntermediate,
		Duration:    fmt.Sprintf("%d week%s", totalWeeks, intPlural(totalWeeks)),
		Progress:    0,
		Completed:   false,
		Steps:       steps,
	}
}

// durationWeeks converts a step duration string to whole weeks, rounding
// day-denominated durations up.
func durationWeeks(duration string) int {
	m := numberRe.FindString(duration)
	if strings.Contains(duration, "week") {
		if m == "" {
			return 1
		}
		return atoiOr(m, 1)
	}
	days := atoiOr(m, 7)
	return (days + 6) / 7
}

func atoiOr(s string, fallback int) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return fallback
		}
		n = n*10 + int(c-'0')
	}
	if s == "" {
		return fallback
	}
	return n
}

func intPlural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
