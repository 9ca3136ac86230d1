package chat

import (
	"fmt"
	"strings"

	"buddyai/internal/domain"
	"github.com/google/uuid"
)

// stepCountFor derives how many template steps a timeline gets. Week-scoped
// timelines keep 4 steps, month-scoped 5, anything else (day-denominated or
// unrecognized) 6. Short timelines therefore drop the later, deeper template
// steps rather than compressing all of them; that truncation is deliberate.
func stepCountFor(timeline string) int {
	lower := strings.ToLower(timeline)
	switch {
	case strings.Contains(lower, "week"):
		return 4
	case strings.Contains(lower, "month"):
		return 5
	default:
		return 6
	}
}

// SynthesizeRoadmap builds a roadmap from extracted goal, level and timeline.
// The caller has already validated that the params are complete.
func SynthesizeRoadmap(p Params) *domain.Roadmap {
	template := selectTemplate(p.Goal)
	count := stepCountFor(p.Timeline)
	if count > len(template) {
		count = len(template)
	}

	steps := make([]domain.RoadmapStep, 0, count)
	for _, t := range template[:count] {
		steps = append(steps, domain.RoadmapStep{
			ID:          uuid.New().String(),
			Title:       t.title,
			Description: t.description,
			Duration:    t.duration,
		})
	}

	return &domain.Roadmap{
		Title: fmt.Sprintf("%s Learning Path", p.Goal),
		Description: fmt.Sprintf("A %s level roadmap to %s in %s",
			strings.ToLower(p.Level), strings.ToLower(p.Goal), p.Timeline),
		Category:   "Learning",
		Difficulty: domain.Difficulty(p.Level),
		Duration:   p.Timeline,
		Progress:   0,
		Completed:  false,
		Steps:      steps,
	}
}
