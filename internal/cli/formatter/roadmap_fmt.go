package formatter

import (
	"fmt"
	"strings"

	"buddyai/internal/domain"
)

// RoadmapSummary renders one roadmap as a single list row.
func RoadmapSummary(r *domain.Roadmap) string {
	title := Bold(r.Title)
	if r.Completed {
		title = StyleGreen.Render(r.Title + " ✓")
	}
	return fmt.Sprintf("%s  %s\n  %s %s · %s · %d steps",
		title,
		Dim(TruncID(r.ID)),
		RenderProgress(float64(r.Progress)/100, 16),
		Dim(string(r.Difficulty)),
		Dim(r.Duration),
		len(r.Steps),
	)
}

// RoadmapDetail renders a roadmap with all its steps.
func RoadmapDetail(r *domain.Roadmap) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(r.Title), Dim(r.Category)))
	if r.Description != "" {
		b.WriteString(Dim(r.Description) + "\n")
	}
	b.WriteString(fmt.Sprintf("\n%s %s · %s\n\n",
		RenderProgress(float64(r.Progress)/100, 20),
		Dim(string(r.Difficulty)),
		Dim(r.Duration)))

	for i := range r.Steps {
		step := &r.Steps[i]
		marker := StyleDim.Render("○")
		title := StyleFg.Render(step.Title)
		if step.Completed {
			marker = StyleGreen.Render("●")
			title = StyleDim.Render(step.Title)
		}
		b.WriteString(fmt.Sprintf("  %s %s  %s\n", marker, title, Dim(step.Duration)))
		if step.Description != "" {
			b.WriteString(fmt.Sprintf("     %s\n", Dim(step.Description)))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// RoadmapList renders a roadmap collection, or a placeholder when empty.
func RoadmapList(roadmaps []domain.Roadmap) string {
	if len(roadmaps) == 0 {
		return Dim("No roadmaps yet. Ask for one with: buddyai chat")
	}
	var b strings.Builder
	for i := range roadmaps {
		b.WriteString(RoadmapSummary(&roadmaps[i]))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
