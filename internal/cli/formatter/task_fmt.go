package formatter

import (
	"fmt"
	"strings"

	"buddyai/internal/domain"
)

// TaskLine renders one task as a single list row.
func TaskLine(t *domain.Task) string {
	check := StyleDim.Render("[ ]")
	title := StyleFg.Render(t.Title)
	if t.Done {
		check = StyleGreen.Render("[x]")
		title = StyleDim.Render(t.Title)
	} else if t.Status == domain.TaskPaused {
		check = StyleYellow.Render("[~]")
	}

	var extras []string
	if t.Priority != "" {
		extras = append(extras, PriorityStyle(t.Priority).Render(string(t.Priority)))
	}
	if t.Category != "" {
		extras = append(extras, Dim(t.Category))
	}
	if t.DueDate != nil && !t.Done {
		extras = append(extras, DueDateStyled(*t.DueDate))
	}
	if t.RoadmapID != "" {
		extras = append(extras, StylePurple.Render("roadmap"))
	}

	line := fmt.Sprintf("%s %s  %s", check, title, Dim(TruncID(t.ID)))
	if len(extras) > 0 {
		line += "  " + strings.Join(extras, " · ")
	}
	return line
}

// TaskDetail renders a task with its full metadata in a box.
func TaskDetail(t *domain.Task) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n\n", Bold(t.Title), Dim(TruncID(t.ID))))

	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("  %s  %s\n", Dim(fmt.Sprintf("%-8s", label)), value))
	}

	row("STATUS", StatusPill(t.Status))
	if t.Priority != "" {
		row("PRIORITY", PriorityStyle(t.Priority).Render(string(t.Priority)))
	}
	if t.Category != "" {
		row("CATEGORY", StyleFg.Render(t.Category))
	}
	if t.DueDate != nil {
		row("DUE", DueDateStyled(*t.DueDate))
	}
	if t.RoadmapID != "" {
		row("ROADMAP", StylePurple.Render(TruncID(t.RoadmapID)))
	}
	if t.Notes != "" {
		row("NOTES", StyleFg.Render(t.Notes))
	}
	row("CREATED", Dim(RelativeDate(t.CreatedAt)))

	return RenderBox("task", strings.TrimRight(b.String(), "\n"))
}

// TaskList renders a task collection, or a placeholder when empty.
func TaskList(tasks []domain.Task) string {
	if len(tasks) == 0 {
		return Dim("No tasks yet. Add one with: buddyai task add")
	}
	var b strings.Builder
	for i := range tasks {
		b.WriteString(TaskLine(&tasks[i]))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
