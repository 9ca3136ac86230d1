package formatter

import (
	"fmt"
	"strings"

	"buddyai/internal/domain"
)

func NoteLine(n *domain.Note) string {
	extras := []string{Dim(n.Date)}
	if n.Mood != "" {
		extras = append(extras, StylePurple.Render(string(n.Mood)))
	}
	if len(n.Tags) > 0 {
		extras = append(extras, StyleBlue.Render("#"+strings.Join(n.Tags, " #")))
	}
	return fmt.Sprintf("%s %s  %s", Bold(n.Title), Dim(TruncID(n.ID)), strings.Join(extras, " · "))
}

// NoteDetail renders the full note body with its metadata.
func NoteDetail(n *domain.Note) string {
	var b strings.Builder
	b.WriteString(NoteLine(n) + "\n")
	if n.Content != "" {
		b.WriteString("\n" + StyleFg.Render(n.Content) + "\n")
	}
	if len(n.Outcomes) > 0 {
		b.WriteString("\n" + StyleHeader.Render("OUTCOMES") + "\n")
		for _, o := range n.Outcomes {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleGreen.Render("✓"), StyleFg.Render(o)))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func NoteList(notes []domain.Note) string {
	if len(notes) == 0 {
		return Dim("No notes yet. Add one with: buddyai note add")
	}
	var b strings.Builder
	for i := range notes {
		b.WriteString(NoteLine(&notes[i]))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
