package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveTaskID resolves a task identifier which can be a full UUID or a
// unique prefix of one.
func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	tasks, err := app.Tasks.List(ctx)
	if err != nil {
		return "", err
	}
	var matches []string
	for i := range tasks {
		if tasks[i].ID == input {
			return input, nil
		}
		if strings.HasPrefix(tasks[i].ID, input) {
			matches = append(matches, tasks[i].ID)
		}
	}
	return pickMatch("task", input, matches)
}

// resolveRoadmapID resolves a roadmap identifier by UUID or unique prefix.
func resolveRoadmapID(ctx context.Context, app *App, input string) (string, error) {
	roadmaps, err := app.Roadmaps.List(ctx)
	if err != nil {
		return "", err
	}
	var matches []string
	for i := range roadmaps {
		if roadmaps[i].ID == input {
			return input, nil
		}
		if strings.HasPrefix(roadmaps[i].ID, input) {
			matches = append(matches, roadmaps[i].ID)
		}
	}
	return pickMatch("roadmap", input, matches)
}

// resolveNoteID resolves a note identifier by UUID or unique prefix.
func resolveNoteID(ctx context.Context, app *App, input string) (string, error) {
	notes, err := app.Notes.List(ctx)
	if err != nil {
		return "", err
	}
	var matches []string
	for i := range notes {
		if notes[i].ID == input {
			return input, nil
		}
		if strings.HasPrefix(notes[i].ID, input) {
			matches = append(matches, notes[i].ID)
		}
	}
	return pickMatch("note", input, matches)
}

func pickMatch(kind, input string, matches []string) (string, error) {
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("%s %q not found", kind, input)
	default:
		return "", fmt.Errorf("%s ID %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}
