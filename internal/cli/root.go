package cli

import (
	"buddyai/internal/auth"
	"buddyai/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks    service.TaskService
	Roadmaps service.RoadmapService
	Notes    service.NoteService
	Sessions service.SessionService
	Stats    service.StatsService
	Settings service.SettingsService
	Chat     service.ChatService
	Auth     *auth.Manager

	// IsInteractive reports whether stdin/stdout are a terminal. Commands
	// fall back to flag-only behavior when it returns false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "buddyai" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "buddyai",
		Short: "Personal productivity companion",
	}

	root.AddCommand(
		newChatCmd(app),
		newTaskCmd(app),
		newRoadmapCmd(app),
		newNoteCmd(app),
		newFocusCmd(app),
		newStatsCmd(app),
		newSettingsCmd(app),
		newAuthCmd(app),
	)

	return root
}
