package cli

import (
	"context"
	"fmt"
	"strings"

	"buddyai/internal/chat"
	"buddyai/internal/cli/formatter"
	"buddyai/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat [MESSAGE]",
		Short: "Talk to your productivity buddy",
		Long: "Chat with the assistant. Ask for a learning roadmap (\"I want to learn " +
			"Python in 3 months\") or paste your own week-by-week plan to import it.\n" +
			"With a MESSAGE argument the reply is printed once; without one an " +
			"interactive session opens.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return chatOnce(app, strings.Join(args, " "))
			}
			if !app.interactive() {
				return fmt.Errorf("no terminal attached; pass a message argument instead")
			}

			settings, err := app.Settings.Get(context.Background())
			if err != nil {
				return err
			}

			p := tea.NewProgram(newChatModel(app, settings.BotName), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}

// chatOnce runs a single stateless turn and prints the reply.
func chatOnce(app *App, text string) error {
	reply, err := app.Chat.Send(context.Background(), nil, text)
	if err != nil {
		return err
	}

	fmt.Println(reply.Text)
	if reply.Roadmap != nil {
		fmt.Println()
		fmt.Println(formatter.RoadmapSummary(reply.Roadmap))
		if reply.TasksCreated > 0 {
			fmt.Println(formatter.Dim(fmt.Sprintf("%d tasks added to your list", reply.TasksCreated)))
		}
	}
	return nil
}

// chatReplyMsg carries the outcome of a chat turn back into the TUI.
type chatReplyMsg struct {
	reply *service.ChatReply
	err   error
}

func sendChatTurn(app *App, history []chat.Message, text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := app.Chat.Send(context.Background(), history, text)
		return chatReplyMsg{reply: reply, err: err}
	}
}
