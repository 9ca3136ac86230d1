package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"buddyai/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newFocusCmd(app *App) *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Run or record focus sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("no terminal attached; use 'focus log --minutes N' instead")
			}

			if !cmd.Flags().Changed("minutes") {
				length := strconv.Itoa(minutes)
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewInput().
							Title("Session length (minutes)").
							Value(&length).
							Validate(validatePositiveInt),
					),
				).WithTheme(buddyHuhTheme()).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
				minutes, _ = strconv.Atoi(strings.TrimSpace(length))
			}

			model := newFocusModel(minutes)
			p := tea.NewProgram(model)
			final, err := p.Run()
			if err != nil {
				return err
			}

			m := final.(focusModel)
			if !m.finished {
				fmt.Println(formatter.Dim("Session abandoned, nothing recorded."))
				return nil
			}

			session, err := app.Sessions.Record(context.Background(), minutes)
			if err != nil {
				return err
			}
			fmt.Printf("Focus session recorded: %s\n", formatter.FormatMinutes(session.Duration))
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 25, "Session length in minutes")

	cmd.AddCommand(
		newFocusLogCmd(app),
		newFocusListCmd(app),
	)

	return cmd
}

func newFocusLogCmd(app *App) *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record an already-completed focus session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if minutes <= 0 {
				return fmt.Errorf("minutes must be positive")
			}
			session, err := app.Sessions.Record(context.Background(), minutes)
			if err != nil {
				return err
			}
			fmt.Printf("Focus session recorded: %s\n", formatter.FormatMinutes(session.Duration))
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 25, "Session length in minutes")

	return cmd
}

func newFocusListCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show recorded focus sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sessions, err := app.Sessions.List(ctx)
			if err != nil {
				return err
			}
			total, err := app.Sessions.TotalMinutes(ctx, days)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FocusSummary(sessions, total))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Window for the total, in days")

	return cmd
}

type focusTickMsg time.Time

// focusModel is the countdown timer shown during an interactive session.
type focusModel struct {
	total     time.Duration
	remaining time.Duration
	finished  bool
}

func newFocusModel(minutes int) focusModel {
	d := time.Duration(minutes) * time.Minute
	return focusModel{total: d, remaining: d}
}

func focusTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return focusTickMsg(t)
	})
}

func (m focusModel) Init() tea.Cmd {
	return focusTick()
}

func (m focusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case focusTickMsg:
		m.remaining -= time.Second
		if m.remaining <= 0 {
			m.remaining = 0
			m.finished = true
			return m, tea.Quit
		}
		return m, focusTick()
	}
	return m, nil
}

func (m focusModel) View() string {
	elapsed := m.total - m.remaining
	pct := float64(elapsed) / float64(m.total)

	mins := int(m.remaining.Minutes())
	secs := int(m.remaining.Seconds()) % 60

	return fmt.Sprintf("\n  %s  %s\n\n  %s\n",
		formatter.Bold(fmt.Sprintf("%02d:%02d", mins, secs)),
		formatter.RenderProgress(pct, 24),
		formatter.Dim("q to abandon"),
	)
}
