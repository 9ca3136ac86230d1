package cli

import (
	"context"
	"fmt"
	"strings"

	"buddyai/internal/cli/formatter"
	"buddyai/internal/domain"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(settingsView(s))
			return nil
		},
	}

	cmd.AddCommand(newSettingsSetCmd(app))

	return cmd
}

func settingsView(s *domain.Settings) string {
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim(fmt.Sprintf("%-14s", label)), value))
	}

	row("BOT NAME", formatter.Bold(s.BotName))
	row("TONE", string(s.Tone))
	row("GAMIFICATION", onOff(s.Gamification))
	row("REMINDERS", onOff(s.Reminders))
	row("NOTIFICATIONS", onOff(s.Notifications))
	row("THEME", s.ThemeColor)
	if len(s.ReminderTimes) > 0 {
		row("REMIND AT", strings.Join(s.ReminderTimes, ", "))
	}

	return formatter.RenderBox("settings", strings.TrimRight(b.String(), "\n"))
}

func onOff(v bool) string {
	if v {
		return formatter.StyleGreen.Render("on")
	}
	return formatter.StyleDim.Render("off")
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var (
		botName, tone, theme    string
		gamification, reminders string
		notifications           string
		reminderTimes           []string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			if botName != "" {
				s.BotName = botName
			}
			if tone != "" {
				s.Tone = domain.Tone(tone)
			}
			if theme != "" {
				s.ThemeColor = theme
			}
			if gamification != "" {
				v, err := parseOnOff(gamification)
				if err != nil {
					return fmt.Errorf("--gamification: %w", err)
				}
				s.Gamification = v
			}
			if reminders != "" {
				v, err := parseOnOff(reminders)
				if err != nil {
					return fmt.Errorf("--reminders: %w", err)
				}
				s.Reminders = v
			}
			if notifications != "" {
				v, err := parseOnOff(notifications)
				if err != nil {
					return fmt.Errorf("--notifications: %w", err)
				}
				s.Notifications = v
			}
			if len(reminderTimes) > 0 {
				s.ReminderTimes = reminderTimes
			}

			if err := app.Settings.Update(ctx, s); err != nil {
				return err
			}

			fmt.Println(settingsView(s))
			return nil
		},
	}

	cmd.Flags().StringVar(&botName, "bot-name", "", "Assistant display name")
	cmd.Flags().StringVar(&tone, "tone", "", "Assistant tone (Friendly, Mentor, Strict Coach, Chill Buddy)")
	cmd.Flags().StringVar(&theme, "theme", "", "Theme color")
	cmd.Flags().StringVar(&gamification, "gamification", "", "Enable XP and streaks (on/off)")
	cmd.Flags().StringVar(&reminders, "reminders", "", "Enable reminders (on/off)")
	cmd.Flags().StringVar(&notifications, "notifications", "", "Enable notifications (on/off)")
	cmd.Flags().StringSliceVar(&reminderTimes, "remind-at", nil, "Reminder times, HH:MM (repeatable)")

	return cmd
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}
