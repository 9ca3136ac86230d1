package cli

import (
	"context"
	"fmt"

	"buddyai/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show XP, level, and streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Stats.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.StatsCard(stats))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Reset XP, level, and streak to zero",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Stats.Reset(context.Background()); err != nil {
				return err
			}
			fmt.Println("Stats reset.")
			return nil
		},
	})

	return cmd
}
