package cli

import (
	"context"
	"fmt"

	"buddyai/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRoadmapCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Manage learning roadmaps",
	}

	cmd.AddCommand(
		newRoadmapListCmd(app),
		newRoadmapShowCmd(app),
		newRoadmapTasksCmd(app),
		newRoadmapStepCmd(app),
		newRoadmapSyncCmd(app),
		newRoadmapRemoveCmd(app),
	)

	return cmd
}

func newRoadmapListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List roadmaps",
		RunE: func(cmd *cobra.Command, args []string) error {
			roadmaps, err := app.Roadmaps.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.RoadmapList(roadmaps))
			return nil
		},
	}
}

func newRoadmapShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a roadmap with its steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveRoadmapID(ctx, app, args[0])
			if err != nil {
				return err
			}
			r, err := app.Roadmaps.Get(ctx, id)
			if err != nil {
				return err
			}
			fmt.Println(formatter.RoadmapDetail(r))
			return nil
		},
	}
}

func newRoadmapTasksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks ID",
		Short: "Generate dated tasks from a roadmap's steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveRoadmapID(ctx, app, args[0])
			if err != nil {
				return err
			}
			tasks, err := app.Roadmaps.GenerateTasks(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Created %d tasks\n\n", len(tasks))
			fmt.Println(formatter.TaskList(tasks))
			return nil
		},
	}
}

func newRoadmapStepCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "step ROADMAP_ID STEP_ID",
		Short: "Mark a roadmap step complete",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveRoadmapID(ctx, app, args[0])
			if err != nil {
				return err
			}
			r, err := app.Roadmaps.CompleteStep(ctx, id, args[1])
			if err != nil {
				return err
			}
			fmt.Println(formatter.RoadmapDetail(r))
			return nil
		},
	}
}

func newRoadmapSyncCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync ID",
		Short: "Roll task completion up into roadmap progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveRoadmapID(ctx, app, args[0])
			if err != nil {
				return err
			}
			r, err := app.Roadmaps.SyncTaskCompletion(ctx, id)
			if err != nil {
				return err
			}
			fmt.Println(formatter.RoadmapSummary(r))
			return nil
		},
	}
}

func newRoadmapRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a roadmap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveRoadmapID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Roadmaps.Remove(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed roadmap %s\n", formatter.TruncID(id))
			return nil
		},
	}
}
