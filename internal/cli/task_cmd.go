package cli

import (
	"context"
	"fmt"
	"time"

	"buddyai/internal/cli/formatter"
	"buddyai/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskDoneCmd(app),
		newTaskPauseCmd(app),
		newTaskResumeCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var (
		title, priority, category, due, notes string
	)

	cmd := &cobra.Command{
		Use:   "add [TITLE]",
		Short: "Create a new task",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				title = args[0]
			}

			if title == "" && app.interactive() {
				if err := taskAddForm(&title, &priority, &category, &due).Run(); err != nil {
					return err
				}
			}
			if title == "" {
				return fmt.Errorf("a task title is required")
			}

			task := &domain.Task{
				Title:    title,
				Status:   domain.TaskActive,
				Priority: domain.Priority(priority),
				Category: category,
				Notes:    notes,
			}
			if due != "" {
				d, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("parsing due date: %w", err)
				}
				task.DueDate = &d
			}

			if err := app.Tasks.Create(context.Background(), task); err != nil {
				return err
			}

			fmt.Printf("Created task %s (%s)\n", task.Title, formatter.TruncID(task.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&priority, "priority", "Medium", "Priority (Low, Medium, High)")
	cmd.Flags().StringVar(&category, "category", "", "Task category")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	return cmd
}

func taskAddForm(title, priority, category, due *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Read chapter 3").
				Value(title).
				Validate(validateRequired("title")),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("High", "High"),
					huh.NewOption("Medium", "Medium"),
					huh.NewOption("Low", "Low"),
				).
				Value(priority),
			huh.NewInput().
				Title("Category (blank for none)").
				Placeholder("Learning").
				Value(category),
			huh.NewInput().
				Title("Due date (YYYY-MM-DD, blank for none)").
				Placeholder("2026-09-30").
				Value(due).
				Validate(validateOptionalDate),
		),
	).WithTheme(buddyHuhTheme()).WithShowHelp(false)
}

func newTaskListCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(context.Background())
			if err != nil {
				return err
			}

			if status != "" {
				if !domain.ValidTaskStatuses[status] {
					return fmt.Errorf("unknown status %q", status)
				}
				filtered := tasks[:0]
				for _, t := range tasks {
					if string(t.Status) == status {
						filtered = append(filtered, t)
					}
				}
				tasks = filtered
			}

			fmt.Println(formatter.TaskList(tasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (active, paused, completed)")

	return cmd
}

func newTaskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			task, err := app.Tasks.Get(ctx, id)
			if err != nil {
				return err
			}
			fmt.Println(formatter.TaskDetail(task))
			return nil
		},
	}
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Toggle task completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			task, err := app.Tasks.Toggle(ctx, id)
			if err != nil {
				return err
			}
			fmt.Println(formatter.TaskLine(task))
			return nil
		},
	}
}

func newTaskPauseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pause ID",
		Short: "Pause a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			task, err := app.Tasks.Pause(ctx, id)
			if err != nil {
				return err
			}
			fmt.Println(formatter.TaskLine(task))
			return nil
		},
	}
}

func newTaskResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume ID",
		Short: "Resume a paused task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			task, err := app.Tasks.Resume(ctx, id)
			if err != nil {
				return err
			}
			fmt.Println(formatter.TaskLine(task))
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Remove(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed task %s\n", formatter.TruncID(id))
			return nil
		},
	}
}
