package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"buddyai/internal/cli/formatter"
	"buddyai/internal/domain"
	"github.com/spf13/cobra"
)

func newNoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage journal notes",
	}

	cmd.AddCommand(
		newNoteAddCmd(app),
		newNoteListCmd(app),
		newNoteShowCmd(app),
		newNoteRemoveCmd(app),
	)

	return cmd
}

func newNoteAddCmd(app *App) *cobra.Command {
	var (
		content, date, mood string
		tags, outcomes      []string
	)

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Create a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().UTC().Format("2006-01-02")
			}

			n := &domain.Note{
				Title:    args[0],
				Content:  content,
				Date:     date,
				Mood:     domain.Mood(mood),
				Tags:     tags,
				Outcomes: outcomes,
			}

			if err := app.Notes.Create(context.Background(), n); err != nil {
				return err
			}

			fmt.Printf("Created note %s (%s)\n", n.Title, formatter.TruncID(n.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "Note body")
	cmd.Flags().StringVar(&date, "date", "", "Note date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&mood, "mood", "", "Mood (great, good, okay, bad, terrible)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tags (repeatable)")
	cmd.Flags().StringSliceVar(&outcomes, "outcome", nil, "Outcomes achieved (repeatable)")

	return cmd
}

func newNoteListCmd(app *App) *cobra.Command {
	var date, from, to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var (
				notes []domain.Note
				err   error
			)
			switch {
			case date != "":
				notes, err = app.Notes.ListByDate(ctx, date)
			case from != "" || to != "":
				if from == "" || to == "" {
					return fmt.Errorf("--from and --to must be given together")
				}
				notes, err = app.Notes.ListByRange(ctx, from, to)
			default:
				notes, err = app.Notes.List(ctx)
			}
			if err != nil {
				return err
			}

			fmt.Println(formatter.NoteList(notes))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Only notes for this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD, inclusive)")

	return cmd
}

func newNoteShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a note's full content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveNoteID(ctx, app, args[0])
			if err != nil {
				return err
			}
			notes, err := app.Notes.List(ctx)
			if err != nil {
				return err
			}
			for i := range notes {
				if notes[i].ID == id {
					fmt.Println(formatter.NoteDetail(&notes[i]))
					return nil
				}
			}
			return fmt.Errorf("note %q not found", strings.TrimSpace(args[0]))
		},
	}
}

func newNoteRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveNoteID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Notes.Remove(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed note %s\n", formatter.TruncID(id))
			return nil
		},
	}
}
