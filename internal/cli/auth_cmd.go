package cli

import (
	"fmt"

	"buddyai/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the sync identity",
	}

	cmd.AddCommand(
		newAuthLoginCmd(app),
		newAuthLogoutCmd(app),
		newAuthWhoamiCmd(app),
	)

	return cmd
}

func newAuthLoginCmd(app *App) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login USER_ID",
		Short: "Sign in and enable cloud sync",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Auth.SignIn(args[0], email)
			if err != nil {
				return err
			}
			fmt.Printf("Signed in as %s. Sync takes effect on the next run.\n", formatter.Bold(s.UserID))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")

	return cmd
}

func newAuthLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and return to local-only storage",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.SignOut(); err != nil {
				return err
			}
			fmt.Println("Signed out.")
			return nil
		},
	}
}

func newAuthWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Auth.Current()
			if err != nil {
				return err
			}
			if s == nil {
				fmt.Println(formatter.Dim("Not signed in. Data stays local."))
				return nil
			}
			fmt.Printf("%s  %s\n", formatter.Bold(s.UserID), formatter.Dim(s.Email))
			return nil
		},
	}
}
