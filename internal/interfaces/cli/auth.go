package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Sign in with a demo account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := app.Sessions.Login(cmd.Context(), args[0], args[1]).Wait()
			if !result.OK {
				fmt.Fprintln(cmd.OutOrStdout(), result.Reason)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", result.Session.DisplayName)
			return nil
		},
	}
}

func newRegisterCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "register <email> <password> <name>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := app.Sessions.Register(cmd.Context(), args[0], args[1], args[2]).Wait()
			if !result.OK {
				fmt.Fprintln(cmd.OutOrStdout(), result.Reason)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s\n", result.Session.Email)
			return nil
		},
	}
}

func newLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Sessions.Logout(cmd.Context())
			return nil
		},
	}
}

func newWhoamiCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, ok := app.Sessions.Current()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return nil
			}
			role := "customer"
			if session.Admin {
				role = "admin"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (%s)\n", session.DisplayName, session.Email, role)
			return nil
		},
	}
}
