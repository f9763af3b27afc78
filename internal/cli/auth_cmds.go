package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/auth"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Auth.Login(cmd.Context(), auth.LoginInput{Email: email, Password: password})
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), renderError(err))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", email)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(cmd.Context()); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), renderError(err))
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newRegisterCmd(app *App) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Auth.Register(cmd.Context(), auth.RegisterInput{Email: email, Password: password})
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), renderError(err))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "account %s created, run `ezlife login` to start\n", email)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
