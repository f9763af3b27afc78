package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and update account settings",
	}
	cmd.AddCommand(newSettingsShowCmd(app), newSettingsUpdateCmd(app))
	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the account profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.Settings.Profile(cmd.Context())
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), renderError(err))
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderProfile(profile))
			return nil
		},
	}
}

func newSettingsUpdateCmd(app *App) *cobra.Command {
	var name, phone string
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the account profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.Settings.Profile(cmd.Context())
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), renderError(err))
				return err
			}
			if cmd.Flags().Changed("name") {
				profile.Name = name
			}
			if cmd.Flags().Changed("phone") {
				profile.Phone = phone
			}

			saved, err := app.Settings.Update(cmd.Context(), profile)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), renderError(err))
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderProfile(saved))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	return cmd
}
