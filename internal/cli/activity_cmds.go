package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/activity"
)

func newActivitiesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activities",
		Aliases: []string{"schedule"},
		Short:   "Manage the daily schedule",
	}
	cmd.AddCommand(
		newActivitiesListCmd(app),
		newActivitiesAddCmd(app),
		newActivitiesRmCmd(app),
	)
	return cmd
}

func newActivitiesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List scheduled activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := app.Activities.Refresh(cmd.Context())
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), renderError(err))
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderActivities(activities))
			return nil
		},
	}
}

func newActivitiesAddCmd(app *App) *cobra.Command {
	var date, at string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Schedule an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := app.Activities.Add(cmd.Context(), activity.AddInput{
				Name: args[0],
				Date: date,
				Time: at,
			})
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), renderError(err))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "scheduled %s at %s (%s)\n", created.Name, created.Time, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date, YYYY-MM-DD")
	cmd.Flags().StringVar(&at, "time", "", "time, HH:MM")
	_ = cmd.MarkFlagRequired("time")
	return cmd
}

func newActivitiesRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Activities.Refresh(cmd.Context()); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), renderError(err))
				return err
			}
			if err := app.Activities.Delete(cmd.Context(), args[0]); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), renderError(err))
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "removed", args[0])
			return nil
		},
	}
}
