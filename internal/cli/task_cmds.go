package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/task"
)

var dueLayouts = []string{"2006-01-02", "2006-01-02 15:04", time.RFC3339}

func parseDue(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range dueLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("cannot parse due date %q, use YYYY-MM-DD", s)
}

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage tasks",
	}
	cmd.AddCommand(
		newTasksListCmd(app),
		newTasksAddCmd(app),
		newTasksDoneCmd(app),
		newTasksRmCmd(app),
	)
	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	var view string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks by view",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Tasks.Refresh(cmd.Context()); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), renderError(err))
				return err
			}

			now := time.Now()
			views := app.Tasks.Views(now)
			out := cmd.OutOrStdout()
			switch view {
			case "all":
				fmt.Fprint(out, renderTasks("All tasks", views.All, now))
			case "today":
				fmt.Fprint(out, renderTasks("Today", views.Today, now))
			case "upcoming":
				fmt.Fprint(out, renderTasks("Upcoming", views.Upcoming, now))
			case "overdue":
				fmt.Fprint(out, renderTasks("Overdue", views.Overdue, now))
			case "completed":
				fmt.Fprint(out, renderTasks("Completed", views.Completed, now))
			default:
				return fmt.Errorf("unknown view %q, use all|today|upcoming|overdue|completed", view)
			}
			fmt.Fprintln(out, renderStats(app.Tasks.Stats()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&view, "view", "v", "all", "all|today|upcoming|overdue|completed")
	return cmd
}

func newTasksAddCmd(app *App) *cobra.Command {
	var due string
	var estimate int
	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a task; the server estimates effort unless --estimate is given",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dueDate, err := parseDue(due)
			if err != nil {
				return err
			}
			created, err := app.Tasks.Add(cmd.Context(), task.AddInput{
				Description:      strings.Join(args, " "),
				EstimatedMinutes: estimate,
				DueDate:          dueDate,
			})
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), renderError(err))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s (~%dm)\n", created.ID, created.EstimatedMinutes)
			return nil
		},
	}
	cmd.Flags().StringVar(&due, "due", "", "due date, YYYY-MM-DD")
	cmd.Flags().IntVar(&estimate, "estimate", 0, "estimated minutes (0 lets the server decide)")
	return cmd
}

func newTasksDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Tasks.Refresh(cmd.Context()); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), renderError(err))
				return err
			}
			if err := app.Tasks.Toggle(cmd.Context(), args[0]); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), renderError(err))
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "toggled", args[0])
			return nil
		},
	}
}

func newTasksRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Tasks.Refresh(cmd.Context()); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), renderError(err))
				return err
			}
			if err := app.Tasks.Delete(cmd.Context(), args[0]); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), renderError(err))
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted", args[0])
			return nil
		},
	}
}
