// Package cli is the hosting shell: it wires the client components into
// cobra commands and renders their results. It holds no domain logic of its
// own.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/activity"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/auth"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/file"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/settings"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/task"
	pkgLog "github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/pkg/log"
)

// App bundles the wired client components the commands act on.
type App struct {
	L          pkgLog.Logger
	Auth       auth.UseCase
	Tasks      task.UseCase
	Activities *activity.Service
	Files      *file.Service
	Settings   *settings.Service
}

// NewRoot builds the command tree.
func NewRoot(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "ezlife",
		Short:         "EZlife task management client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newRegisterCmd(app),
		newTasksCmd(app),
		newActivitiesCmd(app),
		newFilesCmd(app),
		newSettingsCmd(app),
	)
	return root
}
