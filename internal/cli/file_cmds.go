package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/file"
)

func newFilesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Manage uploaded files",
	}
	cmd.AddCommand(
		newFilesListCmd(app),
		newFilesUploadCmd(app),
		newFilesGetCmd(app),
		newFilesURLCmd(app),
		newFilesRmCmd(app),
	)
	return cmd
}

func newFilesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your files",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.Files.List(cmd.Context())
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), renderError(err))
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderFiles(records))
			return nil
		},
	}
}

func newFilesUploadCmd(app *App) *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   "upload <path>",
		Short: "Upload a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("cannot open %s: %w", args[0], err)
			}
			defer f.Close()
			info, err := f.Stat()
			if err != nil {
				return fmt.Errorf("cannot stat %s: %w", args[0], err)
			}

			record, err := app.Files.Upload(cmd.Context(), file.UploadInput{
				Filename:    filepath.Base(args[0]),
				Size:        info.Size(),
				Description: description,
				Content:     f,
			})
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), renderError(err))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s as %s\n", record.OriginalFilename, record.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "file description")
	return cmd
}

func newFilesGetCmd(app *App) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Download a file's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := app.Files.Download(cmd.Context(), args[0])
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), renderError(err))
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(content)
				return err
			}
			if err := os.WriteFile(output, content, 0o644); err != nil {
				return fmt.Errorf("cannot write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %d bytes to %s\n", len(content), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func newFilesURLCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "url <id>",
		Short: "Print a file's shareable download link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), app.Files.DownloadURL(args[0]))
			return nil
		},
	}
}

func newFilesRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an uploaded file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Files.Delete(cmd.Context(), args[0]); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), renderError(err))
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted", args[0])
			return nil
		},
	}
}
