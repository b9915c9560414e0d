package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newContentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Site content commands (legal documents, tutorial video)",
	}
	cmd.AddCommand(newContentShowCmd(app))
	cmd.AddCommand(newContentSetTermsCmd(app))
	cmd.AddCommand(newContentSetPrivacyCmd(app))
	cmd.AddCommand(newContentUploadVideoCmd(app))
	return cmd
}

func newContentShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current site content",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := app.client().GetContent(cmd.Context())
			if err != nil {
				return writeErr(cmd, friendlyErr(err))
			}
			return writeOut(cmd, app, content, nil)
		},
	}
}

func newContentSetTermsCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "set-terms",
		Short: "Replace the terms-and-conditions document from a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(file)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := app.client().SaveTerms(cmd.Context(), string(text)); err != nil {
				return writeErr(cmd, friendlyErr(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Terms saved.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the document (markdown)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newContentSetPrivacyCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "set-privacy",
		Short: "Replace the privacy-policy document from a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(file)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := app.client().SavePrivacy(cmd.Context(), string(text)); err != nil {
				return writeErr(cmd, friendlyErr(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Privacy policy saved.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the document (markdown)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newContentUploadVideoCmd(app *App) *cobra.Command {
	var (
		title     string
		published bool
	)

	cmd := &cobra.Command{
		Use:   "upload-video <file>",
		Short: "Replace the tutorial video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if title == "" {
				title = filepath.Base(args[0])
			}
			err = app.client().UploadVideo(cmd.Context(), title, filepath.Base(args[0]), data, published)
			if err != nil {
				return writeErr(cmd, friendlyErr(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Video uploaded.")
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Video title (defaults to the file name)")
	cmd.Flags().BoolVar(&published, "published", true, "Publish immediately")
	return cmd
}
