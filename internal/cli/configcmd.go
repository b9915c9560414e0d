package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pamsartech/jytechinvestment-admin/internal/config"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the client configuration",
	}
	cmd.AddCommand(newConfigShowCmd(app))
	cmd.AddCommand(newConfigSetCmd(app))
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := struct {
				APIBaseURL     string `json:"apiBaseUrl"`
				TimeoutSeconds int    `json:"timeoutSeconds"`
			}{app.cfg.BaseURL(), int(app.cfg.Timeout().Seconds())}
			return writeOut(cmd, app, payload, nil)
		},
	}
}

func newConfigSetCmd(app *App) *cobra.Command {
	var (
		apiURL  string
		timeout int
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Persist configuration values",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.cfg
			if cmd.Flags().Changed("api-url") {
				cfg.APIBaseURL = apiURL
			}
			if cmd.Flags().Changed("timeout") {
				cfg.TimeoutSeconds = timeout
			}
			if err := config.Save(cfg); err != nil {
				return writeErr(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved.")
			return nil
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", "", "Admin API base URL")
	cmd.Flags().IntVar(&timeout, "timeout", 0, "Request timeout in seconds")
	return cmd
}
