// Package cli wires the cobra command tree. Bare invocation starts the
// interactive TUI; subcommands expose every page scriptably with JSON or
// table output.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pamsartech/jytechinvestment-admin/internal/api"
	"github.com/pamsartech/jytechinvestment-admin/internal/config"
	"github.com/pamsartech/jytechinvestment-admin/internal/format"
	"github.com/pamsartech/jytechinvestment-admin/internal/session"
	"github.com/pamsartech/jytechinvestment-admin/internal/tui"
)

type App struct {
	PrettyJSON bool
	Format     string

	cfg  config.Config
	sess *session.Manager
	log  *log.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "jyadmin",
		Short:        "JY Tech Investment admin console (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive dashboard
  jyadmin

  # Log in first
  jyadmin login

  # Scriptable commands
  jyadmin customers list --status Active --sort name
  jyadmin payments list --search @example.com --format json
  jyadmin reports download <report-id> -o report.pdf
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		sess, err := session.NewManager()
		if err != nil {
			return err
		}
		app.cfg = cfg
		app.sess = sess
		app.log = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
		return nil
	}

	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("JYADMIN_FORMAT", "table"), "Output format (table|json)")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newDashboardCmd(app))
	cmd.AddCommand(newCustomersCmd(app))
	cmd.AddCommand(newPaymentsCmd(app))
	cmd.AddCommand(newReportsCmd(app))
	cmd.AddCommand(newPlansCmd(app))
	cmd.AddCommand(newContentCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	return tui.Run(app.cfg, app.sess)
}

func (a *App) client() *api.Client {
	return api.New(a.cfg, a.sess, a.log)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// writeOut renders v per --format: JSON for scripting, or the row form via
// toTable for human-readable output.
func writeOut(cmd *cobra.Command, app *App, v any, toTable func() ([]string, [][]string)) error {
	if app.Format == "table" {
		if toTable != nil {
			header, rows := toTable()
			return format.WriteTable(cmd.OutOrStdout(), header, rows)
		}
		// Detail payloads without a row form fall back to JSON.
		return format.Write(cmd.OutOrStdout(), v, "json", true)
	}
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
