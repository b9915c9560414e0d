package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pamsartech/jytechinvestment-admin/internal/docs"
)

func newDocsCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show on-demand documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				topics := docs.Topics()
				return writeOut(cmd, app, map[string]any{"topics": topics}, func() ([]string, [][]string) {
					rows := make([][]string, 0, len(topics))
					for _, t := range topics {
						rows = append(rows, []string{t})
					}
					return []string{"TOPIC"}, rows
				})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown docs topic: %q (run `jyadmin docs` to list topics)", topic))
			}

			if raw || app.Format == "table" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			return writeOut(cmd, app, map[string]any{"topic": topic, "markdown": body}, nil)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown (no JSON envelope)")

	return cmd
}
