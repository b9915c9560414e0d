package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pamsartech/jytechinvestment-admin/internal/format"
	"github.com/pamsartech/jytechinvestment-admin/internal/listview"
	"github.com/pamsartech/jytechinvestment-admin/internal/model"
)

func newReportsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Report commands",
	}
	cmd.AddCommand(newReportsListCmd(app))
	cmd.AddCommand(newReportsShowCmd(app))
	cmd.AddCommand(newReportsDownloadCmd(app))
	cmd.AddCommand(newReportsDeleteCmd(app))
	return cmd
}

func newReportsListCmd(app *App) *cobra.Command {
	var (
		search  string
		status  string
		sortKey string
		page    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List generated reports (searchable, filterable, paginated)",
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := app.client().ListReports(cmd.Context())
			if err != nil {
				return writeErr(cmd, friendlyErr(err))
			}

			q := listview.Query{Search: search, Filter: status, Sort: sortKey, Page: page}
			res := listview.Compute(reports, q, listview.ReportOptions())

			payload := struct {
				Reports    []model.Report `json:"reports"`
				Page       int            `json:"page"`
				TotalPages int            `json:"totalPages"`
				Total      int            `json:"total"`
			}{res.Visible, res.Page, res.TotalPages, res.FilteredCount}

			return writeOut(cmd, app, payload, func() ([]string, [][]string) {
				header := []string{"ID", "CUSTOMER", "TYPE", "STATUS", "CREATED", "PDF"}
				rows := make([][]string, 0, len(res.Visible))
				for _, r := range res.Visible {
					pdf := ""
					if r.Downloadable() {
						pdf = "yes"
					}
					rows = append(rows, []string{
						r.ID, r.CustomerName,
						r.Type.Badge().Label, r.Status.Badge().Label,
						format.Date(r.CreatedAt), pdf,
					})
				}
				rows = append(rows, []string{fmt.Sprintf("page %d/%d", res.Page, res.TotalPages)})
				return header, rows
			})
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Substring match on customer name/report id")
	cmd.Flags().StringVar(&status, "status", listview.FilterAll, "Status filter (New|Edited|Deleted|All)")
	cmd.Flags().StringVar(&sortKey, "sort", "", "Sort key (id|id-desc|newest|oldest)")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	return cmd
}

func newReportsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <report-id>",
		Short: "Show one report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.client().GetReport(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, friendlyErr(err))
			}
			return writeOut(cmd, app, report, nil)
		},
	}
}

func newReportsDownloadCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "download <report-id>",
		Short: "Download the generated PDF for a completed report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			data, _, err := app.client().DownloadReport(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, friendlyErr(err))
			}
			path := out
			if path == "" {
				path = fmt.Sprintf("report-%s.pdf", id)
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return writeErr(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", path, len(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Output path (default report-<id>.pdf)")
	return cmd
}

func newReportsDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <report-id>",
		Short: "Soft-delete a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "Soft-delete report %s? [y/N] ", args[0])
				var answer string
				_, _ = fmt.Fscanln(cmd.InOrStdin(), &answer)
				if answer != "y" && answer != "Y" && answer != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}
			if err := app.client().SoftDeleteReport(cmd.Context(), args[0]); err != nil {
				return writeErr(cmd, friendlyErr(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
