package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pamsartech/jytechinvestment-admin/internal/format"
	"github.com/pamsartech/jytechinvestment-admin/internal/listview"
	"github.com/pamsartech/jytechinvestment-admin/internal/model"
)

func newPaymentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Payment commands",
	}
	cmd.AddCommand(newPaymentsListCmd(app))
	cmd.AddCommand(newPaymentsShowCmd(app))
	return cmd
}

func newPaymentsListCmd(app *App) *cobra.Command {
	var (
		search  string
		status  string
		sortKey string
		page    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments (searchable, filterable, paginated)",
		RunE: func(cmd *cobra.Command, args []string) error {
			payments, err := app.client().ListPayments(cmd.Context())
			if err != nil {
				return writeErr(cmd, friendlyErr(err))
			}

			q := listview.Query{Search: search, Filter: status, Sort: sortKey, Page: page}
			res := listview.Compute(payments, q, listview.PaymentOptions())

			payload := struct {
				Payments   []model.Payment `json:"payments"`
				Page       int             `json:"page"`
				TotalPages int             `json:"totalPages"`
				Total      int             `json:"total"`
			}{res.Visible, res.Page, res.TotalPages, res.FilteredCount}

			return writeOut(cmd, app, payload, func() ([]string, [][]string) {
				header := []string{"ID", "AMOUNT", "STATUS", "SUBSCRIPTION", "EMAIL", "TRANSACTION", "METHOD", "DATE"}
				rows := make([][]string, 0, len(res.Visible))
				for _, p := range res.Visible {
					rows = append(rows, []string{
						p.ID, format.Amount(p.Amount),
						p.Status.Badge().Label, p.Subscription.Badge().Label,
						p.Email, p.TransactionID, p.Method,
						format.Date(p.PaidAt),
					})
				}
				rows = append(rows, []string{fmt.Sprintf("page %d/%d", res.Page, res.TotalPages)})
				return header, rows
			})
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Substring match on email/transaction id")
	cmd.Flags().StringVar(&status, "status", listview.FilterAll, "Status filter (Paid|Pending|Failed|Refunded|All)")
	cmd.Flags().StringVar(&sortKey, "sort", "", "Sort key (newest|oldest|amount-high|amount-low)")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	return cmd
}

func newPaymentsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <payment-id>",
		Short: "Show one payment with the payer attached",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := app.client().GetPayment(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, friendlyErr(err))
			}
			return writeOut(cmd, app, detail, nil)
		},
	}
}
