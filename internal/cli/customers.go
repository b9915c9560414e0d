package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pamsartech/jytechinvestment-admin/internal/format"
	"github.com/pamsartech/jytechinvestment-admin/internal/listview"
	"github.com/pamsartech/jytechinvestment-admin/internal/model"
)

func newCustomersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Customer commands",
	}
	cmd.AddCommand(newCustomersListCmd(app))
	cmd.AddCommand(newCustomersShowCmd(app))
	cmd.AddCommand(newCustomersInviteCmd(app))
	cmd.AddCommand(newCustomersBlockCmd(app))
	return cmd
}

func newCustomersListCmd(app *App) *cobra.Command {
	var (
		search  string
		status  string
		sortKey string
		page    int
		invited bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers (searchable, filterable, paginated)",
		RunE: func(cmd *cobra.Command, args []string) error {
			customers, err := app.client().ListCustomers(cmd.Context())
			if err != nil {
				return writeErr(cmd, friendlyErr(err))
			}
			if invited {
				kept := customers[:0]
				for _, c := range customers {
					if c.Role == model.RoleInvited {
						kept = append(kept, c)
					}
				}
				customers = kept
			}

			q := listview.Query{Search: search, Filter: status, Sort: sortKey, Page: page}
			res := listview.Compute(customers, q, listview.CustomerOptions())

			payload := struct {
				Customers  []model.Customer `json:"customers"`
				Page       int              `json:"page"`
				TotalPages int              `json:"totalPages"`
				Total      int              `json:"total"`
			}{res.Visible, res.Page, res.TotalPages, res.FilteredCount}

			return writeOut(cmd, app, payload, func() ([]string, [][]string) {
				header := []string{"ID", "USERNAME", "EMAIL", "PHONE", "ROLE", "STATUS", "SIGNED UP"}
				rows := make([][]string, 0, len(res.Visible))
				for _, c := range res.Visible {
					rows = append(rows, []string{
						c.ID, c.Username, c.Email, c.Phone,
						c.Role.Badge().Label, c.Status.Badge().Label,
						format.Date(c.SignedUpAt),
					})
				}
				rows = append(rows, []string{fmt.Sprintf("page %d/%d", res.Page, res.TotalPages)})
				return header, rows
			})
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Substring match on username/email/phone")
	cmd.Flags().StringVar(&status, "status", listview.FilterAll, "Status filter (Active|Inactive|Blocked|All)")
	cmd.Flags().StringVar(&sortKey, "sort", "", "Sort key (name|newest)")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().BoolVar(&invited, "invited", false, "Only invited customers")
	return cmd
}

func newCustomersShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <customer-id>",
		Short: "Show one customer with subscription and reports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := app.client().GetCustomer(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, friendlyErr(err))
			}
			return writeOut(cmd, app, detail, nil)
		},
	}
}

func newCustomersInviteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "invite <email>",
		Short: "Send an invitation email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := app.client().InviteCustomer(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, friendlyErr(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func newCustomersBlockCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "block <customer-id>",
		Short: "Block or unblock a customer (the endpoint toggles)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "Toggle block for %s? [y/N] ", args[0])
				var answer string
				_, _ = fmt.Fscanln(cmd.InOrStdin(), &answer)
				if answer != "y" && answer != "Y" && answer != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}
			if err := app.client().ToggleBlock(cmd.Context(), args[0]); err != nil {
				return writeErr(cmd, friendlyErr(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Done.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
