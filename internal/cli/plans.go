package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pamsartech/jytechinvestment-admin/internal/format"
	"github.com/pamsartech/jytechinvestment-admin/internal/model"
)

func newPlansCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Subscription plan commands",
	}
	cmd.AddCommand(newPlansListCmd(app))
	cmd.AddCommand(newPlansEditCmd(app))
	return cmd
}

func newPlansListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the subscription plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := app.client().ListPlans(cmd.Context())
			if err != nil {
				return writeErr(cmd, friendlyErr(err))
			}
			return writeOut(cmd, app, plans, func() ([]string, [][]string) {
				header := []string{"ID", "NAME", "TYPE", "ACTIVE", "MONTHLY", "YEARLY", "FEATURES"}
				rows := make([][]string, 0, len(plans))
				for _, p := range plans {
					monthly, yearly := "", ""
					if pr, ok := p.PriceFor(1); ok {
						monthly = format.Amount(pr.Price)
					}
					if pr, ok := p.PriceFor(12); ok {
						yearly = format.Amount(pr.Price)
					}
					rows = append(rows, []string{
						p.ID, p.Name, string(p.Type), strconv.FormatBool(p.Active),
						monthly, yearly, strings.Join(p.Features, "; "),
					})
				}
				return header, rows
			})
		},
	}
}

func newPlansEditCmd(app *App) *cobra.Command {
	var (
		name        string
		description string
		features    []string
		monthly     float64
		annual      float64
		actual      float64
		active      bool
		yes         bool
	)

	cmd := &cobra.Command{
		Use:   "edit <plan-id>",
		Short: "Edit a plan's fields (unset flags keep current values)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := app.client()
			plans, err := client.ListPlans(cmd.Context())
			if err != nil {
				return writeErr(cmd, friendlyErr(err))
			}

			var plan *model.Plan
			for i := range plans {
				if plans[i].ID == args[0] {
					plan = &plans[i]
					break
				}
			}
			if plan == nil {
				return writeErr(cmd, fmt.Errorf("plan not found: %s", args[0]))
			}

			flags := cmd.Flags()
			if flags.Changed("name") {
				plan.Name = name
			}
			if flags.Changed("description") {
				plan.Description = description
			}
			if flags.Changed("feature") {
				plan.Features = features
			}
			if flags.Changed("active") {
				plan.Active = active
			}
			if flags.Changed("monthly") {
				setPrice(plan, 1, monthly, 0, "Monthly")
			}
			if flags.Changed("annual") || flags.Changed("actual") {
				yearlyActual := actual
				if !flags.Changed("actual") {
					if pr, ok := plan.PriceFor(12); ok {
						yearlyActual = pr.ActualPrice
					}
				}
				yearlyPrice := annual
				if !flags.Changed("annual") {
					if pr, ok := plan.PriceFor(12); ok {
						yearlyPrice = pr.Price
					}
				}
				setPrice(plan, 12, yearlyPrice, yearlyActual, "Yearly")
			}

			if !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "Save changes to plan %q? [y/N] ", plan.Name)
				var answer string
				_, _ = fmt.Fscanln(cmd.InOrStdin(), &answer)
				if answer != "y" && answer != "Y" && answer != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			if err := client.UpdatePlan(cmd.Context(), *plan); err != nil {
				return writeErr(cmd, friendlyErr(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved.")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Plan name")
	cmd.Flags().StringVar(&description, "description", "", "Plan description")
	cmd.Flags().StringArrayVar(&features, "feature", nil, "Feature line (repeatable; replaces the list)")
	cmd.Flags().Float64Var(&monthly, "monthly", 0, "Monthly price")
	cmd.Flags().Float64Var(&annual, "annual", 0, "Annual price")
	cmd.Flags().Float64Var(&actual, "actual", 0, "Annual price before discount")
	cmd.Flags().BoolVar(&active, "active", true, "Whether the plan is live")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// setPrice replaces or appends the price entry for one duration.
func setPrice(plan *model.Plan, months int, price, actualPrice float64, label string) {
	for i := range plan.Prices {
		if plan.Prices[i].DurationMonths == months {
			plan.Prices[i].Price = price
			plan.Prices[i].ActualPrice = actualPrice
			return
		}
	}
	plan.Prices = append(plan.Prices, model.PlanPrice{
		DurationMonths: months,
		Price:          price,
		ActualPrice:    actualPrice,
		Label:          label,
	})
}
