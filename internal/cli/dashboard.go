package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/pamsartech/jytechinvestment-admin/internal/format"
	"github.com/pamsartech/jytechinvestment-admin/internal/model"
)

func newDashboardCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Dashboard stats and activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := app.client()
			ctx := cmd.Context()

			stats, err := client.GetDashboardStats(ctx)
			if err != nil {
				return writeErr(cmd, friendlyErr(err))
			}
			recent, err := client.ListRecentPayments(ctx)
			if err != nil {
				return writeErr(cmd, friendlyErr(err))
			}
			activity, err := client.ListRecentActivity(ctx)
			if err != nil {
				return writeErr(cmd, friendlyErr(err))
			}

			payload := struct {
				Stats          model.DashboardStats  `json:"stats"`
				RecentPayments []model.RecentPayment `json:"recentPayments"`
				RecentActivity []model.Activity      `json:"recentActivity"`
			}{stats, recent, activity}

			return writeOut(cmd, app, payload, func() ([]string, [][]string) {
				now := time.Now()
				header := []string{"METRIC", "VALUE"}
				rows := [][]string{
					{"Total users", strconv.Itoa(stats.TotalUsers)},
					{"Active users", strconv.Itoa(stats.ActiveUsers)},
					{"Inactive users", strconv.Itoa(stats.InactiveUsers)},
					{"Reports today", strconv.Itoa(stats.ReportsToday)},
				}
				for _, p := range recent {
					rows = append(rows, []string{
						fmt.Sprintf("Payment %s (%s)", p.UserName, p.PlanName),
						format.Amount(p.Amount) + " " + format.Date(p.PaidAt),
					})
				}
				for _, a := range activity {
					rows = append(rows, []string{
						fmt.Sprintf("Activity %s", a.UserName),
						fmt.Sprintf("%s (%s)", a.Action, format.TimeAgo(a.At, now)),
					})
				}
				return header, rows
			})
		},
	}

	cmd.AddCommand(newDashboardActivityCmd(app))
	return cmd
}

func newDashboardActivityCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "activity",
		Short: "Recent activity feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			activity, err := app.client().ListRecentActivity(cmd.Context())
			if err != nil {
				return writeErr(cmd, friendlyErr(err))
			}
			return writeOut(cmd, app, activity, func() ([]string, [][]string) {
				now := time.Now()
				header := []string{"USER", "ACTION", "KIND", "WHEN"}
				rows := make([][]string, 0, len(activity))
				for _, a := range activity {
					rows = append(rows, []string{
						a.UserName, a.Action, a.Kind.Badge().Label, format.TimeAgo(a.At, now),
					})
				}
				return header, rows
			})
		},
	}
}
