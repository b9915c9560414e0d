package api

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pamsartech/jytechinvestment-admin/internal/model"
)

// GetDashboardStats fetches the four stat tiles concurrently and returns
// only once all four have settled. One failure fails the whole call; the
// tiles never render a partial subset.
func (c *Client) GetDashboardStats(ctx context.Context) (model.DashboardStats, error) {
	var stats model.DashboardStats

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var out struct {
			TotalUsers int `json:"totalUsers"`
		}
		if err := c.do(ctx, "GET", "/admin/dashBoard/total-users", nil, &out); err != nil {
			return err
		}
		stats.TotalUsers = out.TotalUsers
		return nil
	})
	g.Go(func() error {
		var out struct {
			ActiveUsers int `json:"activeUsers"`
		}
		if err := c.do(ctx, "GET", "/admin/dashBoard/active-users", nil, &out); err != nil {
			return err
		}
		stats.ActiveUsers = out.ActiveUsers
		return nil
	})
	g.Go(func() error {
		var out struct {
			InactiveUsers int `json:"inactiveUsers"`
		}
		if err := c.do(ctx, "GET", "/admin/dashBoard/inactive-users", nil, &out); err != nil {
			return err
		}
		stats.InactiveUsers = out.InactiveUsers
		return nil
	})
	g.Go(func() error {
		var out struct {
			ProjectsCreatedToday int `json:"projectsCreatedToday"`
		}
		if err := c.do(ctx, "GET", "/admin/dashBoard/projects-created-today", nil, &out); err != nil {
			return err
		}
		stats.ReportsToday = out.ProjectsCreatedToday
		return nil
	})

	if err := g.Wait(); err != nil {
		return model.DashboardStats{}, err
	}
	return stats, nil
}

// ListRecentPayments fetches the dashboard's latest-subscriptions panel.
func (c *Client) ListRecentPayments(ctx context.Context) ([]model.RecentPayment, error) {
	var out struct {
		LatestPayments []struct {
			ID          string  `json:"_id"`
			UserName    string  `json:"userName"`
			PlanName    string  `json:"planName"`
			Amount      float64 `json:"amount"`
			PaymentDate string  `json:"paymentDate"`
		} `json:"latestPayments"`
	}
	if err := c.do(ctx, "GET", "/admin/dashBoard/latest-payments", nil, &out); err != nil {
		return nil, err
	}

	payments := make([]model.RecentPayment, 0, len(out.LatestPayments))
	for _, p := range out.LatestPayments {
		payments = append(payments, model.RecentPayment{
			ID:       p.ID,
			UserName: model.OrDash(p.UserName),
			PlanName: model.OrDash(p.PlanName),
			Amount:   p.Amount,
			PaidAt:   parseTime(p.PaymentDate),
		})
	}
	return payments, nil
}

// ListRecentActivity fetches the activity feed shown on the dashboard and
// behind the notification bell.
func (c *Client) ListRecentActivity(ctx context.Context) ([]model.Activity, error) {
	var out struct {
		Success    bool `json:"success"`
		Activities []struct {
			ID       string `json:"id"`
			UserName string `json:"userName"`
			Action   string `json:"action"`
			Type     string `json:"type"`
			Time     string `json:"time"`
		} `json:"activities"`
	}
	if err := c.do(ctx, "GET", "/admin/dashBoard/recent-activity", nil, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, nil
	}

	activities := make([]model.Activity, 0, len(out.Activities))
	for _, a := range out.Activities {
		activities = append(activities, model.Activity{
			ID:       a.ID,
			UserName: model.OrDash(a.UserName),
			Action:   a.Action,
			Kind:     model.ActivityKindFromAPI(a.Type),
			At:       parseTime(a.Time),
		})
	}
	return activities, nil
}
