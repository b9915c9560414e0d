package api

import (
	"context"
	"net/url"
	"strings"

	"github.com/pamsartech/jytechinvestment-admin/internal/model"
)

type rawPlan struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Currency    string   `json:"currency"`
	Description string   `json:"description"`
	IsActive    *bool    `json:"isActive"`
	Features    []string `json:"features"`
	Prices      []struct {
		DurationMonths int     `json:"durationMonths"`
		Price          float64 `json:"price"`
		ActualPrice    float64 `json:"actualPrice"`
		Label          string  `json:"label"`
	} `json:"prices"`
}

// ListPlans fetches the subscription plans. The endpoint serves a bare
// JSON array containing the basic and premium plans.
func (c *Client) ListPlans(ctx context.Context) ([]model.Plan, error) {
	var raw []rawPlan
	if err := c.do(ctx, "GET", "/api/admin/get-all", nil, &raw); err != nil {
		return nil, err
	}

	plans := make([]model.Plan, 0, len(raw))
	for _, p := range raw {
		// A missing isActive flag means the plan is live.
		active := true
		if p.IsActive != nil {
			active = *p.IsActive
		}
		plan := model.Plan{
			ID:          p.ID,
			Name:        p.Name,
			Type:        model.PlanTypeFromAPI(p.Type),
			Currency:    p.Currency,
			Description: p.Description,
			Active:      active,
			Features:    p.Features,
		}
		for _, pr := range p.Prices {
			plan.Prices = append(plan.Prices, model.PlanPrice{
				DurationMonths: pr.DurationMonths,
				Price:          pr.Price,
				ActualPrice:    pr.ActualPrice,
				Label:          pr.Label,
			})
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

// UpdatePlan saves a plan's edited fields. Empty feature lines are dropped
// before sending and the currency is lowercased, matching what the backend
// stores.
func (c *Client) UpdatePlan(ctx context.Context, plan model.Plan) error {
	features := make([]string, 0, len(plan.Features))
	for _, f := range plan.Features {
		if strings.TrimSpace(f) != "" {
			features = append(features, f)
		}
	}

	type pricePayload struct {
		DurationMonths int     `json:"durationMonths"`
		Price          float64 `json:"price"`
		ActualPrice    float64 `json:"actualPrice,omitempty"`
		Label          string  `json:"label"`
	}
	prices := make([]pricePayload, 0, len(plan.Prices))
	for _, p := range plan.Prices {
		prices = append(prices, pricePayload{
			DurationMonths: p.DurationMonths,
			Price:          p.Price,
			ActualPrice:    p.ActualPrice,
			Label:          p.Label,
		})
	}

	body := map[string]any{
		"name":        plan.Name,
		"type":        string(plan.Type),
		"currency":    strings.ToLower(plan.Currency),
		"description": plan.Description,
		"isActive":    plan.Active,
		"features":    features,
		"prices":      prices,
	}
	return c.do(ctx, "PUT", "/api/admin/edit/"+url.PathEscape(plan.ID), body, nil)
}
