package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pamsartech/jytechinvestment-admin/internal/model"
)

type rawUser struct {
	ID        string `json:"_id"`
	UserName  string `json:"userName"`
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	Email     string `json:"Email"`
	Phone     string `json:"PhoneNumber"`
	Role      string `json:"role"`
	IsActive  string `json:"isActive"`
	PlanName  string `json:"plan_name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ListCustomers fetches every registered user, normalized for the customer
// list.
func (c *Client) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	var out struct {
		UsersData []rawUser `json:"usersData"`
	}
	if err := c.do(ctx, "GET", "/admin/users/all-users", nil, &out); err != nil {
		return nil, err
	}

	customers := make([]model.Customer, 0, len(out.UsersData))
	for _, u := range out.UsersData {
		customers = append(customers, model.Customer{
			ID:         u.ID,
			Username:   model.OrDash(u.UserName),
			Email:      model.OrDash(u.Email),
			Phone:      model.OrDash(u.Phone),
			Role:       model.CustomerRoleFromAPI(u.Role),
			Status:     model.CustomerStatusFromAPI(u.IsActive),
			SignedUpAt: parseTime(u.CreatedAt),
		})
	}
	return customers, nil
}

// GetCustomer fetches one user's full record with their generated reports.
func (c *Client) GetCustomer(ctx context.Context, id string) (model.CustomerDetail, error) {
	var out struct {
		User           rawUser `json:"user"`
		ProjectReports []struct {
			ID        string `json:"_id"`
			Type      string `json:"type"`
			CreatedAt string `json:"createdAt"`
		} `json:"projectReports"`
	}
	if err := c.do(ctx, "GET", "/admin/users/"+url.PathEscape(id), nil, &out); err != nil {
		return model.CustomerDetail{}, err
	}

	u := out.User
	detail := model.CustomerDetail{
		ID:                id,
		Name:              model.OrDash(strings.TrimSpace(u.FirstName + " " + u.LastName)),
		Email:             model.OrDash(u.Email),
		Phone:             model.OrDash(u.Phone),
		PlanName:          model.OrDash(u.PlanName),
		Status:            model.CustomerStatusFromAPI(u.IsActive),
		LastLogin:         parseTime(u.UpdatedAt),
		SubscriptionStart: parseTime(u.StartDate),
		SubscriptionEnd:   parseTime(u.EndDate),
	}
	for _, r := range out.ProjectReports {
		detail.Reports = append(detail.Reports, model.Report{
			ID:        r.ID,
			Type:      model.ReportTypeFromAPI(r.Type),
			Status:    model.ReportStatusFromAPI(""),
			CreatedAt: parseTime(r.CreatedAt),
		})
	}
	return detail, nil
}

// ToggleBlock flips a user between blocked and unblocked. The endpoint is a
// toggle; the caller decides which direction it means.
func (c *Client) ToggleBlock(ctx context.Context, id string) error {
	var out struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := c.do(ctx, "PUT", "/admin/users/block/"+url.PathEscape(id), struct{}{}, &out); err != nil {
		return err
	}
	if !out.Success {
		if out.Message != "" {
			return fmt.Errorf("%s", out.Message)
		}
		return fmt.Errorf("le serveur a refusé l'opération")
	}
	return nil
}

// InviteCustomer sends an invitation email. The server's confirmation
// message is returned for display.
func (c *Client) InviteCustomer(ctx context.Context, email string) (string, error) {
	var out struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	body := map[string]string{"Email": strings.TrimSpace(email)}
	if err := c.do(ctx, "POST", "/admin/invite/invite-user", body, &out); err != nil {
		return "", err
	}
	if !out.Success {
		if out.Message != "" {
			return "", fmt.Errorf("%s", out.Message)
		}
		return "", fmt.Errorf("l'envoi de l'invitation a échoué")
	}
	if out.Message == "" {
		out.Message = "Invitation envoyée"
	}
	return out.Message, nil
}
