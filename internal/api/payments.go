package api

import (
	"context"
	"net/url"
	"strings"

	"github.com/pamsartech/jytechinvestment-admin/internal/model"
)

type rawPayment struct {
	ID                 string  `json:"_id"`
	Amount             float64 `json:"amount"`
	PaymentStatus      string  `json:"paymentStatus"`
	SubscriptionStatus string  `json:"subscriptionStatus"`
	PaymentID          string  `json:"paymentId"`
	PaymentMethod      string  `json:"paymentMethod"`
	PaymentDate        string  `json:"paymentDate"`
	PlanName           string  `json:"planName"`
	Discount           float64 `json:"discount"`
	PromoCode          string  `json:"promoCode"`
	UserID             *struct {
		Email string `json:"Email"`
	} `json:"userId"`
}

func (p rawPayment) toModel() model.Payment {
	email := ""
	if p.UserID != nil {
		email = p.UserID.Email
	}
	return model.Payment{
		ID:            p.ID,
		Amount:        p.Amount,
		Status:        model.PaymentStatusFromAPI(p.PaymentStatus),
		Subscription:  model.SubscriptionStatusFromAPI(p.SubscriptionStatus),
		Email:         model.OrDash(email),
		TransactionID: model.OrDash(p.PaymentID),
		Method:        model.OrDash(p.PaymentMethod),
		PaidAt:        parseTime(p.PaymentDate),
	}
}

// ListPayments fetches every recorded payment. The endpoint serves a bare
// JSON array.
func (c *Client) ListPayments(ctx context.Context) ([]model.Payment, error) {
	var raw []rawPayment
	if err := c.do(ctx, "GET", "/admin/payments/all", nil, &raw); err != nil {
		return nil, err
	}
	payments := make([]model.Payment, 0, len(raw))
	for _, p := range raw {
		payments = append(payments, p.toModel())
	}
	return payments, nil
}

// GetPayment fetches one payment with the payer attached.
func (c *Client) GetPayment(ctx context.Context, id string) (model.PaymentDetail, error) {
	var out struct {
		PaymentDetails rawPayment `json:"paymentDetails"`
		UserDetails    struct {
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
			Email     string `json:"email"`
		} `json:"userDetails"`
	}
	if err := c.do(ctx, "GET", "/admin/payments/"+url.PathEscape(id), nil, &out); err != nil {
		return model.PaymentDetail{}, err
	}

	detail := model.PaymentDetail{
		Payment:   out.PaymentDetails.toModel(),
		PayerName: model.OrDash(strings.TrimSpace(out.UserDetails.FirstName + " " + out.UserDetails.LastName)),
		PlanName:  model.OrDash(out.PaymentDetails.PlanName),
		Discount:  out.PaymentDetails.Discount,
		PromoCode: out.PaymentDetails.PromoCode,
	}
	if detail.Email == model.Placeholder {
		detail.Email = model.OrDash(out.UserDetails.Email)
	}
	return detail, nil
}
