package model

import "time"

// Placeholder is rendered for any display field the API did not provide.
const Placeholder = "—"

// Customer is one row of the customer list, normalized from the
// /admin/users/all-users payload.
type Customer struct {
	ID       string         `json:"id"`
	Username string         `json:"username"`
	Email    string         `json:"email"`
	Phone    string         `json:"phone"`
	Role     CustomerRole   `json:"role"`
	Status   CustomerStatus `json:"status"`

	// SignedUpAt is zero when the API omitted createdAt; it then sorts as
	// unknown and renders as the placeholder.
	SignedUpAt time.Time `json:"signedUpAt"`
}

// CustomerDetail is the full record behind a customer row, including the
// subscription window and the customer's generated reports.
type CustomerDetail struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	PlanName  string         `json:"planName"`
	Status    CustomerStatus `json:"status"`
	LastLogin time.Time      `json:"lastLogin"`

	SubscriptionStart time.Time `json:"subscriptionStart"`
	SubscriptionEnd   time.Time `json:"subscriptionEnd"`

	Reports []Report `json:"reports"`
}

// DaysRemaining returns the whole days left in the subscription window,
// never negative. Zero when the window is unknown.
func (d CustomerDetail) DaysRemaining(now time.Time) int {
	if d.SubscriptionStart.IsZero() || d.SubscriptionEnd.IsZero() {
		return 0
	}
	left := d.SubscriptionEnd.Sub(now)
	if left <= 0 {
		return 0
	}
	return int((left + 24*time.Hour - time.Nanosecond) / (24 * time.Hour))
}

// Payment is one row of the payment list. PaymentStatus and
// SubscriptionStatus are distinct enumerations and must not be conflated.
type Payment struct {
	ID            string             `json:"id"`
	Amount        float64            `json:"amount"`
	Status        PaymentStatus      `json:"status"`
	Subscription  SubscriptionStatus `json:"subscriptionStatus"`
	Email         string             `json:"email"`
	TransactionID string             `json:"transactionId"`
	Method        string             `json:"method"`
	PaidAt        time.Time          `json:"paidAt"`
}

// PaymentDetail is the full record behind a payment row, including the
// payer and promotional fields the list omits.
type PaymentDetail struct {
	Payment

	PayerName string  `json:"payerName"`
	PlanName  string  `json:"planName"`
	Discount  float64 `json:"discount,omitempty"`
	PromoCode string  `json:"promoCode,omitempty"`
}

// Report is one row of the report list (the API calls these "projects").
type Report struct {
	ID           string       `json:"id"`
	CustomerName string       `json:"customerName"`
	Type         ReportType   `json:"type"`
	Status       ReportStatus `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// Downloadable reports only exist for completed purchases; drafts and deleted
// reports have no PDF behind them.
func (r Report) Downloadable() bool {
	return r.Type == ReportPurchase
}

// PlanPrice is one billing interval of a plan.
type PlanPrice struct {
	DurationMonths int     `json:"durationMonths"`
	Price          float64 `json:"price"`
	ActualPrice    float64 `json:"actualPrice,omitempty"`
	Label          string  `json:"label"`
}

// Plan is a subscription plan as served by /api/admin/get-all.
type Plan struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        PlanType    `json:"type"`
	Currency    string      `json:"currency"`
	Description string      `json:"description"`
	Active      bool        `json:"isActive"`
	Features    []string    `json:"features"`
	Prices      []PlanPrice `json:"prices"`
}

// PriceFor returns the price entry for the given duration, if any.
func (p Plan) PriceFor(months int) (PlanPrice, bool) {
	for _, pr := range p.Prices {
		if pr.DurationMonths == months {
			return pr, true
		}
	}
	return PlanPrice{}, false
}

// SiteContent holds the editable legal/CMS documents and the tutorial video
// metadata.
type SiteContent struct {
	Terms      string `json:"terms"`
	Privacy    string `json:"privacy"`
	VideoTitle string `json:"videoTitle"`
	VideoURL   string `json:"videoUrl"`
}

// Activity is one entry of the recent-activity feed.
type Activity struct {
	ID       string       `json:"id"`
	UserName string       `json:"userName"`
	Action   string       `json:"action"`
	Kind     ActivityKind `json:"kind"`
	At       time.Time    `json:"at"`
}

// RecentPayment is one row of the dashboard's recent subscriptions panel.
type RecentPayment struct {
	ID       string    `json:"id"`
	UserName string    `json:"userName"`
	PlanName string    `json:"planName"`
	Amount   float64   `json:"amount"`
	PaidAt   time.Time `json:"paidAt"`
}

// DashboardStats aggregates the four stat tiles. The four counts come from
// four independent endpoints fetched jointly.
type DashboardStats struct {
	TotalUsers    int `json:"totalUsers"`
	ActiveUsers   int `json:"activeUsers"`
	InactiveUsers int `json:"inactiveUsers"`
	ReportsToday  int `json:"reportsToday"`
}

// OrDash substitutes the placeholder for empty strings.
func OrDash(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
