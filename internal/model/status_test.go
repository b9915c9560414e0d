package model

import (
	"testing"
	"time"
)

func TestCustomerStatusFromAPI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want CustomerStatus
	}{
		{"active", CustomerActive},
		{"Active", CustomerActive},
		{" ACTIVE ", CustomerActive},
		{"blocked", CustomerBlocked},
		{"inactive", CustomerInactive},
		{"", CustomerInactive},
		{"weird", CustomerInactive},
	}
	for _, tt := range tests {
		if got := CustomerStatusFromAPI(tt.raw); got != tt.want {
			t.Errorf("CustomerStatusFromAPI(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestPaymentStatusFromAPI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want PaymentStatus
	}{
		{"paid", PaymentPaid},
		{"succeeded", PaymentPaid},
		{"failed", PaymentFailed},
		{"refunded", PaymentRefunded},
		{"pending", PaymentPending},
		{"", PaymentPending},
		{"processing", PaymentPending},
	}
	for _, tt := range tests {
		if got := PaymentStatusFromAPI(tt.raw); got != tt.want {
			t.Errorf("PaymentStatusFromAPI(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestSubscriptionDistinctFromPayment(t *testing.T) {
	t.Parallel()

	// A payment can be paid while the subscription is already inactive; the
	// two axes never collapse into each other.
	p := Payment{
		Status:       PaymentStatusFromAPI("succeeded"),
		Subscription: SubscriptionStatusFromAPI("inactive"),
	}
	if p.Status != PaymentPaid {
		t.Fatalf("Status = %q", p.Status)
	}
	if p.Subscription != SubscriptionInactive {
		t.Fatalf("Subscription = %q", p.Subscription)
	}
}

func TestReportTypeAndStatusAreSeparate(t *testing.T) {
	t.Parallel()

	if got := ReportTypeFromAPI("purchase"); got != ReportPurchase {
		t.Fatalf("ReportTypeFromAPI = %q", got)
	}
	if got := ReportTypeFromAPI("anything"); got != ReportDraft {
		t.Fatalf("unknown type = %q, want draft", got)
	}
	if got := ReportStatusFromAPI(""); got != ReportNew {
		t.Fatalf("missing status = %q, want New", got)
	}
	if got := ReportStatusFromAPI("deleted"); got != ReportStatusDeleted {
		t.Fatalf("deleted status = %q", got)
	}
}

func TestRoleBadgeKeepsRawPremiumSpelling(t *testing.T) {
	t.Parallel()

	// The backend spells it "permium_user"; we must match it exactly or the
	// role filter silently stops working.
	r := CustomerRoleFromAPI("permium_user")
	if r != RolePremium {
		t.Fatalf("role = %q", r)
	}
	if got := r.Badge().Label; got != "Utilisateur Premium" {
		t.Fatalf("label = %q", got)
	}
	if got := CustomerRoleFromAPI(""); got != RoleUser {
		t.Fatalf("missing role = %q, want user", got)
	}
}

func TestBadgesTotal(t *testing.T) {
	t.Parallel()

	// Every enumeration value, including unknown raws, must map to a badge
	// with a non-empty label.
	for _, raw := range []string{"", "active", "blocked", "nonsense"} {
		if CustomerStatusFromAPI(raw).Badge().Label == "" {
			t.Errorf("empty customer badge for %q", raw)
		}
		if PaymentStatusFromAPI(raw).Badge().Label == "" {
			t.Errorf("empty payment badge for %q", raw)
		}
		if ReportTypeFromAPI(raw).Badge().Label == "" {
			t.Errorf("empty report type badge for %q", raw)
		}
		if ActivityKindFromAPI(raw).Badge().Label == "" {
			t.Errorf("empty activity badge for %q", raw)
		}
	}
}

func TestDaysRemaining(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		detail CustomerDetail
		want   int
	}{
		{
			name: "mid subscription",
			detail: CustomerDetail{
				SubscriptionStart: now.AddDate(0, -1, 0),
				SubscriptionEnd:   now.AddDate(0, 0, 10),
			},
			want: 10,
		},
		{
			name: "expired window",
			detail: CustomerDetail{
				SubscriptionStart: now.AddDate(0, -2, 0),
				SubscriptionEnd:   now.AddDate(0, -1, 0),
			},
			want: 0,
		},
		{
			name:   "unknown window",
			detail: CustomerDetail{},
			want:   0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.detail.DaysRemaining(now); got != tt.want {
				t.Fatalf("DaysRemaining = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOrDash(t *testing.T) {
	t.Parallel()

	if got := OrDash(""); got != Placeholder {
		t.Fatalf("OrDash(\"\") = %q", got)
	}
	if got := OrDash("x"); got != "x" {
		t.Fatalf("OrDash(\"x\") = %q", got)
	}
}
