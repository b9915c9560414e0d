package listview

import (
	"testing"
	"time"

	"github.com/pamsartech/jytechinvestment-admin/internal/model"
)

func TestCustomerOptionsSearchAndFilter(t *testing.T) {
	customers := []model.Customer{
		{Username: "alice", Email: "alice@example.com", Status: model.CustomerActive},
		{Username: "bob", Email: "bob@other.org", Status: model.CustomerBlocked},
		{Username: "carol", Email: "carol@example.com", Status: model.CustomerActive},
	}

	res := Compute(customers, Query{Search: "example.com", Filter: string(model.CustomerActive), Page: 1}, CustomerOptions())
	if res.FilteredCount != 2 {
		t.Fatalf("FilteredCount = %d, want 2", res.FilteredCount)
	}
	for _, c := range res.Visible {
		if c.Status != model.CustomerActive {
			t.Fatalf("filter leaked row %q", c.Username)
		}
	}
}

func TestPaymentOptionsAmountSort(t *testing.T) {
	payments := []model.Payment{
		{TransactionID: "t1", Amount: 5},
		{TransactionID: "t2", Amount: 50},
		{TransactionID: "t3", Amount: 20},
	}

	res := Compute(payments, Query{Sort: SortAmountHigh, Page: 1}, PaymentOptions())
	want := []string{"t2", "t3", "t1"}
	for i, p := range res.Visible {
		if p.TransactionID != want[i] {
			t.Fatalf("pos %d = %s, want %s", i, p.TransactionID, want[i])
		}
	}
}

func TestPaymentCategoryIsPaymentStatus(t *testing.T) {
	payments := []model.Payment{
		{TransactionID: "t1", Status: model.PaymentPaid, Subscription: model.SubscriptionInactive},
		{TransactionID: "t2", Status: model.PaymentPending, Subscription: model.SubscriptionActive},
	}

	res := Compute(payments, Query{Filter: string(model.PaymentPaid), Page: 1}, PaymentOptions())
	if res.FilteredCount != 1 || res.Visible[0].TransactionID != "t1" {
		t.Fatalf("payment filter must use payment status, got %+v", res.Visible)
	}
}

func TestReportOptionsDateSortUnknownLast(t *testing.T) {
	reports := []model.Report{
		{ID: "r1"},
		{ID: "r2", CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "r3", CreatedAt: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)},
	}

	res := Compute(reports, Query{Sort: SortDateNewest, Page: 1}, ReportOptions())
	want := []string{"r3", "r2", "r1"}
	for i, r := range res.Visible {
		if r.ID != want[i] {
			t.Fatalf("pos %d = %s, want %s", i, r.ID, want[i])
		}
	}
}
