package listview

import (
	"github.com/pamsartech/jytechinvestment-admin/internal/model"
)

// Sort keys shared by the TUI pickers and the CLI flags.
const (
	SortNameAsc    = "name"
	SortDateNewest = "newest"
	SortDateOldest = "oldest"
	SortAmountHigh = "amount-high"
	SortAmountLow  = "amount-low"
	SortIDAsc      = "id"
	SortIDDesc     = "id-desc"
)

// CustomerOptions binds the pipeline to the customer list: search spans
// username, email and phone; the category axis is the normalized status.
func CustomerOptions() Options[model.Customer] {
	return Options[model.Customer]{
		SearchText: func(c model.Customer) string {
			return c.Username + " " + c.Email + " " + c.Phone
		},
		Category: func(c model.Customer) string { return string(c.Status) },
		Sorters: map[string]func(a, b model.Customer) int{
			SortNameAsc: func(a, b model.Customer) int {
				return CompareStrings(a.Username, b.Username)
			},
			SortDateNewest: func(a, b model.Customer) int {
				return CompareTimesDesc(a.SignedUpAt, b.SignedUpAt)
			},
		},
	}
}

// PaymentOptions binds the pipeline to the payment list: search spans the
// payer email and the transaction id; the category axis is the payment
// status (not the subscription status).
func PaymentOptions() Options[model.Payment] {
	byAmount := func(a, b model.Payment) int { return CompareFloats(a.Amount, b.Amount) }
	return Options[model.Payment]{
		SearchText: func(p model.Payment) string {
			return p.Email + " " + p.TransactionID
		},
		Category: func(p model.Payment) string { return string(p.Status) },
		Sorters: map[string]func(a, b model.Payment) int{
			SortDateNewest: func(a, b model.Payment) int {
				return CompareTimesDesc(a.PaidAt, b.PaidAt)
			},
			SortDateOldest: func(a, b model.Payment) int {
				return CompareTimes(a.PaidAt, b.PaidAt)
			},
			SortAmountHigh: Reverse(byAmount),
			SortAmountLow:  byAmount,
		},
	}
}

// ReportOptions binds the pipeline to the report list: search spans the
// customer name and the report id; the category axis is the edit status.
func ReportOptions() Options[model.Report] {
	byID := func(a, b model.Report) int { return CompareStrings(a.ID, b.ID) }
	return Options[model.Report]{
		SearchText: func(r model.Report) string {
			return r.CustomerName + " " + r.ID
		},
		Category: func(r model.Report) string { return string(r.Status) },
		Sorters: map[string]func(a, b model.Report) int{
			SortIDAsc:  byID,
			SortIDDesc: Reverse(byID),
			SortDateNewest: func(a, b model.Report) int {
				return CompareTimesDesc(a.CreatedAt, b.CreatedAt)
			},
			SortDateOldest: func(a, b model.Report) int {
				return CompareTimes(a.CreatedAt, b.CreatedAt)
			},
		},
	}
}
