package format

import (
	"fmt"
	"time"

	"github.com/pamsartech/jytechinvestment-admin/internal/model"
)

// Date renders a timestamp as "Jan 02 2006", or the placeholder when the
// time is unknown.
func Date(t time.Time) string {
	if t.IsZero() {
		return model.Placeholder
	}
	return t.Format("Jan 02 2006")
}

// DateTime renders a timestamp with the clock, or the placeholder.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return model.Placeholder
	}
	return t.Format("Jan 02 2006 15:04")
}

// Amount renders a euro amount as "€ 12.34".
func Amount(v float64) string {
	return fmt.Sprintf("€ %.2f", v)
}

// TimeAgo renders the elapsed time since t in coarse units, for activity
// feeds.
func TimeAgo(t, now time.Time) string {
	if t.IsZero() {
		return model.Placeholder
	}
	diff := now.Sub(t)
	if diff < 0 {
		diff = 0
	}
	switch {
	case diff < time.Minute:
		return fmt.Sprintf("%ds ago", int(diff.Seconds()))
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
}
