package format

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestDate(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"known", time.Date(2026, 1, 22, 9, 30, 0, 0, time.UTC), "Jan 22 2026"},
		{"zero", time.Time{}, "—"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Date(tc.in); got != tc.want {
				t.Fatalf("Date(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestAmount(t *testing.T) {
	if got := Amount(19.9); got != "€ 19.90" {
		t.Fatalf("Amount = %q", got)
	}
	if got := Amount(0); got != "€ 0.00" {
		t.Fatalf("Amount zero = %q", got)
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		at   time.Time
		want string
	}{
		{"seconds", now.Add(-40 * time.Second), "40s ago"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-50 * time.Hour), "2d ago"},
		{"future clamps", now.Add(time.Minute), "0s ago"},
		{"zero", time.Time{}, "—"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TimeAgo(tc.at, now); got != tc.want {
				t.Fatalf("TimeAgo = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTable(&buf, []string{"ID", "EMAIL"}, [][]string{
		{"u1", "a@example.com"},
		{"u2", "b@example.com"},
	})
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ID") {
		t.Fatalf("header = %q", lines[0])
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, map[string]int{"a": 1}, "yaml", false); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
