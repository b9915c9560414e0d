package listview

import (
	"fmt"
	"testing"
	"time"
)

type row struct {
	id     string
	name   string
	email  string
	status string
	at     time.Time
}

func opts() Options[row] {
	return Options[row]{
		SearchText: func(r row) string { return r.name + " " + r.email + " " + r.id },
		Category:   func(r row) string { return r.status },
		Sorters: map[string]func(a, b row) int{
			"name-asc":  func(a, b row) int { return CompareStrings(a.name, b.name) },
			"date-desc": Reverse(func(a, b row) int { return CompareTimes(a.at, b.at) }),
		},
	}
}

func rows(n int) []row {
	out := make([]row, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, row{
			id:     fmt.Sprintf("u-%02d", i),
			name:   fmt.Sprintf("user-%02d", i),
			email:  fmt.Sprintf("user-%02d@example.com", i),
			status: "Active",
			at:     time.Date(2026, 1, 1+i, 0, 0, 0, 0, time.UTC),
		})
	}
	return out
}

func TestCompute_EmptySearchIsIdentity(t *testing.T) {
	items := rows(12)

	all := Compute(items, Query{}, opts())
	spaced := Compute(items, Query{Search: "   "}, opts())

	if all.FilteredCount != len(items) {
		t.Fatalf("empty search filtered count = %d, want %d", all.FilteredCount, len(items))
	}
	if spaced.FilteredCount != len(items) {
		t.Fatalf("whitespace search filtered count = %d, want %d", spaced.FilteredCount, len(items))
	}
}

func TestCompute_SearchSpansConcatenatedFields(t *testing.T) {
	items := []row{
		{id: "a", name: "John Doe", email: "x@y.com"},
		{id: "b", name: "Amy", email: "john@z.com"},
		{id: "c", name: "Zed", email: "zed@z.com"},
	}

	res := Compute(items, Query{Search: "JOHN"}, opts())
	if res.FilteredCount != 2 {
		t.Fatalf("filtered count = %d, want 2 (username and email should both match)", res.FilteredCount)
	}
	for _, r := range res.Visible {
		if r.id == "c" {
			t.Fatalf("row %q must not match search %q", r.id, "JOHN")
		}
	}
}

func TestCompute_CategoryFilter(t *testing.T) {
	statuses := []string{"Paid", "Pending", "Paid", "Failed", "Paid"}
	items := make([]row, 0, len(statuses))
	for i, s := range statuses {
		items = append(items, row{id: fmt.Sprintf("p-%d", i), status: s})
	}

	res := Compute(items, Query{Filter: "Paid"}, opts())
	if res.FilteredCount != 3 {
		t.Fatalf("filtered count = %d, want 3", res.FilteredCount)
	}
	for _, r := range res.Visible {
		if r.status != "Paid" {
			t.Fatalf("row %q has status %q after filtering by Paid", r.id, r.status)
		}
	}

	all := Compute(items, Query{Filter: FilterAll}, opts())
	if all.FilteredCount != len(items) {
		t.Fatalf("filter %q should pass everything, got %d rows", FilterAll, all.FilteredCount)
	}
}

func TestCompute_NoSortPreservesOrder(t *testing.T) {
	items := []row{{id: "c"}, {id: "a"}, {id: "b"}}

	res := Compute(items, Query{}, opts())
	got := []string{res.Visible[0].id, res.Visible[1].id, res.Visible[2].id}
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order changed without a sort key: got %v, want %v", got, want)
		}
	}
}

func TestCompute_StableSortKeepsEqualOrder(t *testing.T) {
	// Same name everywhere: sorting by name must keep collection order.
	items := []row{
		{id: "first", name: "same"},
		{id: "second", name: "same"},
		{id: "third", name: "same"},
	}

	res := Compute(items, Query{Sort: "name-asc"}, opts())
	want := []string{"first", "second", "third"}
	for i, r := range res.Visible {
		if r.id != want[i] {
			t.Fatalf("stable sort reordered equal rows: pos %d = %q, want %q", i, r.id, want[i])
		}
	}
}

func TestCompute_PaginationPartitions(t *testing.T) {
	items := rows(20)
	o := opts()
	o.Sorters["name-asc"] = func(a, b row) int { return CompareStrings(a.name, b.name) }

	q := Query{Sort: "name-asc"}
	first := Compute(items, q.WithPage(1), o)
	if first.TotalPages != 3 {
		t.Fatalf("total pages = %d, want 3", first.TotalPages)
	}
	if len(first.Visible) != DefaultPageSize {
		t.Fatalf("page 1 has %d rows, want %d", len(first.Visible), DefaultPageSize)
	}
	if first.Visible[0].name != "user-00" {
		t.Fatalf("page 1 should start with the alphabetically first name, got %q", first.Visible[0].name)
	}

	// Concatenating all pages in order must reproduce the filtered+sorted
	// collection with no duplicates or gaps.
	seen := make([]string, 0, len(items))
	for p := 1; p <= first.TotalPages; p++ {
		res := Compute(items, q.WithPage(p), o)
		if len(res.Visible) > DefaultPageSize {
			t.Fatalf("page %d has %d rows, exceeds page size", p, len(res.Visible))
		}
		for _, r := range res.Visible {
			seen = append(seen, r.id)
		}
	}
	if len(seen) != len(items) {
		t.Fatalf("pages concatenate to %d rows, want %d", len(seen), len(items))
	}
	uniq := map[string]bool{}
	for _, id := range seen {
		if uniq[id] {
			t.Fatalf("row %q appears on more than one page", id)
		}
		uniq[id] = true
	}

	last := Compute(items, q.WithPage(3), o)
	if len(last.Visible) != 2 {
		t.Fatalf("last page has %d rows, want 2", len(last.Visible))
	}
}

func TestCompute_PageClamping(t *testing.T) {
	items := rows(20)

	res := Compute(items, Query{Page: 99}, opts())
	if res.Page != res.TotalPages {
		t.Fatalf("page 99 should clamp to last page %d, got %d", res.TotalPages, res.Page)
	}

	res = Compute(items, Query{Page: -4}, opts())
	if res.Page != 1 {
		t.Fatalf("negative page should clamp to 1, got %d", res.Page)
	}
}

func TestCompute_EmptyFilteredSet(t *testing.T) {
	items := rows(5)

	res := Compute(items, Query{Search: "no-such-user", Page: 3}, opts())
	if res.TotalPages != 1 {
		t.Fatalf("empty result must still report 1 page, got %d", res.TotalPages)
	}
	if res.Page != 1 {
		t.Fatalf("empty result must clamp to page 1, got %d", res.Page)
	}
	if len(res.Visible) != 0 {
		t.Fatalf("empty result has %d visible rows", len(res.Visible))
	}
}

func TestQuery_ChangesResetPage(t *testing.T) {
	q := Query{Page: 7}

	if got := q.WithSearch("john").Page; got != 1 {
		t.Fatalf("search change left page at %d", got)
	}
	if got := q.WithFilter("Paid").Page; got != 1 {
		t.Fatalf("filter change left page at %d", got)
	}
	if got := q.WithSort("name-asc").Page; got != 1 {
		t.Fatalf("sort change left page at %d", got)
	}
	// No-op changes keep the page.
	q.Search = "john"
	if got := q.WithSearch("john").Page; got != 7 {
		t.Fatalf("unchanged search reset page to %d", got)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	items := rows(20)
	q := Query{Search: "user", Sort: "date-desc", Page: 2}

	a := Compute(items, q, opts())
	b := Compute(items, q, opts())
	if a.FilteredCount != b.FilteredCount || a.Page != b.Page || a.TotalPages != b.TotalPages {
		t.Fatalf("recompute differed: %+v vs %+v", a, b)
	}
	for i := range a.Visible {
		if a.Visible[i].id != b.Visible[i].id {
			t.Fatalf("recompute changed row %d: %q vs %q", i, a.Visible[i].id, b.Visible[i].id)
		}
	}
}

func TestCompareTimes_UnknownSortsLast(t *testing.T) {
	known := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	if CompareTimes(time.Time{}, known) != 1 {
		t.Fatal("zero time should sort after a known time")
	}
	if CompareTimes(known, time.Time{}) != -1 {
		t.Fatal("known time should sort before a zero time")
	}
	if CompareTimes(time.Time{}, time.Time{}) != 0 {
		t.Fatal("two zero times should compare equal")
	}
}

func TestCompareStrings_LocaleAware(t *testing.T) {
	// Accented names should sort next to their unaccented forms, not after z.
	if CompareStrings("Émile", "Zoé") >= 0 {
		t.Fatal("Émile should sort before Zoé")
	}
	if CompareStrings("alice", "Bob") >= 0 {
		t.Fatal("case must not dominate the collation order")
	}
}
