package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pamsartech/jytechinvestment-admin/internal/listview"
)

type testRow struct {
	name string
}

func newTestPage(items []testRow) listPage[testRow] {
	cols := []column[testRow]{
		{title: "NOM", width: 10, cell: func(r testRow) string { return r.name }},
	}
	opts := listview.Options[testRow]{
		SearchText: func(r testRow) string { return r.name },
	}
	p := newListPage("Test", cols, opts, []string{listview.FilterAll}, []sortChoice{{"", "aucun"}})
	p.absorb(0, items, nil)
	return p
}

func rows(n int) []testRow {
	out := make([]testRow, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, testRow{name: string(rune('a' + i%26))})
	}
	return out
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left", "right", "up", "down", "enter", "esc":
		types := map[string]tea.KeyType{
			"left": tea.KeyLeft, "right": tea.KeyRight,
			"up": tea.KeyUp, "down": tea.KeyDown,
			"enter": tea.KeyEnter, "esc": tea.KeyEsc,
		}
		return tea.KeyMsg{Type: types[s]}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAbsorbDropsStaleResponse(t *testing.T) {
	t.Parallel()

	p := newTestPage(nil)
	first := p.nextSeq()
	second := p.nextSeq()

	if p.absorb(first, rows(3), nil) {
		t.Fatalf("stale response (seq %d < %d) must be dropped", first, second)
	}
	if !p.absorb(second, rows(5), nil) {
		t.Fatal("latest response must be installed")
	}
	if got := p.result.FilteredCount; got != 5 {
		t.Fatalf("FilteredCount = %d, want 5", got)
	}
}

func TestAbsorbKeepsItemsOnError(t *testing.T) {
	t.Parallel()

	p := newTestPage(rows(3))
	seq := p.nextSeq()
	p.absorb(seq, nil, errors.New("boom"))

	if p.loadErr == nil {
		t.Fatal("expected loadErr to be set")
	}
	if len(p.items) != 3 {
		t.Fatalf("items overwritten on error: %d", len(p.items))
	}
}

func TestSearchResetsPage(t *testing.T) {
	t.Parallel()

	p := newTestPage(rows(25))
	p.handleKey(keyMsg("right"))
	if p.result.Page != 2 {
		t.Fatalf("Page = %d, want 2", p.result.Page)
	}

	p.handleKey(keyMsg("/"))
	p.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	if p.result.Page != 1 {
		t.Fatalf("Page after search = %d, want 1", p.result.Page)
	}
}

func TestPageClampAtBounds(t *testing.T) {
	t.Parallel()

	p := newTestPage(rows(10)) // 2 pages of 9
	p.handleKey(keyMsg("left"))
	if p.result.Page != 1 {
		t.Fatalf("Page below 1: %d", p.result.Page)
	}
	p.handleKey(keyMsg("right"))
	p.handleKey(keyMsg("right"))
	if p.result.Page != 2 {
		t.Fatalf("Page above total: %d", p.result.Page)
	}
}

func TestCursorClampsAfterFilterShrinks(t *testing.T) {
	t.Parallel()

	p := newTestPage(rows(9))
	for i := 0; i < 8; i++ {
		p.handleKey(keyMsg("down"))
	}
	if p.cursor != 8 {
		t.Fatalf("cursor = %d, want 8", p.cursor)
	}

	p.handleKey(keyMsg("/"))
	p.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	if p.cursor >= len(p.result.Visible) {
		t.Fatalf("cursor %d outside visible %d", p.cursor, len(p.result.Visible))
	}
}

func TestSearchFocusCapturesNavKeys(t *testing.T) {
	t.Parallel()

	p := newTestPage(rows(25))
	p.handleKey(keyMsg("/"))
	if !p.search.Focused() {
		t.Fatal("search not focused after /")
	}

	// While typing, letters go to the input, not to sort/filter cycling.
	p.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	if p.sortIdx != 0 {
		t.Fatalf("sortIdx changed while typing: %d", p.sortIdx)
	}
	if got := p.search.Value(); got != "s" {
		t.Fatalf("search value = %q, want %q", got, "s")
	}

	p.handleKey(keyMsg("esc"))
	if p.search.Focused() {
		t.Fatal("search still focused after esc")
	}
}

func TestFitPadsAndTruncates(t *testing.T) {
	t.Parallel()

	if got := fit("ab", 5); got != "ab   " {
		t.Fatalf("fit pad = %q", got)
	}
	if got := fit("abcdef", 4); got != "abcd" {
		t.Fatalf("fit cut = %q", got)
	}
	if got := fit("éèçà", 4); got != "éèçà" {
		t.Fatalf("fit exact = %q", got)
	}
}

func TestViewShowsEmptyState(t *testing.T) {
	t.Parallel()

	p := newTestPage(nil)
	out := p.view(80)
	if !strings.Contains(out, "Aucun résultat") {
		t.Fatalf("empty state missing:\n%s", out)
	}
	if !strings.Contains(out, "page 1/1") {
		t.Fatalf("footer missing:\n%s", out)
	}
}
