package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/pamsartech/jytechinvestment-admin/internal/listview"
)

type column[T any] struct {
	title string
	width int
	cell  func(T) string
}

type sortChoice struct {
	key   string // listview sort key, "" preserves order
	label string
}

// listPage is the shared state of one list view: the fetched collection,
// the current query, and the cursor. The visible page is always derived
// through listview.Compute; the page never mutates the collection.
type listPage[T any] struct {
	title   string
	cols    []column[T]
	opts    listview.Options[T]
	filters []string // first entry is the "All" sentinel
	sorts   []sortChoice

	search    textinput.Model
	query     listview.Query
	filterIdx int
	sortIdx   int

	items  []T
	result listview.Result[T]
	cursor int

	loading bool
	loadErr error

	// seq tags fetches so a slow response can never overwrite the result of
	// a later one.
	seq       int
	loadedSeq int
}

func newListPage[T any](title string, cols []column[T], opts listview.Options[T], filters []string, sorts []sortChoice) listPage[T] {
	input := textinput.New()
	input.Placeholder = "Rechercher…"
	input.Prompt = "/ "
	input.CharLimit = 120

	return listPage[T]{
		title:   title,
		cols:    cols,
		opts:    opts,
		filters: filters,
		sorts:   sorts,
		search:  input,
		query:   listview.Query{Filter: listview.FilterAll, Page: 1},
		loading: true,
	}
}

// nextSeq issues a new fetch generation.
func (p *listPage[T]) nextSeq() int {
	p.seq++
	p.loading = true
	p.loadErr = nil
	return p.seq
}

// absorb installs a fetch result. Responses older than the latest issued
// sequence are discarded.
func (p *listPage[T]) absorb(seq int, items []T, err error) bool {
	if seq < p.seq {
		return false
	}
	p.loading = false
	p.loadedSeq = seq
	if err != nil {
		p.loadErr = err
		return true
	}
	p.loadErr = nil
	p.items = items
	p.recompute()
	return true
}

func (p *listPage[T]) recompute() {
	p.result = listview.Compute(p.items, p.query, p.opts)
	if p.cursor >= len(p.result.Visible) {
		p.cursor = len(p.result.Visible) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *listPage[T]) setQuery(q listview.Query) {
	if q != p.query {
		p.query = q
		p.recompute()
	}
}

// selected returns the row under the cursor.
func (p *listPage[T]) selected() (T, bool) {
	var zero T
	if len(p.result.Visible) == 0 {
		return zero, false
	}
	return p.result.Visible[p.cursor], true
}

// handleKey processes one key for the page. It returns true when the key
// was consumed.
func (p *listPage[T]) handleKey(msg tea.KeyMsg) bool {
	if p.search.Focused() {
		switch msg.String() {
		case "enter", "esc":
			p.search.Blur()
			return true
		default:
			var cmd tea.Cmd
			p.search, cmd = p.search.Update(msg)
			_ = cmd
			p.setQuery(p.query.WithSearch(p.search.Value()))
			return true
		}
	}

	switch msg.String() {
	case "/":
		p.search.Focus()
		return true
	case "f":
		p.filterIdx = (p.filterIdx + 1) % len(p.filters)
		p.setQuery(p.query.WithFilter(p.filters[p.filterIdx]))
		return true
	case "s":
		p.sortIdx = (p.sortIdx + 1) % len(p.sorts)
		p.setQuery(p.query.WithSort(p.sorts[p.sortIdx].key))
		return true
	case "left", "h":
		p.setQuery(p.query.WithPage(p.result.Page - 1))
		return true
	case "right", "l":
		p.setQuery(p.query.WithPage(p.result.Page + 1))
		return true
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
		return true
	case "down", "j":
		if p.cursor < len(p.result.Visible)-1 {
			p.cursor++
		}
		return true
	}
	return false
}

// fit pads or truncates a cell to the column width, ANSI-aware.
func fit(s string, width int) string {
	w := xansi.StringWidth(s)
	if w < width {
		return s + strings.Repeat(" ", width-w)
	}
	if w > width {
		return xansi.Cut(s, 0, width)
	}
	return s
}

func (p *listPage[T]) view(width int) string {
	var b strings.Builder

	b.WriteString(styleHeading().Render(p.title))
	b.WriteString("\n")

	// Controls row: search, filter, sort.
	controls := []string{p.search.View()}
	if len(p.filters) > 0 {
		controls = append(controls, styleMuted().Render("f filtre: ")+p.filters[p.filterIdx])
	}
	if len(p.sorts) > 0 {
		controls = append(controls, styleMuted().Render("s tri: ")+p.sorts[p.sortIdx].label)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(controls, "   ")))
	b.WriteString("\n\n")

	if p.loadErr != nil {
		b.WriteString(styleError().Render(p.loadErr.Error()))
		b.WriteString("\n")
		return b.String()
	}
	if p.loading {
		b.WriteString(styleMuted().Render("Chargement…"))
		b.WriteString("\n")
		return b.String()
	}

	// Header row.
	var header strings.Builder
	for _, c := range p.cols {
		header.WriteString(fit(c.title, c.width))
		header.WriteString("  ")
	}
	b.WriteString(styleMuted().Render(strings.TrimRight(header.String(), " ")))
	b.WriteString("\n")

	if len(p.result.Visible) == 0 {
		b.WriteString(styleMuted().Render("Aucun résultat"))
		b.WriteString("\n")
	}

	for i, row := range p.result.Visible {
		var line strings.Builder
		for _, c := range p.cols {
			line.WriteString(fit(c.cell(row), c.width))
			line.WriteString("  ")
		}
		txt := strings.TrimRight(line.String(), " ")
		if lineW := xansi.StringWidth(txt); width > 4 && lineW > width {
			txt = xansi.Cut(txt, 0, width)
		}
		if i == p.cursor {
			txt = styleSelectedRow().Render(txt)
		}
		b.WriteString(txt)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleMuted().Render(fmt.Sprintf(
		"page %d/%d · %d résultat(s) · ←/→ pages", p.result.Page, p.result.TotalPages, p.result.FilteredCount)))
	b.WriteString("\n")
	return b.String()
}
