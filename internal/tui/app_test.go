package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pamsartech/jytechinvestment-admin/internal/api"
	"github.com/pamsartech/jytechinvestment-admin/internal/model"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(appModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func sampleCustomers() []model.Customer {
	return []model.Customer{
		{ID: "1", Username: "alice", Role: model.RoleUser},
		{ID: "2", Username: "bob", Role: model.RoleInvited},
		{ID: "3", Username: "carol", Role: model.RolePremium},
	}
}

func TestInvitedTabFiltersRoles(t *testing.T) {
	t.Parallel()

	m := newAppModel(nil, nil)
	m.view = viewCustomers
	seq := m.customers.nextSeq()
	m = update(t, m, customersLoadedMsg{seq: seq, customers: sampleCustomers()})

	if got := m.customers.result.FilteredCount; got != 3 {
		t.Fatalf("all tab count = %d, want 3", got)
	}

	m = update(t, m, runeKey('t'))
	if !m.invitedOnly {
		t.Fatal("invitedOnly not set after t")
	}
	if got := m.customers.result.FilteredCount; got != 1 {
		t.Fatalf("invited tab count = %d, want 1", got)
	}
	if m.customers.result.Visible[0].Username != "bob" {
		t.Fatalf("invited tab shows %q", m.customers.result.Visible[0].Username)
	}

	m = update(t, m, runeKey('t'))
	if got := m.customers.result.FilteredCount; got != 3 {
		t.Fatalf("back to all tab count = %d, want 3", got)
	}
}

func TestInvitedTabSurvivesRefresh(t *testing.T) {
	t.Parallel()

	m := newAppModel(nil, nil)
	m.view = viewCustomers
	seq := m.customers.nextSeq()
	m = update(t, m, customersLoadedMsg{seq: seq, customers: sampleCustomers()})
	m = update(t, m, runeKey('t'))

	seq = m.customers.nextSeq()
	m = update(t, m, customersLoadedMsg{seq: seq, customers: sampleCustomers()})

	if got := m.customers.result.FilteredCount; got != 1 {
		t.Fatalf("refresh dropped the invited tab: count = %d, want 1", got)
	}
}

func TestSessionExpiryFlipsViewOnce(t *testing.T) {
	t.Parallel()

	expired := fmt.Errorf("%w: votre session a expiré", api.ErrSessionExpired)

	m := newAppModel(nil, nil)
	m.view = viewPayments
	seq := m.payments.nextSeq()
	m = update(t, m, paymentsLoadedMsg{seq: seq, err: expired})

	if m.view != viewSessionExpired {
		t.Fatalf("view = %d, want session expired", m.view)
	}

	// Another in-flight request expiring at the same time changes nothing.
	seq = m.customers.nextSeq()
	m = update(t, m, customersLoadedMsg{seq: seq, err: expired})
	if m.view != viewSessionExpired {
		t.Fatalf("view = %d after second expiry", m.view)
	}
}

func TestOrdinaryErrorDoesNotExpireSession(t *testing.T) {
	t.Parallel()

	m := newAppModel(nil, nil)
	m.view = viewPayments
	seq := m.payments.nextSeq()
	m = update(t, m, paymentsLoadedMsg{seq: seq, err: &api.Error{Message: "panne", Status: 500}})

	if m.view != viewPayments {
		t.Fatalf("view = %d, want payments", m.view)
	}
	if m.payments.loadErr == nil {
		t.Fatal("load error not surfaced")
	}
}

func TestToastExpiryIsSequenceGuarded(t *testing.T) {
	t.Parallel()

	m := newAppModel(nil, nil)
	_ = m.showToast("premier", false)
	old := m.toastSeq
	_ = m.showToast("second", false)

	m = update(t, m, toastExpireMsg{seq: old})
	if m.toast != "second" {
		t.Fatalf("stale expiry cleared the toast: %q", m.toast)
	}

	m = update(t, m, toastExpireMsg{seq: m.toastSeq})
	if m.toast != "" {
		t.Fatalf("toast not cleared: %q", m.toast)
	}
}

func TestInvitePromptCapturesKeys(t *testing.T) {
	t.Parallel()

	m := newAppModel(nil, nil)
	m.view = viewCustomers
	m = update(t, m, runeKey('i'))
	if !m.inviteActive {
		t.Fatal("invite prompt not open")
	}

	// `q` must type into the prompt, not quit the app.
	m = update(t, m, runeKey('q'))
	if got := m.inviteInput.Value(); got != "q" {
		t.Fatalf("invite input = %q", got)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.inviteActive {
		t.Fatal("esc did not close the prompt")
	}
}

func TestConfirmModalSwallowsKeys(t *testing.T) {
	t.Parallel()

	fired := false
	m := newAppModel(nil, nil)
	m.view = viewReports
	m.confirm = &confirmState{
		title:   "Confirmation",
		body:    "?",
		confirm: func() tea.Msg { fired = true; return nil },
	}

	// Navigation keys must not leak to the page underneath.
	m = update(t, m, runeKey('x'))
	if m.confirm == nil {
		t.Fatal("modal closed by unrelated key")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(appModel)
	if m.confirm != nil {
		t.Fatal("modal still open after enter")
	}
	if cmd == nil {
		t.Fatal("confirm command not returned")
	}
	_ = cmd()
	if !fired {
		t.Fatal("confirm command not executed")
	}
}
