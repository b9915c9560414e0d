package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pamsartech/jytechinvestment-admin/internal/model"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case customersLoadedMsg:
		if m.sessionLost(msg.err) {
			return m, nil
		}
		if m.customers.absorb(msg.seq, msg.customers, msg.err) && msg.err == nil {
			m.allCustomers = msg.customers
			if m.invitedOnly {
				m.setCustomerTab(true)
			}
		}
		return m, nil

	case paymentsLoadedMsg:
		if m.sessionLost(msg.err) {
			return m, nil
		}
		m.payments.absorb(msg.seq, msg.payments, msg.err)
		return m, nil

	case reportsLoadedMsg:
		if m.sessionLost(msg.err) {
			return m, nil
		}
		m.reports.absorb(msg.seq, msg.reports, msg.err)
		return m, nil

	case dashboardLoadedMsg:
		if m.sessionLost(msg.err) {
			return m, nil
		}
		m.dash = dashState{err: msg.err, stats: msg.stats, recent: msg.recent, activity: msg.activity}
		return m, nil

	case plansLoadedMsg:
		if m.sessionLost(msg.err) {
			return m, nil
		}
		m.plans.loading = false
		m.plans.err = msg.err
		if msg.err == nil {
			m.plans.plans = msg.plans
			if m.plans.cursor >= len(msg.plans) {
				m.plans.cursor = 0
			}
		}
		return m, nil

	case contentLoadedMsg:
		if m.sessionLost(msg.err) {
			return m, nil
		}
		m.content.loading = false
		m.content.err = msg.err
		if msg.err == nil {
			m.content.content = msg.content
		}
		return m, nil

	case notificationsLoadedMsg:
		if m.sessionLost(msg.err) {
			return m, nil
		}
		m.notif = notifState{err: msg.err, activities: msg.activities, unread: msg.unread}
		return m, nil

	case customerDetailMsg:
		if m.sessionLost(msg.err) {
			return m, nil
		}
		m.detailLoading = false
		m.detailErr = msg.err
		if msg.err == nil {
			m.customerDetail = msg.detail
		}
		return m, nil

	case paymentDetailMsg:
		if m.sessionLost(msg.err) {
			return m, nil
		}
		m.detailLoading = false
		m.detailErr = msg.err
		if msg.err == nil {
			m.paymentDetail = msg.detail
		}
		return m, nil

	case actionDoneMsg:
		if m.sessionLost(msg.err) {
			return m, nil
		}
		if msg.err != nil {
			return m, m.showToast(msg.err.Error(), true)
		}
		cmds := []tea.Cmd{m.showToast(msg.note, false)}
		if refresh := m.refreshCmdFor(msg.refresh); refresh != nil {
			cmds = append(cmds, refresh)
		}
		return m, tea.Batch(cmds...)

	case downloadDoneMsg:
		if m.sessionLost(msg.err) {
			return m, nil
		}
		if msg.err != nil {
			return m, m.showToast(msg.err.Error(), true)
		}
		return m, m.showToast("Téléchargé: "+msg.path, false)

	case editorDoneMsg:
		return m.finishEditor(msg)

	case toastExpireMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil
	}

	return m, nil
}

// refreshCmdFor reloads the named view after a successful action.
func (m *appModel) refreshCmdFor(v view) tea.Cmd {
	switch v {
	case viewCustomers:
		return m.fetchCustomersCmd(m.customers.nextSeq())
	case viewPayments:
		return m.fetchPaymentsCmd(m.payments.nextSeq())
	case viewReports:
		return m.fetchReportsCmd(m.reports.nextSeq())
	case viewPlans:
		m.plans.loading = true
		return m.fetchPlansCmd()
	case viewContent:
		m.content.loading = true
		return m.fetchContentCmd()
	case viewNotifications:
		m.notif.loading = true
		return m.fetchNotificationsCmd()
	case viewDashboard:
		m.dash.loading = true
		return m.fetchDashboardCmd()
	default:
		return nil
	}
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The confirm modal swallows everything while open.
	if m.confirm != nil {
		switch msg.String() {
		case "tab", "left", "right":
			m.confirm.yes = !m.confirm.yes
		case "enter":
			c := m.confirm
			m.confirm = nil
			if c.yes {
				return m, c.confirm
			}
		case "esc":
			m.confirm = nil
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	// The invite prompt likewise captures input while open.
	if m.inviteActive {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.inviteActive = false
			m.inviteInput.Blur()
		case "enter":
			email := strings.TrimSpace(m.inviteInput.Value())
			m.inviteActive = false
			m.inviteInput.Blur()
			m.inviteInput.SetValue("")
			if email != "" {
				return m, m.inviteCmd(email)
			}
		default:
			var cmd tea.Cmd
			m.inviteInput, cmd = m.inviteInput.Update(msg)
			_ = cmd
		}
		return m, nil
	}

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.view == viewSessionExpired {
		// Any key exits; the user has to log in again from the shell.
		return m, tea.Quit
	}

	// Keys inside a focused search input take precedence over navigation.
	if page := m.activePage(); page != nil && page.searchFocused() {
		page.key(msg)
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "1":
		return m.switchView(viewDashboard)
	case "2":
		return m.switchView(viewCustomers)
	case "3":
		return m.switchView(viewPayments)
	case "4":
		return m.switchView(viewReports)
	case "5":
		return m.switchView(viewPlans)
	case "6":
		return m.switchView(viewContent)
	case "7":
		return m.switchView(viewNotifications)
	case "r":
		if cmd := m.refreshCmdFor(m.view); cmd != nil {
			return m, cmd
		}
		return m, nil
	}

	switch m.view {
	case viewCustomers:
		switch msg.String() {
		case "enter":
			if c, ok := m.customers.selected(); ok {
				m.view = viewCustomerDetail
				m.returnView = viewCustomers
				m.detailLoading = true
				m.detailErr = nil
				return m, m.fetchCustomerDetailCmd(c.ID)
			}
			return m, nil
		case "t":
			m.setCustomerTab(!m.invitedOnly)
			return m, nil
		case "i":
			m.inviteActive = true
			m.inviteInput.Focus()
			return m, nil
		}
		m.customers.handleKey(msg)
		return m, nil

	case viewPayments:
		if msg.String() == "enter" {
			if p, ok := m.payments.selected(); ok {
				m.view = viewPaymentDetail
				m.returnView = viewPayments
				m.detailLoading = true
				m.detailErr = nil
				return m, m.fetchPaymentDetailCmd(p.ID)
			}
			return m, nil
		}
		m.payments.handleKey(msg)
		return m, nil

	case viewReports:
		switch msg.String() {
		case "d":
			if r, ok := m.reports.selected(); ok {
				if !r.Downloadable() {
					return m, m.showToast("Seuls les rapports complets ont un PDF", true)
				}
				return m, m.downloadReportCmd(r.ID)
			}
			return m, nil
		case "x":
			if r, ok := m.reports.selected(); ok {
				m.confirm = &confirmState{
					title:   "Supprimer le rapport",
					body:    "Supprimer le rapport " + r.ID + " ?",
					confirm: m.softDeleteCmd(r.ID),
				}
			}
			return m, nil
		}
		m.reports.handleKey(msg)
		return m, nil

	case viewCustomerDetail, viewPaymentDetail:
		switch msg.String() {
		case "esc", "backspace":
			m.view = m.returnView
			return m, nil
		case "b":
			if m.view == viewCustomerDetail && !m.detailLoading && m.detailErr == nil {
				d := m.customerDetail
				verb := "bloquer"
				if d.Status == model.CustomerBlocked {
					verb = "débloquer"
				}
				m.confirm = &confirmState{
					title:   "Confirmation",
					body:    "Voulez-vous " + verb + " " + d.Name + " ?",
					confirm: m.toggleBlockCmd(d.ID),
				}
			}
			return m, nil
		}
		return m, nil

	case viewPlans:
		switch msg.String() {
		case "up", "k":
			if m.plans.cursor > 0 {
				m.plans.cursor--
			}
		case "down", "j":
			if m.plans.cursor < len(m.plans.plans)-1 {
				m.plans.cursor++
			}
		case "a":
			if len(m.plans.plans) > 0 {
				plan := m.plans.plans[m.plans.cursor]
				m.confirm = &confirmState{
					title:   "Enregistrer le plan",
					body:    "Changer l'état du plan \"" + plan.Name + "\" ?",
					confirm: m.togglePlanCmd(plan),
				}
			}
		}
		return m, nil

	case viewContent:
		switch msg.String() {
		case "tab":
			m.content.tab = (m.content.tab + 1) % 3
			return m, nil
		case "e":
			return m.openEditor()
		}
		return m, nil

	case viewNotifications:
		if msg.String() == "m" {
			return m, m.markAllReadCmd(m.notif.activities)
		}
		return m, nil
	}

	return m, nil
}

func (m appModel) switchView(v view) (tea.Model, tea.Cmd) {
	if m.view == v {
		return m, nil
	}
	m.view = v
	// Every page reloads on entry so the data is never stale on arrival.
	if cmd := m.refreshCmdFor(v); cmd != nil {
		return m, cmd
	}
	return m, nil
}

// pageKeys is the minimal surface app_update needs from a listPage without
// knowing its row type.
type pageKeys interface {
	searchFocused() bool
	key(tea.KeyMsg) bool
}

func (p *listPage[T]) searchFocused() bool     { return p.search.Focused() }
func (p *listPage[T]) key(msg tea.KeyMsg) bool { return p.handleKey(msg) }

func (m *appModel) activePage() pageKeys {
	switch m.view {
	case viewCustomers:
		return &m.customers
	case viewPayments:
		return &m.payments
	case viewReports:
		return &m.reports
	default:
		return nil
	}
}
