package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pamsartech/jytechinvestment-admin/internal/api"
	"github.com/pamsartech/jytechinvestment-admin/internal/format"
	"github.com/pamsartech/jytechinvestment-admin/internal/listview"
	"github.com/pamsartech/jytechinvestment-admin/internal/model"
	"github.com/pamsartech/jytechinvestment-admin/internal/notify"
)

type view int

const (
	viewNone view = iota
	viewDashboard
	viewCustomers
	viewPayments
	viewReports
	viewPlans
	viewContent
	viewNotifications
	viewCustomerDetail
	viewPaymentDetail
	viewSessionExpired
)

type confirmState struct {
	title   string
	body    string
	yes     bool
	confirm tea.Cmd
}

type dashState struct {
	loading  bool
	err      error
	stats    model.DashboardStats
	recent   []model.RecentPayment
	activity []model.Activity
}

type plansState struct {
	loading bool
	err     error
	plans   []model.Plan
	cursor  int
}

type contentState struct {
	loading bool
	err     error
	content model.SiteContent
	tab     int // 0 terms, 1 privacy, 2 video
}

type notifState struct {
	loading    bool
	err        error
	activities []model.Activity
	unread     int
}

type appModel struct {
	client *api.Client
	notes  *notify.Store

	width  int
	height int

	view    view
	expired bool

	customers listPage[model.Customer]
	payments  listPage[model.Payment]
	reports   listPage[model.Report]

	// Full customer collection plus the all/invited tab derived from it.
	allCustomers []model.Customer
	invitedOnly  bool

	inviteActive bool
	inviteInput  textinput.Model

	dash    dashState
	plans   plansState
	content contentState
	notif   notifState

	customerDetail model.CustomerDetail
	paymentDetail  model.PaymentDetail
	detailLoading  bool
	detailErr      error
	returnView     view

	toast    string
	toastErr bool
	toastSeq int

	confirm *confirmState

	// Document being edited in the external editor plus its temp path.
	editorDoc  string
	editorPath string
}

func newAppModel(client *api.Client, notes *notify.Store) appModel {
	customerCols := []column[model.Customer]{
		{title: "UTILISATEUR", width: 18, cell: func(c model.Customer) string { return c.Username }},
		{title: "EMAIL", width: 28, cell: func(c model.Customer) string { return c.Email }},
		{title: "TÉLÉPHONE", width: 14, cell: func(c model.Customer) string { return c.Phone }},
		{title: "RÔLE", width: 20, cell: func(c model.Customer) string { return renderPill(c.Role.Badge()) }},
		{title: "STATUT", width: 10, cell: func(c model.Customer) string { return renderPill(c.Status.Badge()) }},
		{title: "INSCRIPTION", width: 12, cell: func(c model.Customer) string { return format.Date(c.SignedUpAt) }},
	}
	paymentCols := []column[model.Payment]{
		{title: "MONTANT", width: 10, cell: func(p model.Payment) string { return format.Amount(p.Amount) }},
		{title: "STATUT", width: 12, cell: func(p model.Payment) string { return renderPill(p.Status.Badge()) }},
		{title: "ABONNEMENT", width: 12, cell: func(p model.Payment) string { return renderPill(p.Subscription.Badge()) }},
		{title: "EMAIL", width: 26, cell: func(p model.Payment) string { return p.Email }},
		{title: "TRANSACTION", width: 20, cell: func(p model.Payment) string { return p.TransactionID }},
		{title: "DATE", width: 12, cell: func(p model.Payment) string { return format.Date(p.PaidAt) }},
	}
	reportCols := []column[model.Report]{
		{title: "ID", width: 26, cell: func(r model.Report) string { return r.ID }},
		{title: "CLIENT", width: 20, cell: func(r model.Report) string { return r.CustomerName }},
		{title: "TYPE", width: 12, cell: func(r model.Report) string { return renderPill(r.Type.Badge()) }},
		{title: "STATUT", width: 10, cell: func(r model.Report) string { return renderPill(r.Status.Badge()) }},
		{title: "CRÉÉ", width: 12, cell: func(r model.Report) string { return format.Date(r.CreatedAt) }},
	}

	invite := textinput.New()
	invite.Placeholder = "email@exemple.fr"
	invite.Prompt = "Inviter: "
	invite.CharLimit = 120

	return appModel{
		client:      client,
		notes:       notes,
		view:        viewDashboard,
		inviteInput: invite,
		customers: newListPage("Clients", customerCols, listview.CustomerOptions(),
			[]string{listview.FilterAll, string(model.CustomerActive), string(model.CustomerInactive), string(model.CustomerBlocked)},
			[]sortChoice{{"", "aucun"}, {listview.SortNameAsc, "nom A–Z"}, {listview.SortDateNewest, "plus récents"}}),
		payments: newListPage("Paiements", paymentCols, listview.PaymentOptions(),
			[]string{listview.FilterAll, string(model.PaymentPaid), string(model.PaymentPending), string(model.PaymentFailed), string(model.PaymentRefunded)},
			[]sortChoice{{"", "aucun"}, {listview.SortDateNewest, "plus récents"}, {listview.SortDateOldest, "plus anciens"}, {listview.SortAmountHigh, "montant ↓"}, {listview.SortAmountLow, "montant ↑"}}),
		reports: newListPage("Rapports", reportCols, listview.ReportOptions(),
			[]string{listview.FilterAll, string(model.ReportNew), string(model.ReportEdited), string(model.ReportStatusDeleted)},
			[]sortChoice{{"", "aucun"}, {listview.SortIDAsc, "id A–Z"}, {listview.SortIDDesc, "id Z–A"}, {listview.SortDateNewest, "plus récents"}, {listview.SortDateOldest, "plus anciens"}}),
		dash:    dashState{loading: true},
		plans:   plansState{loading: true},
		content: contentState{loading: true},
		notif:   notifState{loading: true},
	}
}

func (m appModel) Init() tea.Cmd {
	return m.fetchDashboardCmd()
}

// sessionLost reports whether an error means the session is gone; the first
// one flips the whole app to the expired screen, later ones are absorbed.
func (m *appModel) sessionLost(err error) bool {
	if err == nil || !api.IsSessionExpired(err) {
		return false
	}
	if !m.expired {
		m.expired = true
		m.view = viewSessionExpired
	}
	return true
}

// setCustomerTab installs the all/invited slice into the customers page and
// resets to the first page.
func (m *appModel) setCustomerTab(invited bool) {
	m.invitedOnly = invited
	items := m.allCustomers
	if invited {
		items = nil
		for _, c := range m.allCustomers {
			if c.Role == model.RoleInvited {
				items = append(items, c)
			}
		}
	}
	m.customers.items = items
	m.customers.query.Page = 1
	m.customers.recompute()
}

func (m *appModel) showToast(note string, isErr bool) tea.Cmd {
	m.toast = note
	m.toastErr = isErr
	m.toastSeq++
	return toastTickCmd(m.toastSeq)
}

// writeDownload saves a report PDF next to the user's working directory.
func writeDownload(id string, data []byte) (string, error) {
	path := filepath.Join(".", fmt.Sprintf("report-%s.pdf", id))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

