package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pamsartech/jytechinvestment-admin/internal/model"
)

// List fetch results carry the sequence of the request that produced them;
// the pages drop anything older than their latest issued sequence.
type customersLoadedMsg struct {
	seq       int
	customers []model.Customer
	err       error
}

type paymentsLoadedMsg struct {
	seq      int
	payments []model.Payment
	err      error
}

type reportsLoadedMsg struct {
	seq     int
	reports []model.Report
	err     error
}

type dashboardLoadedMsg struct {
	stats    model.DashboardStats
	recent   []model.RecentPayment
	activity []model.Activity
	err      error
}

type plansLoadedMsg struct {
	plans []model.Plan
	err   error
}

type contentLoadedMsg struct {
	content model.SiteContent
	err     error
}

type notificationsLoadedMsg struct {
	activities []model.Activity
	unread     int
	err        error
}

type customerDetailMsg struct {
	detail model.CustomerDetail
	err    error
}

type paymentDetailMsg struct {
	detail model.PaymentDetail
	err    error
}

// actionDoneMsg reports a mutating call (block, invite, delete, save). The
// note becomes a toast on success.
type actionDoneMsg struct {
	note    string
	refresh view // view to reload after success, viewNone for none
	err     error
}

type downloadDoneMsg struct {
	path string
	err  error
}

type toastExpireMsg struct{ seq int }

type editorDoneMsg struct {
	doc string // which document was edited
	err error
}

const fetchTimeout = 60 * time.Second

func fetchCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), fetchTimeout)
}

func (m appModel) fetchCustomersCmd(seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchCtx()
		defer cancel()
		customers, err := m.client.ListCustomers(ctx)
		return customersLoadedMsg{seq: seq, customers: customers, err: err}
	}
}

func (m appModel) fetchPaymentsCmd(seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchCtx()
		defer cancel()
		payments, err := m.client.ListPayments(ctx)
		return paymentsLoadedMsg{seq: seq, payments: payments, err: err}
	}
}

func (m appModel) fetchReportsCmd(seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchCtx()
		defer cancel()
		reports, err := m.client.ListReports(ctx)
		return reportsLoadedMsg{seq: seq, reports: reports, err: err}
	}
}

func (m appModel) fetchDashboardCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchCtx()
		defer cancel()
		stats, err := m.client.GetDashboardStats(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		recent, err := m.client.ListRecentPayments(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		activity, err := m.client.ListRecentActivity(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		return dashboardLoadedMsg{stats: stats, recent: recent, activity: activity}
	}
}

func (m appModel) fetchPlansCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchCtx()
		defer cancel()
		plans, err := m.client.ListPlans(ctx)
		return plansLoadedMsg{plans: plans, err: err}
	}
}

func (m appModel) fetchContentCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchCtx()
		defer cancel()
		content, err := m.client.GetContent(ctx)
		return contentLoadedMsg{content: content, err: err}
	}
}

func (m appModel) fetchNotificationsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchCtx()
		defer cancel()
		activities, err := m.client.ListRecentActivity(ctx)
		if err != nil {
			return notificationsLoadedMsg{err: err}
		}
		unread := len(activities)
		if m.notes != nil {
			if n, err := m.notes.UnreadCount(ctx, activities); err == nil {
				unread = n
			}
		}
		return notificationsLoadedMsg{activities: activities, unread: unread}
	}
}

func (m appModel) fetchCustomerDetailCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchCtx()
		defer cancel()
		detail, err := m.client.GetCustomer(ctx, id)
		return customerDetailMsg{detail: detail, err: err}
	}
}

func (m appModel) fetchPaymentDetailCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchCtx()
		defer cancel()
		detail, err := m.client.GetPayment(ctx, id)
		return paymentDetailMsg{detail: detail, err: err}
	}
}

func (m appModel) toggleBlockCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchCtx()
		defer cancel()
		err := m.client.ToggleBlock(ctx, id)
		return actionDoneMsg{note: "Statut de blocage modifié", refresh: viewCustomers, err: err}
	}
}

func (m appModel) inviteCmd(email string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchCtx()
		defer cancel()
		note, err := m.client.InviteCustomer(ctx, email)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{note: note, refresh: viewCustomers}
	}
}

func (m appModel) softDeleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchCtx()
		defer cancel()
		err := m.client.SoftDeleteReport(ctx, id)
		return actionDoneMsg{note: "Rapport supprimé", refresh: viewReports, err: err}
	}
}

func (m appModel) downloadReportCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchCtx()
		defer cancel()
		data, _, err := m.client.DownloadReport(ctx, id)
		if err != nil {
			return downloadDoneMsg{err: err}
		}
		path, err := writeDownload(id, data)
		return downloadDoneMsg{path: path, err: err}
	}
}

func (m appModel) togglePlanCmd(plan model.Plan) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchCtx()
		defer cancel()
		plan.Active = !plan.Active
		err := m.client.UpdatePlan(ctx, plan)
		return actionDoneMsg{note: "Plan enregistré", refresh: viewPlans, err: err}
	}
}

func (m appModel) markAllReadCmd(activities []model.Activity) tea.Cmd {
	return func() tea.Msg {
		if m.notes == nil {
			return actionDoneMsg{note: "Notifications lues", refresh: viewNotifications}
		}
		ctx, cancel := fetchCtx()
		defer cancel()
		ids := make([]string, 0, len(activities))
		for _, a := range activities {
			ids = append(ids, a.ID)
		}
		err := m.notes.MarkSeen(ctx, ids...)
		return actionDoneMsg{note: "Notifications lues", refresh: viewNotifications, err: err}
	}
}

func toastTickCmd(seq int) tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return toastExpireMsg{seq: seq} })
}
