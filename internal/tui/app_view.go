package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/pamsartech/jytechinvestment-admin/internal/format"
	"github.com/pamsartech/jytechinvestment-admin/internal/model"
)

var tabLabels = []struct {
	v     view
	label string
}{
	{viewDashboard, "1 Tableau de bord"},
	{viewCustomers, "2 Clients"},
	{viewPayments, "3 Paiements"},
	{viewReports, "4 Rapports"},
	{viewPlans, "5 Plans"},
	{viewContent, "6 Contenu"},
	{viewNotifications, "7 Notifications"},
}

func (m appModel) View() string {
	if m.view == viewSessionExpired {
		return m.viewExpired()
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.view {
	case viewDashboard:
		b.WriteString(m.viewDash())
	case viewCustomers:
		b.WriteString(m.viewCustomers())
	case viewPayments:
		b.WriteString(m.payments.view(m.contentWidth()))
	case viewReports:
		b.WriteString(m.reports.view(m.contentWidth()))
	case viewPlans:
		b.WriteString(m.viewPlans())
	case viewContent:
		b.WriteString(m.viewSiteContent())
	case viewNotifications:
		b.WriteString(m.viewNotifications())
	case viewCustomerDetail:
		b.WriteString(m.viewCustomerDetail())
	case viewPaymentDetail:
		b.WriteString(m.viewPaymentDetail())
	}

	if m.toast != "" {
		b.WriteString("\n")
		if m.toastErr {
			b.WriteString(styleError().Render(m.toast))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(colorSuccess).Render(m.toast))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleMuted().Render(m.helpLine()))

	out := b.String()
	if m.confirm != nil {
		out = m.renderConfirm()
	}
	return out
}

func (m appModel) contentWidth() int {
	if m.width > 0 {
		return m.width
	}
	return 100
}

func (m appModel) renderTabs() string {
	parts := make([]string, 0, len(tabLabels))
	for _, t := range tabLabels {
		active := m.view == t.v ||
			(m.view == viewCustomerDetail && t.v == viewCustomers) ||
			(m.view == viewPaymentDetail && t.v == viewPayments)
		if active {
			parts = append(parts, styleTabActive().Render(t.label))
		} else {
			parts = append(parts, styleTab().Render(t.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, " "))
}

func (m appModel) helpLine() string {
	switch m.view {
	case viewCustomers:
		return "/ rechercher  f filtre  s tri  t onglet  i inviter  ←/→ pages  entrée détail  r rafraîchir  q quitter"
	case viewPayments:
		return "/ rechercher  f filtre  s tri  ←/→ pages  ↑/↓ sélection  entrée détail  r rafraîchir  q quitter"
	case viewReports:
		return "/ rechercher  f filtre  s tri  ←/→ pages  d télécharger  x supprimer  r rafraîchir  q quitter"
	case viewPlans:
		return "↑/↓ sélection  a activer/désactiver  r rafraîchir  q quitter"
	case viewContent:
		return "tab document  e éditer  r rafraîchir  q quitter"
	case viewNotifications:
		return "m tout marquer lu  r rafraîchir  q quitter"
	case viewCustomerDetail:
		return "b bloquer/débloquer  échap retour  q quitter"
	case viewPaymentDetail:
		return "échap retour  q quitter"
	default:
		return "1-7 sections  r rafraîchir  q quitter"
	}
}

func (m appModel) viewExpired() string {
	var b strings.Builder
	b.WriteString(styleHeading().Render("Session expirée"))
	b.WriteString("\n\n")
	b.WriteString("Votre session n'est plus valide.\n")
	b.WriteString("Reconnectez-vous avec `jyadmin login`.\n\n")
	b.WriteString(styleMuted().Render("Appuyez sur une touche pour quitter"))
	return b.String()
}

func statTile(label string, value int) string {
	return lipgloss.NewStyle().
		Padding(0, 2).
		Background(colorControlBg).
		Foreground(colorSurfaceFg).
		Render(fmt.Sprintf("%d\n%s", value, label))
}

func (m appModel) viewDash() string {
	var b strings.Builder
	b.WriteString(styleHeading().Render("Tableau de bord"))
	b.WriteString("\n\n")

	if m.dash.err != nil {
		b.WriteString(styleError().Render(m.dash.err.Error()))
		b.WriteString("\n")
		return b.String()
	}
	if m.dash.loading {
		b.WriteString(styleMuted().Render("Chargement…"))
		b.WriteString("\n")
		return b.String()
	}

	tiles := lipgloss.JoinHorizontal(lipgloss.Top,
		statTile("Utilisateurs", m.dash.stats.TotalUsers), " ",
		statTile("Actifs", m.dash.stats.ActiveUsers), " ",
		statTile("Inactifs", m.dash.stats.InactiveUsers), " ",
		statTile("Rapports aujourd'hui", m.dash.stats.ReportsToday),
	)
	b.WriteString(tiles)
	b.WriteString("\n\n")

	b.WriteString(styleHeading().Render("Derniers abonnements"))
	b.WriteString("\n")
	if len(m.dash.recent) == 0 {
		b.WriteString(styleMuted().Render("Aucun paiement récent"))
		b.WriteString("\n")
	}
	for _, p := range m.dash.recent {
		b.WriteString(fmt.Sprintf("%s  %s  %s  %s\n",
			fit(model.OrDash(p.UserName), 20),
			fit(model.OrDash(p.PlanName), 16),
			fit(format.Amount(p.Amount), 10),
			format.Date(p.PaidAt)))
	}

	b.WriteString("\n")
	b.WriteString(styleHeading().Render("Activité récente"))
	b.WriteString("\n")
	if len(m.dash.activity) == 0 {
		b.WriteString(styleMuted().Render("Aucune activité"))
		b.WriteString("\n")
	}
	for i, a := range m.dash.activity {
		if i >= 8 {
			break
		}
		b.WriteString(fmt.Sprintf("%s  %s %s  %s\n",
			renderPill(a.Kind.Badge()),
			model.OrDash(a.UserName),
			a.Action,
			styleMuted().Render(format.TimeAgo(a.At, time.Now()))))
	}
	return b.String()
}

func (m appModel) viewCustomers() string {
	var b strings.Builder

	tab := "Tous"
	if m.invitedOnly {
		tab = "Invités"
	}
	b.WriteString(styleMuted().Render("t onglet: ") + tab)
	b.WriteString("\n")

	if m.inviteActive {
		b.WriteString(m.inviteInput.View())
		b.WriteString("\n")
	}

	b.WriteString(m.customers.view(m.contentWidth()))
	return b.String()
}

func (m appModel) viewPlans() string {
	var b strings.Builder
	b.WriteString(styleHeading().Render("Plans d'abonnement"))
	b.WriteString("\n\n")

	if m.plans.err != nil {
		b.WriteString(styleError().Render(m.plans.err.Error()))
		b.WriteString("\n")
		return b.String()
	}
	if m.plans.loading {
		b.WriteString(styleMuted().Render("Chargement…"))
		b.WriteString("\n")
		return b.String()
	}
	if len(m.plans.plans) == 0 {
		b.WriteString(styleMuted().Render("Aucun plan"))
		b.WriteString("\n")
		return b.String()
	}

	header := fit("NOM", 18) + "  " + fit("TYPE", 12) + "  " + fit("MENSUEL", 10) + "  " + fit("ANNUEL", 10) + "  " + "ÉTAT"
	b.WriteString(styleMuted().Render(header))
	b.WriteString("\n")

	for i, p := range m.plans.plans {
		monthly, yearly := model.Placeholder, model.Placeholder
		if pr, ok := p.PriceFor(1); ok {
			monthly = format.Amount(pr.Price)
		}
		if pr, ok := p.PriceFor(12); ok {
			yearly = format.Amount(pr.Price)
		}
		state := "actif"
		if !p.Active {
			state = "inactif"
		}
		line := fit(p.Name, 18) + "  " + fit(string(p.Type), 12) + "  " +
			fit(monthly, 10) + "  " + fit(yearly, 10) + "  " + state
		if i == m.plans.cursor {
			line = styleSelectedRow().Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	sel := m.plans.plans[m.plans.cursor]
	if len(sel.Features) > 0 {
		b.WriteString("\n")
		b.WriteString(styleMuted().Render("Fonctionnalités: " + strings.Join(sel.Features, " · ")))
		b.WriteString("\n")
	}
	return b.String()
}

var contentTabs = []string{"Conditions générales", "Politique de confidentialité", "Tutoriel vidéo"}

func (m appModel) viewSiteContent() string {
	var b strings.Builder
	b.WriteString(styleHeading().Render("Contenu du site"))
	b.WriteString("\n\n")

	if m.content.err != nil {
		b.WriteString(styleError().Render(m.content.err.Error()))
		b.WriteString("\n")
		return b.String()
	}
	if m.content.loading {
		b.WriteString(styleMuted().Render("Chargement…"))
		b.WriteString("\n")
		return b.String()
	}

	parts := make([]string, 0, len(contentTabs))
	for i, t := range contentTabs {
		if i == m.content.tab {
			parts = append(parts, styleTabActive().Render(t))
		} else {
			parts = append(parts, styleTab().Render(t))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, " ")))
	b.WriteString("\n\n")

	width := m.contentWidth()
	if width > 100 {
		width = 100
	}

	switch m.content.tab {
	case 0:
		if strings.TrimSpace(m.content.content.Terms) == "" {
			b.WriteString(styleMuted().Render("Document vide"))
		} else {
			b.WriteString(renderMarkdown(m.content.content.Terms, width))
		}
	case 1:
		if strings.TrimSpace(m.content.content.Privacy) == "" {
			b.WriteString(styleMuted().Render("Document vide"))
		} else {
			b.WriteString(renderMarkdown(m.content.content.Privacy, width))
		}
	case 2:
		b.WriteString("Titre: " + model.OrDash(m.content.content.VideoTitle) + "\n")
		b.WriteString("URL:   " + model.OrDash(m.content.content.VideoURL))
	}
	b.WriteString("\n")
	return b.String()
}

func (m appModel) viewNotifications() string {
	var b strings.Builder
	title := "Notifications"
	if m.notif.unread > 0 {
		title = fmt.Sprintf("Notifications (%d non lues)", m.notif.unread)
	}
	b.WriteString(styleHeading().Render(title))
	b.WriteString("\n\n")

	if m.notif.err != nil {
		b.WriteString(styleError().Render(m.notif.err.Error()))
		b.WriteString("\n")
		return b.String()
	}
	if m.notif.loading {
		b.WriteString(styleMuted().Render("Chargement…"))
		b.WriteString("\n")
		return b.String()
	}
	if len(m.notif.activities) == 0 {
		b.WriteString(styleMuted().Render("Aucune notification"))
		b.WriteString("\n")
		return b.String()
	}

	for _, a := range m.notif.activities {
		b.WriteString(fmt.Sprintf("%s  %s %s  %s\n",
			renderPill(a.Kind.Badge()),
			model.OrDash(a.UserName),
			a.Action,
			styleMuted().Render(format.TimeAgo(a.At, time.Now()))))
	}
	return b.String()
}

func detailRow(label, value string) string {
	return fit(label, 16) + "  " + value + "\n"
}

func (m appModel) viewCustomerDetail() string {
	var b strings.Builder
	b.WriteString(styleHeading().Render("Fiche client"))
	b.WriteString("\n\n")

	if m.detailErr != nil {
		b.WriteString(styleError().Render(m.detailErr.Error()))
		b.WriteString("\n")
		return b.String()
	}
	if m.detailLoading {
		b.WriteString(styleMuted().Render("Chargement…"))
		b.WriteString("\n")
		return b.String()
	}

	d := m.customerDetail
	b.WriteString(detailRow("Nom", model.OrDash(d.Name)))
	b.WriteString(detailRow("Email", model.OrDash(d.Email)))
	b.WriteString(detailRow("Téléphone", model.OrDash(d.Phone)))
	b.WriteString(detailRow("Plan", model.OrDash(d.PlanName)))
	b.WriteString(detailRow("Statut", renderPill(d.Status.Badge())))
	b.WriteString(detailRow("Dernière visite", format.DateTime(d.LastLogin)))
	b.WriteString("\n")
	b.WriteString(styleHeading().Render("Abonnement"))
	b.WriteString("\n")
	b.WriteString(detailRow("Début", format.Date(d.SubscriptionStart)))
	b.WriteString(detailRow("Fin", format.Date(d.SubscriptionEnd)))
	b.WriteString(detailRow("Jours restants", fmt.Sprintf("%d", d.DaysRemaining(time.Now()))))

	b.WriteString("\n")
	b.WriteString(styleHeading().Render("Rapports"))
	b.WriteString("\n")
	if len(d.Reports) == 0 {
		b.WriteString(styleMuted().Render("Aucun rapport"))
		b.WriteString("\n")
	}
	for _, r := range d.Reports {
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			fit(r.ID, 26), renderPill(r.Type.Badge()), format.Date(r.CreatedAt)))
	}
	return b.String()
}

func (m appModel) viewPaymentDetail() string {
	var b strings.Builder
	b.WriteString(styleHeading().Render("Détail du paiement"))
	b.WriteString("\n\n")

	if m.detailErr != nil {
		b.WriteString(styleError().Render(m.detailErr.Error()))
		b.WriteString("\n")
		return b.String()
	}
	if m.detailLoading {
		b.WriteString(styleMuted().Render("Chargement…"))
		b.WriteString("\n")
		return b.String()
	}

	d := m.paymentDetail
	b.WriteString(detailRow("Payeur", model.OrDash(d.PayerName)))
	b.WriteString(detailRow("Email", model.OrDash(d.Email)))
	b.WriteString(detailRow("Plan", model.OrDash(d.PlanName)))
	b.WriteString(detailRow("Montant", format.Amount(d.Amount)))
	b.WriteString(detailRow("Statut", renderPill(d.Status.Badge())))
	b.WriteString(detailRow("Abonnement", renderPill(d.Subscription.Badge())))
	b.WriteString(detailRow("Moyen", model.OrDash(d.Method)))
	b.WriteString(detailRow("Transaction", model.OrDash(d.TransactionID)))
	b.WriteString(detailRow("Date", format.DateTime(d.PaidAt)))
	if d.Discount > 0 {
		b.WriteString(detailRow("Remise", fmt.Sprintf("%.0f %%", d.Discount)))
	}
	if d.PromoCode != "" {
		b.WriteString(detailRow("Code promo", d.PromoCode))
	}
	return b.String()
}

// renderConfirm draws the confirm dialog centered in the window.
func (m appModel) renderConfirm() string {
	c := m.confirm

	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	yes := btnBase.Render("Confirmer")
	no := btnActive.Render("Annuler")
	if c.yes {
		yes = btnActive.Render("Confirmer")
		no = btnBase.Render("Annuler")
	}
	controls := lipgloss.JoinHorizontal(lipgloss.Top, yes, " ", no)

	body := strings.Join([]string{
		c.body,
		"",
		controls,
		"",
		styleMuted().Render("tab: choix   entrée: valider   échap: annuler"),
	}, "\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(styleHeading().Render(c.title) + "\n\n" + body)

	w, h := m.width, m.height
	if w <= 0 {
		w = xansi.StringWidth(box) + 2
	}
	if h <= 0 {
		h = strings.Count(box, "\n") + 3
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, box)
}
