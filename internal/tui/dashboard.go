package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/turgho/aluguei-cli/internal/session"
	"github.com/turgho/aluguei-cli/pkg/client"
	"github.com/turgho/aluguei-cli/pkg/domain"
)

// revenueBarWidth is how many cells the widest revenue bar occupies.
const revenueBarWidth = 24

// dashLoadedMsg carries a dashboard fetch completion.
type dashLoadedMsg struct {
	dash *domain.Dashboard
	err  error
}

// sessionExpiredMsg tells the root model the backend rejected the stored
// token; the session is discarded and the user lands on the welcome screen.
type sessionExpiredMsg struct{}

type dashboardModel struct {
	client  *client.Client
	session *session.Store
	dash    *domain.Dashboard
	loading bool
	loadErr string
}

func newDashboardModel(c *client.Client, s *session.Store) dashboardModel {
	return dashboardModel{client: c, session: s}
}

// load fetches the dashboard snapshot for the signed-in owner.
func (m *dashboardModel) load() tea.Cmd {
	owner := m.session.Owner()
	if owner == nil {
		return func() tea.Msg { return sessionExpiredMsg{} }
	}
	m.loading = true
	m.loadErr = ""

	c := m.client
	id := owner.ID
	return func() tea.Msg {
		dash, err := c.GetDashboard(context.Background(), id)
		return dashLoadedMsg{dash: dash, err: err}
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) Update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if client.IsStatus(msg.err, 401) {
				return m, func() tea.Msg { return sessionExpiredMsg{} }
			}
			m.loadErr = msg.err.Error()
			return m, nil
		}
		m.dash = msg.dash
		m.loadErr = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			if !m.loading {
				return m, m.load()
			}
		case "n":
			return m, navigateNow(viewProperty)
		case "p":
			return m, navigateNow(viewProfile)
		}
	}
	return m, nil
}

func (m dashboardModel) View() string {
	var b strings.Builder
	b.WriteString("\n")

	if m.loading && m.dash == nil {
		b.WriteString("  " + dimStyle.Render("carregando painel..."))
		return b.String()
	}
	if m.loadErr != "" && m.dash == nil {
		b.WriteString("  " + errorStyle.Render(m.loadErr) + "\n\n")
		b.WriteString("  " + dimStyle.Render("r para tentar novamente"))
		return b.String()
	}
	if m.dash == nil {
		return b.String()
	}

	d := m.dash

	b.WriteString("  " + sectionHeaderStyle.Render("Resumo") + "\n\n")
	b.WriteString(fmt.Sprintf("  Propriedades: %s   Alugadas: %s   Disponíveis: %s\n",
		cardValueStyle.Render(fmt.Sprintf("%d", d.TotalProperties)),
		rentedStyle.Render(fmt.Sprintf("%d", d.RentedProperties)),
		availableStyle.Render(fmt.Sprintf("%d", d.AvailableProperties))))
	b.WriteString(fmt.Sprintf("  Receita mensal: %s\n",
		revenueStyle.Render(formatMoney(d.MonthlyRevenue))))
	b.WriteString(fmt.Sprintf("  Pagamentos pendentes: %s   Atrasados: %s\n",
		amberStyle.Render(fmt.Sprintf("%d", d.PendingPayments)),
		warnStyle.Render(fmt.Sprintf("%d", d.OverduePayments))))

	if len(d.MonthlyRevenues) > 0 {
		b.WriteString("\n  " + sectionHeaderStyle.Render("Receita por mês") + "\n\n")
		max := 0.0
		for _, mr := range d.MonthlyRevenues {
			if mr.Revenue > max {
				max = mr.Revenue
			}
		}
		for _, mr := range d.MonthlyRevenues {
			width := 0
			if max > 0 {
				width = int(mr.Revenue / max * revenueBarWidth)
			}
			if width < 1 && mr.Revenue > 0 {
				width = 1
			}
			b.WriteString(fmt.Sprintf("  %-7s %s %s\n",
				metaStyle.Render(truncStr(mr.Month, 7)),
				barStyle.Render(strings.Repeat("█", width)),
				dimStyle.Render(formatMoney(mr.Revenue))))
		}
	}

	if len(d.RecentPayments) > 0 {
		b.WriteString("\n  " + sectionHeaderStyle.Render("Pagamentos recentes") + "\n\n")
		for _, p := range d.RecentPayments {
			b.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
				dimStyle.Render(p.Date),
				normalStyle.Render(truncStr(p.Tenant, 20)),
				metaStyle.Render(truncStr(p.Property, 24)),
				rentedStyle.Render(formatMoney(p.Amount))))
		}
	}

	if m.loading {
		b.WriteString("\n  " + dimStyle.Render("atualizando..."))
	} else if m.loadErr != "" {
		b.WriteString("\n  " + errorStyle.Render(m.loadErr))
	}

	return b.String()
}
