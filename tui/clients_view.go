// ABOUTME: Clients tab with MRR stat cards and per-client cards
// ABOUTME: Owns the clients snapshot and routes client rows to overview too
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/opsdash/models"
	"github.com/harperreed/opsdash/stats"
)

type clientsState struct {
	rows    []models.Client
	loading bool
}

func (m *Model) applyClients(msg rowsMsg[models.Client]) {
	rows := msg.rows
	if msg.err != nil {
		m.logLoadError(models.CollectionClients, msg.err)
		rows = nil
	}
	switch msg.tab {
	case TabOverview:
		m.overview.clients = rows
		if m.overview.pending > 0 {
			m.overview.pending--
		}
	case TabClients:
		m.clients.rows = rows
		m.clients.loading = false
	}
}

func (m Model) renderClientsView() string {
	cs := stats.Clients(m.clients.rows)

	var s strings.Builder
	s.WriteString(m.theme.Title.Render("Clients"))
	s.WriteString("\n")
	s.WriteString(m.theme.Subtitle.Render(
		fmt.Sprintf("%d active clients • %s MRR", cs.ActiveCount, money(cs.TotalMRR))))
	s.WriteString("\n\n")

	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.statCard("Active Clients", fmt.Sprintf("%d", cs.ActiveCount), ""),
		m.statCard("Total MRR", money(cs.TotalMRR), ""),
		m.statCard("Avg. Client Value", money(cs.AverageValue), ""),
	))
	s.WriteString("\n\n")

	switch {
	case m.clients.loading:
		s.WriteString(m.theme.Muted.Render("Loading..."))
		s.WriteString("\n")
	case len(m.clients.rows) == 0:
		s.WriteString(m.theme.Muted.Render("No active clients yet"))
		s.WriteString("\n")
	default:
		for _, c := range m.clients.rows {
			s.WriteString(m.renderClientCard(c))
			s.WriteString("\n")
		}
	}

	s.WriteString(m.theme.Help.Render("a: add client • r: refresh"))
	return s.String()
}

func (m Model) renderClientCard(c models.Client) string {
	var b strings.Builder
	b.WriteString(m.theme.CardValue.Render(c.Name))
	b.WriteString("  ")
	b.WriteString(m.theme.statusStyle(c.Status).Render(c.Status))
	b.WriteString("\n")
	if c.Product != "" {
		b.WriteString(m.theme.CardLabel.Render("Product: " + c.Product))
		b.WriteString("  ")
	}
	if c.JoinDate != "" {
		b.WriteString(m.theme.Muted.Render("Joined: " + c.JoinDate))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Good.Render(money(c.MRRValue)))
	b.WriteString(m.theme.Muted.Render(" monthly"))
	b.WriteString("  ")
	b.WriteString(m.theme.CardLabel.Render("Health: "))
	b.WriteString(m.theme.healthStyle(c.HealthScore).Render(fmt.Sprintf("%.0f%%", c.HealthScore)))

	w := m.contentWidth() - 6
	if w > 64 {
		w = 64
	}
	return m.theme.Card.Width(w).Render(b.String())
}
