// ABOUTME: Overview tab with cross-domain stat cards and quick actions
// ABOUTME: Fetches clients, financials, and token logs to build the snapshot
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/opsdash/models"
	"github.com/harperreed/opsdash/stats"
)

// overviewState holds the overview tab's own snapshots. pending counts the
// in-flight fetches so the cards can show placeholders until all three land.
type overviewState struct {
	clients    []models.Client
	financials []models.FinancialRecord
	tokenLogs  []models.TokenLog
	pending    int
}

func (m Model) renderOverviewView() string {
	var s strings.Builder

	s.WriteString(m.theme.Title.Render("Dashboard Overview"))
	s.WriteString("\n")
	s.WriteString(m.theme.Subtitle.Render("Welcome back! Here's your business snapshot."))
	s.WriteString("\n\n")

	loading := m.overview.pending > 0
	fin := stats.Financials(m.overview.financials)
	cli := stats.Clients(m.overview.clients)
	tok := stats.Tokens(m.overview.tokenLogs)

	revenue, active, spend, margin := "...", "...", "...", "..."
	if !loading {
		revenue = money(fin.Revenue)
		active = fmt.Sprintf("%d", cli.ActiveCount)
		spend = money(tok.Total)
		margin = fmt.Sprintf("%.1f%%", fin.Margin)
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.statCard("Monthly Revenue", revenue, ""),
		m.statCard("Active Clients", active, ""),
		m.statCard("Token Usage", spend, ""),
		m.statCard("Profit Margin", margin, ""),
	)
	s.WriteString(cards)
	s.WriteString("\n\n")

	s.WriteString(m.theme.TableHeader.Render("Quick Actions"))
	s.WriteString("\n")
	s.WriteString(m.theme.Subtitle.Render("n: new task  •  c: add client  •  v: log revenue  •  e: log expense"))
	s.WriteString("\n")

	s.WriteString(m.theme.Help.Render("1-6: switch tab • r: refresh • t: theme • q: quit"))
	return s.String()
}

func (m Model) handleOverviewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		m.form = newTaskForm(TabOverview)
	case "c":
		m.form = newClientForm(TabOverview)
	case "v":
		m.form = newFinancialForm(TabOverview, models.TypeRevenue)
	case "e":
		m.form = newFinancialForm(TabOverview, models.TypeExpense)
	}
	return m, nil
}

// statCard renders one labeled metric box.
func (m Model) statCard(label, value, note string) string {
	var b strings.Builder
	b.WriteString(m.theme.CardLabel.Render(label))
	b.WriteString("\n")
	b.WriteString(m.theme.CardValue.Render(value))
	if note != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Muted.Render(note))
	}
	return m.theme.Card.Width(20).Render(b.String())
}
