// ABOUTME: Token usage tab with spend stats and per-service cost breakdown
// ABOUTME: Owns the token log snapshot and routes token rows to overview too
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/opsdash/models"
	"github.com/harperreed/opsdash/stats"
)

type tokensState struct {
	rows    []models.TokenLog
	loading bool
}

func (m *Model) applyTokenLogs(msg rowsMsg[models.TokenLog]) {
	rows := msg.rows
	if msg.err != nil {
		m.logLoadError(models.CollectionTokenLogs, msg.err)
		rows = nil
	}
	switch msg.tab {
	case TabOverview:
		m.overview.tokenLogs = rows
		if m.overview.pending > 0 {
			m.overview.pending--
		}
	case TabTokens:
		m.tokens.rows = rows
		m.tokens.loading = false
	}
}

func (m Model) renderTokensView() string {
	ts := stats.Tokens(m.tokens.rows)
	breakdown := stats.TokenBreakdown(m.tokens.rows)

	var s strings.Builder
	s.WriteString(m.theme.Title.Render("Token & API Usage"))
	s.WriteString("\n")
	s.WriteString(m.theme.Subtitle.Render("Track LLM and API costs across services"))
	s.WriteString("\n\n")

	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.statCard("This Week", money(ts.Total), "All services"),
		m.statCard("Daily Avg", moneyCents(ts.DailyAverage), "Running rate"),
		m.statCard("Projected Monthly", money(ts.ProjectedMonthly), "At current rate"),
		m.statCard("Services", fmt.Sprintf("%d", len(breakdown)), ""),
	))
	s.WriteString("\n\n")

	s.WriteString(m.theme.TableHeader.Render("Cost by Service"))
	s.WriteString("\n")
	switch {
	case m.tokens.loading:
		s.WriteString(m.theme.Muted.Render("Loading..."))
		s.WriteString("\n")
	case len(breakdown) == 0:
		s.WriteString(m.theme.Muted.Render("No token usage recorded"))
		s.WriteString("\n")
	default:
		for _, svc := range breakdown {
			name := lipgloss.NewStyle().
				Foreground(lipgloss.Color(svc.Color)).
				Render(fmt.Sprintf("%-28s", svc.Name))
			s.WriteString(fmt.Sprintf("%s %10s\n", name, money(svc.Value)))
		}
	}

	s.WriteString(m.theme.Help.Render("r: refresh"))
	return s.String()
}
