// ABOUTME: Workflows tab with run-status stats and per-workflow success bars
// ABOUTME: Owns the workflows snapshot and its loading/empty states
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/opsdash/models"
	"github.com/harperreed/opsdash/stats"
)

type workflowsState struct {
	rows    []models.Workflow
	loading bool
}

func (m *Model) applyWorkflows(msg rowsMsg[models.Workflow]) {
	rows := msg.rows
	if msg.err != nil {
		m.logLoadError(models.CollectionWorkflows, msg.err)
		rows = nil
	}
	m.workflows.rows = rows
	m.workflows.loading = false
}

func (m Model) renderWorkflowsView() string {
	ws := stats.Workflows(m.workflows.rows)

	var s strings.Builder
	s.WriteString(m.theme.Title.Render("Workflows & Automations"))
	s.WriteString("\n")
	s.WriteString(m.theme.Subtitle.Render("Pipeline status and performance metrics"))
	s.WriteString("\n\n")

	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.statCard("Total Workflows", fmt.Sprintf("%d", ws.Total), "Active & idle"),
		m.statCard("Running Now", fmt.Sprintf("%d", ws.Running), "Active processes"),
		m.statCard("Success Rate", fmt.Sprintf("%.1f%%", ws.AvgSuccessRate), "Average"),
		m.statCard("Completed", fmt.Sprintf("%d", ws.Completed), ""),
	))
	s.WriteString("\n\n")

	switch {
	case m.workflows.loading:
		s.WriteString(m.theme.Muted.Render("Loading..."))
		s.WriteString("\n")
	case len(m.workflows.rows) == 0:
		s.WriteString(m.theme.Muted.Render("No workflows"))
		s.WriteString("\n")
	default:
		for _, w := range m.workflows.rows {
			s.WriteString(m.renderWorkflowCard(w))
			s.WriteString("\n")
		}
	}

	s.WriteString(m.theme.Help.Render("r: refresh"))
	return s.String()
}

func (m Model) renderWorkflowCard(w models.Workflow) string {
	lastRun := "never"
	if w.LastRun != nil && *w.LastRun != "" {
		lastRun = *w.LastRun
	}

	var b strings.Builder
	b.WriteString(m.theme.CardValue.Render(w.Name))
	b.WriteString("  ")
	b.WriteString(m.theme.statusStyle(w.Status).Render(w.Status))
	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render(
		fmt.Sprintf("Last run: %s • Avg duration: %s", lastRun, w.AvgDuration)))
	b.WriteString("\n")
	b.WriteString(m.theme.rateStyle(w.SuccessRate).Render(
		fmt.Sprintf("%5.1f%% %s", w.SuccessRate, progressBar(30, w.SuccessRate))))

	width := m.contentWidth() - 6
	if width > 64 {
		width = 64
	}
	return m.theme.Card.Width(width).Render(b.String())
}
