// ABOUTME: Tasks tab showing per-status counts and the task table
// ABOUTME: Owns the tasks snapshot and its loading/empty table states
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/opsdash/models"
	"github.com/harperreed/opsdash/stats"
)

type tasksState struct {
	rows    []models.Task
	loading bool
	table   table.Model
}

func newTasksState() tasksState {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Task", Width: 34},
			{Title: "Status", Width: 12},
			{Title: "Priority", Width: 10},
			{Title: "Due Date", Width: 12},
		}),
		table.WithHeight(10),
	)
	styles := table.DefaultStyles()
	styles.Selected = styles.Cell
	t.SetStyles(styles)
	return tasksState{table: t}
}

func (m *Model) applyTasks(msg rowsMsg[models.Task]) {
	rows := msg.rows
	if msg.err != nil {
		m.logLoadError(models.CollectionTasks, msg.err)
		rows = nil
	}
	m.tasks.rows = rows
	m.tasks.loading = false
	m.tasks.refreshTable()
}

func (s *tasksState) refreshTable() {
	var rows []table.Row
	switch {
	case s.loading:
		rows = []table.Row{{"Loading...", "", "", ""}}
	case len(s.rows) == 0:
		rows = []table.Row{{"No tasks yet", "", "", ""}}
	default:
		for _, t := range s.rows {
			rows = append(rows, table.Row{t.Title, t.Status, t.Priority, t.DueDate})
		}
	}
	s.table.SetRows(rows)
}

func (m Model) renderTasksView() string {
	counts := stats.Tasks(m.tasks.rows)

	var s strings.Builder
	s.WriteString(m.theme.Title.Render("Tasks & Projects"))
	s.WriteString("\n")
	s.WriteString(m.theme.Subtitle.Render(
		fmt.Sprintf("%d completed • %d in progress", counts.Completed, counts.InProgress)))
	s.WriteString("\n\n")

	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.statCard("In Progress", fmt.Sprintf("%d", counts.InProgress), ""),
		m.statCard("Completed", fmt.Sprintf("%d", counts.Completed), ""),
		m.statCard("Total Tasks", fmt.Sprintf("%d", counts.Total), ""),
	))
	s.WriteString("\n\n")

	var urgent int
	for _, t := range m.tasks.rows {
		if t.Priority == models.PriorityHigh && t.Status != models.TaskCompleted {
			urgent++
		}
	}
	if urgent > 0 {
		s.WriteString(m.theme.priorityStyle(models.PriorityHigh).Render(
			fmt.Sprintf("%d high priority open", urgent)))
		s.WriteString("\n\n")
	}

	tbl := m.tasks.table
	tbl.SetHeight(tableHeight(len(tbl.Rows())))
	s.WriteString(tbl.View())
	s.WriteString("\n")

	s.WriteString(m.theme.Help.Render("a: new task • r: refresh"))
	return s.String()
}

// tableHeight sizes a table to its rows without growing past ten of them.
// SetHeight spends one line on the header, so the row viewport gets the
// row count plus one.
func tableHeight(rows int) int {
	if rows < 1 {
		rows = 1
	}
	if rows > 10 {
		rows = 10
	}
	return rows + 1
}
