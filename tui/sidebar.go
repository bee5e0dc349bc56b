// ABOUTME: Sidebar navigation pane
// ABOUTME: Renders the tab list, brand header, and theme toggle hint
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderSidebar() string {
	var s strings.Builder

	s.WriteString(m.theme.SidebarTitle.Render("AutomateEdge"))
	s.WriteString("\n")
	s.WriteString(m.theme.SidebarSub.Render("Operations Dashboard"))
	s.WriteString("\n\n")

	for i, t := range tabOrder {
		label := tabLabels[t]
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		if t == m.activeTab {
			s.WriteString(marker + m.theme.TabActive.Render(label))
		} else {
			s.WriteString(marker + m.theme.TabInactive.Render(label))
		}
		s.WriteString("\n")
	}

	s.WriteString("\n")
	if m.dark {
		s.WriteString(m.theme.SidebarSub.Render("t: light mode"))
	} else {
		s.WriteString(m.theme.SidebarSub.Render("t: dark mode"))
	}
	s.WriteString("\n")
	s.WriteString(m.theme.SidebarSub.Render("q: quit"))

	box := m.theme.SidebarBox.Width(sidebarWidth)
	if m.height > 2 {
		box = box.Height(m.height - 2)
	}
	return box.Render(lipgloss.NewStyle().Render(s.String()))
}
