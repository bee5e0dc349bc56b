// ABOUTME: Theme palettes and shared rendering helpers
// ABOUTME: Light and dark lipgloss styles plus currency and badge formatting
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/harperreed/opsdash/models"
)

// Accent colors shared by both palettes.
const (
	colorBlue   = lipgloss.Color("#3b82f6")
	colorGreen  = lipgloss.Color("#10b981")
	colorYellow = lipgloss.Color("#eab308")
	colorRed    = lipgloss.Color("#ef4444")
	colorOrange = lipgloss.Color("#f97316")
	colorPurple = lipgloss.Color("#8b5cf6")
)

// Theme is the full style set for one color mode.
type Theme struct {
	Name string

	Title    lipgloss.Style
	Subtitle lipgloss.Style

	SidebarBox   lipgloss.Style
	SidebarTitle lipgloss.Style
	SidebarSub   lipgloss.Style
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style

	Card      lipgloss.Style
	CardLabel lipgloss.Style
	CardValue lipgloss.Style

	TableHeader lipgloss.Style

	Muted lipgloss.Style
	Good  lipgloss.Style
	Warn  lipgloss.Style
	Bad   lipgloss.Style

	FormBox   lipgloss.Style
	FormTitle lipgloss.Style
	Notice    lipgloss.Style

	Help lipgloss.Style
}

func LightTheme() Theme {
	return Theme{
		Name:     "light",
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#111827")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("#4b5563")),

		SidebarBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("#d1d5db")).
			Padding(1, 2),
		SidebarTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#111827")),
		SidebarSub:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		TabActive: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#1d4ed8")).
			Background(lipgloss.Color("#dbeafe")).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")).Padding(0, 1),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#d1d5db")).
			Padding(0, 2),
		CardLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		CardValue: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#111827")),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#111827")),

		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af")),
		Good:  lipgloss.NewStyle().Foreground(colorGreen),
		Warn:  lipgloss.NewStyle().Foreground(colorYellow),
		Bad:   lipgloss.NewStyle().Foreground(colorRed),

		FormBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Padding(1, 3),
		FormTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#111827")).MarginBottom(1),
		Notice:    lipgloss.NewStyle().Bold(true).Foreground(colorRed),

		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af")).MarginTop(1),
	}
}

func DarkTheme() Theme {
	t := LightTheme()
	t.Name = "dark"
	t.Title = t.Title.Foreground(lipgloss.Color("#f9fafb"))
	t.Subtitle = t.Subtitle.Foreground(lipgloss.Color("#9ca3af"))
	t.SidebarBox = t.SidebarBox.BorderForeground(lipgloss.Color("#374151"))
	t.SidebarTitle = t.SidebarTitle.Foreground(lipgloss.Color("#f9fafb"))
	t.TabActive = t.TabActive.
		Foreground(lipgloss.Color("#93c5fd")).
		Background(lipgloss.Color("#1e3a8a"))
	t.TabInactive = t.TabInactive.Foreground(lipgloss.Color("#d1d5db"))
	t.Card = t.Card.BorderForeground(lipgloss.Color("#374151"))
	t.CardLabel = t.CardLabel.Foreground(lipgloss.Color("#9ca3af"))
	t.CardValue = t.CardValue.Foreground(lipgloss.Color("#f9fafb"))
	t.TableHeader = t.TableHeader.Foreground(lipgloss.Color("#f9fafb"))
	t.FormTitle = t.FormTitle.Foreground(lipgloss.Color("#f9fafb"))
	return t
}

var moneyPrinter = message.NewPrinter(language.English)

// money renders whole dollars with thousands separators ($7,497).
func money(v float64) string {
	return moneyPrinter.Sprintf("$%.0f", v)
}

// moneyCents renders dollars and cents with separators ($3.60).
func moneyCents(v float64) string {
	return moneyPrinter.Sprintf("$%.2f", v)
}

// statusStyle picks the accent style for an entity status badge.
func (t Theme) statusStyle(status string) lipgloss.Style {
	switch status {
	// "completed" covers workflows too; same string value.
	case models.TaskCompleted, models.ClientActive:
		return t.Good
	case models.TaskInProgress, models.WorkflowRunning:
		return lipgloss.NewStyle().Foreground(colorBlue)
	case models.TaskPending:
		return t.Warn
	case models.ClientProspect:
		return lipgloss.NewStyle().Foreground(colorPurple)
	default:
		return t.Muted
	}
}

// priorityStyle picks the accent style for a task priority badge.
func (t Theme) priorityStyle(priority string) lipgloss.Style {
	switch priority {
	case models.PriorityHigh:
		return t.Bad
	case models.PriorityMedium:
		return lipgloss.NewStyle().Foreground(colorOrange)
	default:
		return t.Muted
	}
}

// healthStyle bands a client health score: >=80 green, >=60 yellow, else red.
func (t Theme) healthStyle(score float64) lipgloss.Style {
	switch {
	case score >= 80:
		return t.Good
	case score >= 60:
		return t.Warn
	default:
		return t.Bad
	}
}

// rateStyle bands a workflow success rate: >=98 green, >=95 yellow, else red.
func (t Theme) rateStyle(rate float64) lipgloss.Style {
	switch {
	case rate >= 98:
		return t.Good
	case rate >= 95:
		return t.Warn
	default:
		return t.Bad
	}
}

// progressBar renders a fixed-width bar filled to pct of 100.
func progressBar(width int, pct float64) string {
	if width <= 0 {
		return ""
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
