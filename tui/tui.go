// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Shell model owning tab selection, theme toggle, and sidebar state
package tui

import (
	"github.com/charmbracelet/log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/opsdash/models"
	"github.com/harperreed/opsdash/store"
)

// Tab identifies one dashboard screen.
type Tab int

const (
	TabOverview Tab = iota
	TabTasks
	TabClients
	TabFinancial
	TabTokens
	TabWorkflows
)

var tabLabels = map[Tab]string{
	TabOverview:  "Overview",
	TabTasks:     "Tasks & Projects",
	TabClients:   "Clients",
	TabFinancial: "Financial",
	TabTokens:    "Token Usage",
	TabWorkflows: "Workflows",
}

var tabOrder = []Tab{TabOverview, TabTasks, TabClients, TabFinancial, TabTokens, TabWorkflows}

// narrowWidth is the viewport width below which the sidebar collapses into
// a toggled overlay.
const narrowWidth = 80

const sidebarWidth = 24

// Model is the main bubbletea model.
type Model struct {
	store  *store.Client
	logger *log.Logger

	width  int
	height int

	activeTab   Tab
	cursor      int
	dark        bool
	theme       Theme
	sidebarOpen bool

	form *form

	overview  overviewState
	tasks     tasksState
	clients   clientsState
	financial financialState
	tokens    tokensState
	workflows workflowsState
}

// NewModel creates the shell model. Defaults match a fresh page load:
// overview tab, light mode, sidebar overlay closed.
func NewModel(c *store.Client, logger *log.Logger) Model {
	return Model{
		store:     c,
		logger:    logger,
		theme:     LightTheme(),
		width:     100,
		height:    30,
		tasks:     newTasksState(),
		financial: newFinancialState(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadTab(TabOverview)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width >= narrowWidth {
			m.sidebarOpen = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case rowsMsg[models.Client]:
		m.applyClients(msg)
		return m, nil
	case rowsMsg[models.FinancialRecord]:
		m.applyFinancials(msg)
		return m, nil
	case rowsMsg[models.Task]:
		m.applyTasks(msg)
		return m, nil
	case rowsMsg[models.TokenLog]:
		m.applyTokenLogs(msg)
		return m, nil
	case rowsMsg[models.Workflow]:
		m.applyWorkflows(msg)
		return m, nil

	case formSubmittedMsg:
		return m.handleFormSubmitted(msg)
	}
	return m, nil
}

func (m Model) View() string {
	if m.form != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.form.view(m.theme))
	}

	content := m.renderActiveTab()

	if m.width < narrowWidth {
		if m.sidebarOpen {
			return m.renderSidebar()
		}
		bar := m.theme.Muted.Render("m: menu • " + tabLabels[m.activeTab])
		return lipgloss.JoinVertical(lipgloss.Left, bar, content)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), content)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form != nil {
		return m.handleFormKeys(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "t":
		m.dark = !m.dark
		if m.dark {
			m.theme = DarkTheme()
		} else {
			m.theme = LightTheme()
		}
		return m, nil

	case "m":
		if m.width < narrowWidth {
			m.sidebarOpen = !m.sidebarOpen
		}
		return m, nil

	case "esc":
		// Click-outside equivalent for the narrow-viewport overlay.
		m.sidebarOpen = false
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(tabOrder)-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		return m, m.enterTab(tabOrder[m.cursor])

	case "1", "2", "3", "4", "5", "6":
		return m, m.enterTab(tabOrder[int(msg.String()[0]-'1')])

	case "r":
		return m, m.loadTab(m.activeTab)

	case "a":
		return m.openFormForTab(m.activeTab)
	}

	if m.activeTab == TabOverview {
		return m.handleOverviewKeys(msg)
	}
	return m, nil
}

// enterTab switches the active tab and kicks off its fetch, closing the
// narrow-viewport sidebar overlay if it was open.
func (m *Model) enterTab(t Tab) tea.Cmd {
	m.activeTab = t
	m.cursor = int(t)
	m.sidebarOpen = false
	return m.loadTab(t)
}

// loadTab issues the fetches a tab runs on mount. Reloads are never
// deduplicated: rapid triggers issue independent calls and the last
// response to land wins.
func (m *Model) loadTab(t Tab) tea.Cmd {
	switch t {
	case TabOverview:
		m.overview.pending = 3
		return tea.Batch(
			loadCmd[models.Client](m.store, TabOverview, models.CollectionClients, store.Query{}),
			loadCmd[models.FinancialRecord](m.store, TabOverview, models.CollectionFinancials, store.Query{}),
			loadCmd[models.TokenLog](m.store, TabOverview, models.CollectionTokenLogs, store.Query{}),
		)
	case TabTasks:
		m.tasks.loading = true
		m.tasks.refreshTable()
		return loadCmd[models.Task](m.store, TabTasks, models.CollectionTasks,
			store.Query{Order: &store.Order{Field: "due_date", Ascending: true}})
	case TabClients:
		m.clients.loading = true
		return loadCmd[models.Client](m.store, TabClients, models.CollectionClients,
			store.Query{Order: &store.Order{Field: "name", Ascending: true}})
	case TabFinancial:
		m.financial.loading = true
		m.financial.refreshTable()
		return loadCmd[models.FinancialRecord](m.store, TabFinancial, models.CollectionFinancials,
			store.Query{Order: &store.Order{Field: "date", Ascending: false}})
	case TabTokens:
		m.tokens.loading = true
		return loadCmd[models.TokenLog](m.store, TabTokens, models.CollectionTokenLogs,
			store.Query{Order: &store.Order{Field: "date", Ascending: false}})
	case TabWorkflows:
		m.workflows.loading = true
		return loadCmd[models.Workflow](m.store, TabWorkflows, models.CollectionWorkflows,
			store.Query{Order: &store.Order{Field: "name", Ascending: true}})
	}
	return nil
}

// openFormForTab opens the add-record form owned by the given tab, if any.
func (m Model) openFormForTab(t Tab) (tea.Model, tea.Cmd) {
	switch t {
	case TabClients:
		m.form = newClientForm(t)
	case TabFinancial:
		m.form = newFinancialForm(t, models.TypeRevenue)
	case TabTasks:
		m.form = newTaskForm(t)
	}
	return m, nil
}

func (m Model) renderActiveTab() string {
	switch m.activeTab {
	case TabTasks:
		return m.renderTasksView()
	case TabClients:
		return m.renderClientsView()
	case TabFinancial:
		return m.renderFinancialView()
	case TabTokens:
		return m.renderTokensView()
	case TabWorkflows:
		return m.renderWorkflowsView()
	default:
		return m.renderOverviewView()
	}
}

// contentWidth is the space left for the active tab view.
func (m Model) contentWidth() int {
	if m.width < narrowWidth {
		return m.width
	}
	return m.width - sidebarWidth - 2
}

// logLoadError records a failed read. Read failures are never surfaced as
// blocking notifications; the view degrades to its empty state.
func (m Model) logLoadError(collection string, err error) {
	if m.logger != nil {
		m.logger.Error("failed to load collection", "collection", collection, "err", err)
	}
}
