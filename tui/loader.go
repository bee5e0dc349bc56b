// ABOUTME: Shared data-loading commands and messages for all tab views
// ABOUTME: One generic fetch path parameterized by collection, row type, and owning tab
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/opsdash/store"
)

// rowsMsg delivers one collection snapshot to the view that requested it.
// Loads are single attempt and never cancelled; when two reloads race, the
// last message to arrive wins.
type rowsMsg[T any] struct {
	tab  Tab
	rows []T
	err  error
}

// loadCmd fetches a collection in the background. Every tab loads its data
// through this one helper; only the row type and query differ.
func loadCmd[T any](c *store.Client, tab Tab, collection string, q store.Query) tea.Cmd {
	return func() tea.Msg {
		rows, err := store.Fetch[T](context.Background(), c, collection, q)
		return rowsMsg[T]{tab: tab, rows: rows, err: err}
	}
}

// formSubmittedMsg reports the result of a form's insert call.
type formSubmittedMsg struct {
	tab Tab
	err error
}

// submitCmd inserts one record and reports back to the owning form.
func submitCmd(c *store.Client, tab Tab, collection string, record any) tea.Cmd {
	return func() tea.Msg {
		err := c.Insert(context.Background(), collection, record)
		return formSubmittedMsg{tab: tab, err: err}
	}
}
