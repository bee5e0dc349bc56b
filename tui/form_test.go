// ABOUTME: Tests for the modal add-record forms
// ABOUTME: Verifies validation blocks submission, the submit flow, and failure handling
package tui

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/opsdash/models"
	"github.com/harperreed/opsdash/store"
)

// newFormModel wires a Model against a counting test server so tests can
// assert whether a form action reached the network at all.
func newFormModel(t *testing.T, status int, body string) (Model, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("[]"))
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return NewModel(store.New(srv.URL, "test-key"), nil), &calls
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestClientFormBlankNameBlocksSubmit(t *testing.T) {
	m, calls := newFormModel(t, http.StatusCreated, "")
	m.form = newClientForm(TabClients)

	updated, cmd := m.handleFormKeys(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if cmd != nil {
		t.Error("Blocked submit should not produce a command")
	}
	if m.form == nil {
		t.Fatal("Form should stay open after failed validation")
	}
	if m.form.notice != "Please enter client name" {
		t.Errorf("Expected name notice, got %q", m.form.notice)
	}
	if m.form.submitting {
		t.Error("Form should not enter submitting state")
	}
	if calls.Load() != 0 {
		t.Errorf("Validation failure must not issue network calls, got %d", calls.Load())
	}
}

func TestFinancialFormAmountValidation(t *testing.T) {
	for _, amount := range []string{"0", "-50", "abc", ""} {
		m, calls := newFormModel(t, http.StatusCreated, "")
		m.form = newFinancialForm(TabFinancial, models.TypeRevenue)
		m.form.fields[1].input.SetValue("Client Payment")
		m.form.fields[2].input.SetValue(amount)

		updated, cmd := m.handleFormKeys(tea.KeyMsg{Type: tea.KeyEnter})
		m = updated.(Model)

		if cmd != nil {
			t.Errorf("Amount %q should block submission", amount)
		}
		if m.form.notice != "Please fill in all fields correctly" {
			t.Errorf("Amount %q: expected generic notice, got %q", amount, m.form.notice)
		}
		if calls.Load() != 0 {
			t.Errorf("Amount %q: no network call expected", amount)
		}
	}

	// Any strictly positive amount passes.
	m, _ := newFormModel(t, http.StatusCreated, "")
	m.form = newFinancialForm(TabFinancial, models.TypeRevenue)
	m.form.fields[1].input.SetValue("Client Payment")
	m.form.fields[2].input.SetValue("0.01")

	updated, cmd := m.handleFormKeys(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if cmd == nil {
		t.Fatal("Valid form should produce a submit command")
	}
	if !m.form.submitting {
		t.Error("Form should be in submitting state")
	}
}

func TestFinancialFormBlankCategoryBlocksSubmit(t *testing.T) {
	m, calls := newFormModel(t, http.StatusCreated, "")
	m.form = newFinancialForm(TabFinancial, models.TypeRevenue)
	m.form.fields[2].input.SetValue("1000")

	updated, cmd := m.handleFormKeys(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if cmd != nil || calls.Load() != 0 {
		t.Error("Blank category should block submission without a network call")
	}
	if m.form.notice != "Please fill in all fields correctly" {
		t.Errorf("Expected generic notice, got %q", m.form.notice)
	}
}

func TestTaskFormBlankTitleBlocksSubmit(t *testing.T) {
	m, _ := newFormModel(t, http.StatusCreated, "")
	m.form = newTaskForm(TabTasks)

	updated, cmd := m.handleFormKeys(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if cmd != nil {
		t.Error("Blocked submit should not produce a command")
	}
	if m.form.notice != "Please enter task title" {
		t.Errorf("Expected title notice, got %q", m.form.notice)
	}
}

func TestNoticeDismissedByAnyKey(t *testing.T) {
	m, calls := newFormModel(t, http.StatusCreated, "")
	m.form = newClientForm(TabClients)
	m.form.notice = "Please enter client name"

	updated, cmd := m.handleFormKeys(keyRune('x'))
	m = updated.(Model)

	if m.form.notice != "" {
		t.Error("Any key should dismiss the notice")
	}
	if cmd != nil || calls.Load() != 0 {
		t.Error("Dismissing a notice should not submit")
	}

	// The dismissing keystroke is consumed, not applied to the input.
	if got := m.form.fields[0].input.Value(); got != "" {
		t.Errorf("Dismiss key should not reach the text input, got %q", got)
	}
}

func TestSubmittingStateSwallowsKeys(t *testing.T) {
	m, calls := newFormModel(t, http.StatusCreated, "")
	m.form = newClientForm(TabClients)
	m.form.fields[0].input.SetValue("Acme")
	m.form.submitting = true

	updated, cmd := m.handleFormKeys(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if cmd != nil || calls.Load() != 0 {
		t.Error("Keys during submission must not resubmit")
	}
	if m.form == nil || m.form.fields[0].input.Value() != "Acme" {
		t.Error("Submitting form should be unchanged")
	}
}

func TestFormSubmitSuccessClosesAndReloads(t *testing.T) {
	m, calls := newFormModel(t, http.StatusCreated, "")
	m.form = newFinancialForm(TabFinancial, models.TypeRevenue)
	m.form.fields[1].input.SetValue("Client Payment")
	m.form.fields[2].input.SetValue("2500")

	updated, cmd := m.handleFormKeys(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("Expected a submit command")
	}

	msg, ok := cmd().(formSubmittedMsg)
	if !ok {
		t.Fatal("Submit command should yield a formSubmittedMsg")
	}
	if msg.err != nil {
		t.Fatalf("Insert should succeed, got %v", msg.err)
	}
	if msg.tab != TabFinancial {
		t.Errorf("Expected owner tab %v, got %v", TabFinancial, msg.tab)
	}
	if calls.Load() != 1 {
		t.Errorf("Expected exactly one insert call, got %d", calls.Load())
	}

	updated, reload := m.handleFormSubmitted(msg)
	m = updated.(Model)

	if m.form != nil {
		t.Error("Form should close after a successful insert")
	}
	if reload == nil {
		t.Error("Success should trigger a reload of the owning tab")
	}
	if !m.financial.loading {
		t.Error("Owning tab should enter its loading state")
	}
}

func TestFormSubmitFromOverviewReloadsOverview(t *testing.T) {
	m, _ := newFormModel(t, http.StatusCreated, "")
	m.form = newFinancialForm(TabOverview, models.TypeExpense)
	m.form.fields[1].input.SetValue("API Costs")
	m.form.fields[2].input.SetValue("500")

	updated, cmd := m.handleFormKeys(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	msg := cmd().(formSubmittedMsg)

	updated, reload := m.handleFormSubmitted(msg)
	m = updated.(Model)

	if reload == nil {
		t.Fatal("Expected overview reload command")
	}
	if m.overview.pending != 3 {
		t.Errorf("Overview reload should mark all three fetches pending, got %d", m.overview.pending)
	}
}

func TestFormSubmitRemoteFailureKeepsFormOpen(t *testing.T) {
	m, _ := newFormModel(t, http.StatusConflict, `{"message": "duplicate key value"}`)
	m.form = newClientForm(TabClients)
	m.form.fields[0].input.SetValue("Acme Corp")

	updated, cmd := m.handleFormKeys(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	msg := cmd().(formSubmittedMsg)
	if msg.err == nil {
		t.Fatal("Expected a remote error")
	}

	updated, reload := m.handleFormSubmitted(msg)
	m = updated.(Model)

	if m.form == nil {
		t.Fatal("Form should stay open after a remote failure")
	}
	if reload != nil {
		t.Error("Failed insert must not trigger a reload")
	}
	if !contains(m.form.notice, "Error adding record") || !contains(m.form.notice, "duplicate key value") {
		t.Errorf("Notice should carry the remote message, got %q", m.form.notice)
	}
	if m.form.submitting {
		t.Error("Form should leave submitting state")
	}
	if m.form.fields[0].input.Value() != "Acme Corp" {
		t.Error("User input must be preserved for resubmission")
	}
}

func TestFinancialFormTitleFollowsType(t *testing.T) {
	if got := newFinancialForm(TabFinancial, models.TypeRevenue).title(); got != "Log Revenue" {
		t.Errorf("Expected Log Revenue, got %q", got)
	}
	if got := newFinancialForm(TabFinancial, models.TypeExpense).title(); got != "Log Expense" {
		t.Errorf("Expected Log Expense, got %q", got)
	}

	// Cycling the type choice retitles the open form.
	m, _ := newFormModel(t, http.StatusCreated, "")
	m.form = newFinancialForm(TabFinancial, models.TypeRevenue)
	updated, _ := m.handleFormKeys(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)
	if got := m.form.title(); got != "Log Expense" {
		t.Errorf("Right arrow should flip the type, got title %q", got)
	}
}

func TestClientFormDefaults(t *testing.T) {
	f := newClientForm(TabClients)
	f.fields[0].input.SetValue("Acme Corp")

	row, ok := f.record().(models.Client)
	if !ok {
		t.Fatal("Client form should build a client row")
	}
	if row.Status != models.ClientActive {
		t.Errorf("Expected default status active, got %q", row.Status)
	}
	if row.MRRValue != 0 {
		t.Errorf("Expected default monthly value 0, got %v", row.MRRValue)
	}
	if row.HealthScore != 85 {
		t.Errorf("Expected default health score 85, got %v", row.HealthScore)
	}
}

func TestFinancialFormDateDefaultsToToday(t *testing.T) {
	f := newFinancialForm(TabFinancial, models.TypeRevenue)
	f.fields[1].input.SetValue("Client Payment")
	f.fields[2].input.SetValue("100")

	row := f.record().(models.FinancialRecord)
	if row.Date != today() {
		t.Errorf("Expected today's date %q, got %q", today(), row.Date)
	}
}

func TestFormEscCancels(t *testing.T) {
	m, calls := newFormModel(t, http.StatusCreated, "")
	m.form = newTaskForm(TabTasks)
	m.form.fields[0].input.SetValue("draft proposal")

	updated, cmd := m.handleFormKeys(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	if m.form != nil {
		t.Error("Esc should close the form")
	}
	if cmd != nil || calls.Load() != 0 {
		t.Error("Cancelling must not touch the network")
	}
}

func TestFormFocusCycling(t *testing.T) {
	m, _ := newFormModel(t, http.StatusCreated, "")
	m.form = newClientForm(TabClients)

	updated, _ := m.handleFormKeys(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if m.form.focus != 1 {
		t.Errorf("Tab should advance focus, got %d", m.form.focus)
	}

	updated, _ = m.handleFormKeys(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	if m.form.focus != 0 {
		t.Errorf("Shift+tab should move focus back, got %d", m.form.focus)
	}

	// Wraps around from the first field.
	updated, _ = m.handleFormKeys(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	if m.form.focus != len(m.form.fields)-1 {
		t.Errorf("Focus should wrap to the last field, got %d", m.form.focus)
	}
}

func TestFormViewShowsNoticeAndSaving(t *testing.T) {
	f := newClientForm(TabClients)
	f.notice = "Please enter client name"
	out := f.view(LightTheme())
	if !contains(out, "Please enter client name") || !contains(out, "press any key to continue") {
		t.Error("Notice view should show the message and dismissal hint")
	}

	f.notice = ""
	f.submitting = true
	out = f.view(LightTheme())
	if !contains(out, "Saving...") {
		t.Error("Submitting view should show the saving indicator")
	}
}
