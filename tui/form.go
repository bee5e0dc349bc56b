// ABOUTME: Modal add-record forms for clients, financial records, and tasks
// ABOUTME: Local validation, insert-on-submit, and reload notification to the owning tab
package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/opsdash/models"
)

type formKind int

const (
	formClient formKind = iota
	formFinancial
	formTask
)

// field is one form input: either a free text input or a cycled choice.
type field struct {
	label   string
	input   textinput.Model
	choices []string
	choice  int
}

func (f *field) isChoice() bool { return len(f.choices) > 0 }

func (f *field) value() string {
	if f.isChoice() {
		return f.choices[f.choice]
	}
	return f.input.Value()
}

func textField(label, placeholder, value string, limit int) field {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	if value != "" {
		in.SetValue(value)
	}
	return field{label: label, input: in}
}

func choiceField(label string, choices []string, selected int) field {
	return field{label: label, choices: choices, choice: selected}
}

// form is a modal add-record flow. Its lifecycle: open -> submitting ->
// closed on success (owner reloads), or back to open on validation or
// remote failure with the user's input preserved.
type form struct {
	kind       formKind
	tab        Tab // owning view, reloaded after a successful insert
	fields     []field
	focus      int
	submitting bool
	notice     string
}

// today is the default for date fields, local time, ISO calendar date.
func today() string {
	return time.Now().Format("2006-01-02")
}

func newClientForm(owner Tab) *form {
	f := &form{
		kind: formClient,
		tab:  owner,
		fields: []field{
			textField("Client Name *", "Enter client name", "", 100),
			choiceField("Status", []string{models.ClientActive, models.ClientInactive, models.ClientProspect}, 0),
			textField("Monthly Value ($)", "2500", "0", 12),
			textField("Product", "e.g., MeetingMind, Lodigi", "", 100),
			textField("Health Score (0-100)", "85", "85", 3),
		},
	}
	f.setFocus(0)
	return f
}

func newFinancialForm(owner Tab, typ string) *form {
	selected := 0
	if typ == models.TypeExpense {
		selected = 1
	}
	f := &form{
		kind: formFinancial,
		tab:  owner,
		fields: []field{
			choiceField("Type", []string{models.TypeRevenue, models.TypeExpense}, selected),
			textField("Category *", "e.g., Client Payment, API Costs", "", 100),
			textField("Amount ($) *", "1000", "0", 12),
			textField("Date", today(), today(), 10),
			textField("Description", "Optional notes", "", 500),
		},
	}
	f.setFocus(0)
	return f
}

func newTaskForm(owner Tab) *form {
	f := &form{
		kind: formTask,
		tab:  owner,
		fields: []field{
			textField("Title *", "Enter task title", "", 100),
			choiceField("Status", []string{models.TaskPending, models.TaskInProgress, models.TaskCompleted}, 0),
			choiceField("Priority", []string{models.PriorityLow, models.PriorityMedium, models.PriorityHigh}, 1),
			textField("Due Date", today(), today(), 10),
		},
	}
	f.setFocus(0)
	return f
}

func (f *form) title() string {
	switch f.kind {
	case formFinancial:
		if f.fields[0].value() == models.TypeExpense {
			return "Log Expense"
		}
		return "Log Revenue"
	case formTask:
		return "New Task"
	default:
		return "Add New Client"
	}
}

func (f *form) setFocus(i int) {
	f.focus = i
	for j := range f.fields {
		if j == i && !f.fields[j].isChoice() {
			f.fields[j].input.Focus()
		} else {
			f.fields[j].input.Blur()
		}
	}
}

// validate checks the local rules. A non-empty return blocks submission
// before any network call.
func (f *form) validate() string {
	switch f.kind {
	case formClient:
		if strings.TrimSpace(f.fieldValue("Client Name *")) == "" {
			return "Please enter client name"
		}
	case formFinancial:
		amount := parseAmount(f.fieldValue("Amount ($) *"))
		if strings.TrimSpace(f.fieldValue("Category *")) == "" || amount <= 0 {
			return "Please fill in all fields correctly"
		}
	case formTask:
		if strings.TrimSpace(f.fieldValue("Title *")) == "" {
			return "Please enter task title"
		}
	}
	return ""
}

// record builds the row to insert. The remote store assigns IDs and
// created_at defaults.
func (f *form) record() any {
	switch f.kind {
	case formFinancial:
		return models.FinancialRecord{
			Type:        f.fieldValue("Type"),
			Category:    f.fieldValue("Category *"),
			Amount:      parseAmount(f.fieldValue("Amount ($) *")),
			Description: f.fieldValue("Description"),
			Date:        f.fieldValue("Date"),
		}
	case formTask:
		return models.Task{
			Title:    f.fieldValue("Title *"),
			Status:   f.fieldValue("Status"),
			Priority: f.fieldValue("Priority"),
			DueDate:  f.fieldValue("Due Date"),
		}
	default:
		return models.Client{
			Name:        f.fieldValue("Client Name *"),
			Status:      f.fieldValue("Status"),
			MRRValue:    parseAmount(f.fieldValue("Monthly Value ($)")),
			HealthScore: parseAmount(f.fieldValue("Health Score (0-100)")),
			Product:     f.fieldValue("Product"),
		}
	}
}

func (f *form) collection() string {
	switch f.kind {
	case formFinancial:
		return models.CollectionFinancials
	case formTask:
		return models.CollectionTasks
	default:
		return models.CollectionClients
	}
}

func (f *form) fieldValue(label string) string {
	for i := range f.fields {
		if f.fields[i].label == label {
			return f.fields[i].value()
		}
	}
	return ""
}

// parseAmount reads a numeric field; unparseable input counts as 0.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// A notice is a blocking notification: any key dismisses it.
	if f.notice != "" {
		f.notice = ""
		return m, nil
	}

	if f.submitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.form = nil
		return m, nil

	case "tab", "down":
		f.setFocus((f.focus + 1) % len(f.fields))
		return m, nil

	case "shift+tab", "up":
		f.setFocus((f.focus - 1 + len(f.fields)) % len(f.fields))
		return m, nil

	case "left", "right":
		if fld := &f.fields[f.focus]; fld.isChoice() {
			delta := 1
			if msg.String() == "left" {
				delta = len(fld.choices) - 1
			}
			fld.choice = (fld.choice + delta) % len(fld.choices)
			return m, nil
		}

	case "enter":
		if notice := f.validate(); notice != "" {
			f.notice = notice
			return m, nil
		}
		f.submitting = true
		return m, submitCmd(m.store, f.tab, f.collection(), f.record())
	}

	if fld := &f.fields[f.focus]; !fld.isChoice() {
		var cmd tea.Cmd
		fld.input, cmd = fld.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleFormSubmitted(msg formSubmittedMsg) (tea.Model, tea.Cmd) {
	f := m.form
	if f == nil {
		return m, nil
	}
	f.submitting = false

	if msg.err != nil {
		// Remote failure: keep the form open with input intact so the
		// user can resubmit.
		f.notice = "Error adding record: " + msg.err.Error()
		if m.logger != nil {
			m.logger.Error("insert failed", "collection", f.collection(), "err", msg.err)
		}
		return m, nil
	}

	m.form = nil
	return m, m.loadTab(msg.tab)
}

func (f *form) view(t Theme) string {
	var b strings.Builder
	b.WriteString(t.FormTitle.Render(f.title()))
	b.WriteString("\n")

	for i := range f.fields {
		fld := &f.fields[i]
		marker := "  "
		if i == f.focus {
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(t.CardLabel.Render(fld.label))
		b.WriteString("\n")
		b.WriteString("  ")
		if fld.isChoice() {
			if i == f.focus {
				b.WriteString("◀ " + fld.value() + " ▶")
			} else {
				b.WriteString(fld.value())
			}
		} else {
			b.WriteString(fld.input.View())
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case f.notice != "":
		b.WriteString(t.Notice.Render(f.notice))
		b.WriteString("\n")
		b.WriteString(t.Help.Render("press any key to continue"))
	case f.submitting:
		b.WriteString(t.Muted.Render("Saving..."))
	default:
		save := t.Good
		if f.kind == formFinancial && f.fields[0].value() == models.TypeExpense {
			save = lipgloss.NewStyle().Foreground(colorOrange)
		}
		b.WriteString(save.Render("enter: save"))
		b.WriteString(t.Help.Render("  tab: next field • esc: cancel"))
	}

	return t.FormBox.Render(b.String())
}
