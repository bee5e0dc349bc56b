// ABOUTME: Financial tab with revenue/expense stats, tax summary, and transactions table
// ABOUTME: Owns the financials snapshot and routes financial rows to overview too
package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/opsdash/models"
	"github.com/harperreed/opsdash/stats"
)

type financialState struct {
	rows    []models.FinancialRecord
	loading bool
	table   table.Model
}

func newFinancialState() financialState {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Category", Width: 22},
			{Title: "Type", Width: 10},
			{Title: "Amount", Width: 12},
			{Title: "Date", Width: 12},
		}),
		table.WithHeight(10),
	)
	styles := table.DefaultStyles()
	styles.Selected = styles.Cell
	t.SetStyles(styles)
	return financialState{table: t}
}

func (m *Model) applyFinancials(msg rowsMsg[models.FinancialRecord]) {
	rows := msg.rows
	if msg.err != nil {
		m.logLoadError(models.CollectionFinancials, msg.err)
		rows = nil
	}
	switch msg.tab {
	case TabOverview:
		m.overview.financials = rows
		if m.overview.pending > 0 {
			m.overview.pending--
		}
	case TabFinancial:
		m.financial.rows = rows
		m.financial.loading = false
		m.financial.refreshTable()
	}
}

func (s *financialState) refreshTable() {
	var rows []table.Row
	switch {
	case s.loading:
		rows = []table.Row{{"Loading...", "", "", ""}}
	case len(s.rows) == 0:
		rows = []table.Row{{"No transactions", "", "", ""}}
	default:
		for _, r := range s.rows {
			rows = append(rows, table.Row{r.Category, r.Type, moneyCents(r.Amount), r.Date})
		}
	}
	s.table.SetRows(rows)
}

func (m Model) renderFinancialView() string {
	fs := stats.Financials(m.financial.rows)

	var s strings.Builder
	s.WriteString(m.theme.Title.Render("Financial Overview"))
	s.WriteString("\n")
	s.WriteString(m.theme.Subtitle.Render("Revenue, expenses, and profitability tracking"))
	s.WriteString("\n\n")

	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.statCard("Total Revenue", money(fs.Revenue), ""),
		m.statCard("Total Expenses", money(fs.Expenses), ""),
		m.statCard("Net Profit", money(fs.Profit), fmt.Sprintf("Margin: %.1f%%", fs.Margin)),
		m.statCard("Monthly Burn", money(fs.Expenses), "Operating costs"),
	))
	s.WriteString("\n\n")

	s.WriteString(m.renderTaxSummary(fs))
	s.WriteString("\n\n")

	tbl := m.financial.table
	tbl.SetHeight(tableHeight(len(tbl.Rows())))
	s.WriteString(tbl.View())
	s.WriteString("\n")

	s.WriteString(m.theme.Help.Render("a: add record • r: refresh"))
	return s.String()
}

// renderTaxSummary mirrors the tax preparation block: gross income,
// deductible expenses, taxable income, and a flat 20% estimate.
func (m Model) renderTaxSummary(fs stats.FinancialStats) string {
	estTax := math.Round(fs.Profit * 0.2)

	var b strings.Builder
	b.WriteString(m.theme.TableHeader.Render("Tax Preparation Summary"))
	b.WriteString("\n")
	b.WriteString(m.theme.CardLabel.Render("Gross Income: "))
	b.WriteString(m.theme.CardValue.Render(money(fs.Revenue)))
	b.WriteString("   ")
	b.WriteString(m.theme.CardLabel.Render("Deductible Expenses: "))
	b.WriteString(m.theme.CardValue.Render(money(fs.Expenses)))
	b.WriteString("\n")
	b.WriteString(m.theme.CardLabel.Render("Taxable Income: "))
	b.WriteString(m.theme.CardValue.Render(money(fs.Profit)))
	b.WriteString("   ")
	b.WriteString(m.theme.CardLabel.Render("Est. Tax (20%): "))
	b.WriteString(m.theme.CardValue.Render(money(estTax)))
	return b.String()
}
