// ABOUTME: Pure aggregation functions over fetched collection snapshots
// ABOUTME: Computes per-tab summary statistics with division-by-zero guards
package stats

import (
	"math"
	"sort"

	"github.com/harperreed/opsdash/models"
)

// ClientStats summarizes the clients collection.
type ClientStats struct {
	TotalMRR     float64
	ActiveCount  int
	AverageValue float64 // total MRR / active count, rounded; 0 when no actives
}

func Clients(rows []models.Client) ClientStats {
	var s ClientStats
	for _, c := range rows {
		s.TotalMRR += c.MRRValue
		if c.Status == models.ClientActive {
			s.ActiveCount++
		}
	}
	if s.ActiveCount > 0 {
		s.AverageValue = math.Round(s.TotalMRR / float64(s.ActiveCount))
	}
	return s
}

// FinancialStats summarizes the financials collection.
type FinancialStats struct {
	Revenue  float64
	Expenses float64
	Profit   float64
	Margin   float64 // percent, one decimal; 0 when revenue is 0
}

func Financials(rows []models.FinancialRecord) FinancialStats {
	var s FinancialStats
	for _, r := range rows {
		switch r.Type {
		case models.TypeRevenue:
			s.Revenue += r.Amount
		case models.TypeExpense:
			s.Expenses += r.Amount
		}
	}
	s.Profit = s.Revenue - s.Expenses
	if s.Revenue > 0 {
		s.Margin = round1(s.Profit / s.Revenue * 100)
	}
	return s
}

// TaskCounts holds the per-status partition of the tasks collection.
type TaskCounts struct {
	Pending    int
	InProgress int
	Completed  int
	Total      int
}

func Tasks(rows []models.Task) TaskCounts {
	var s TaskCounts
	for _, t := range rows {
		switch t.Status {
		case models.TaskPending:
			s.Pending++
		case models.TaskInProgress:
			s.InProgress++
		case models.TaskCompleted:
			s.Completed++
		}
	}
	s.Total = len(rows)
	return s
}

// WorkflowStats summarizes the workflows collection.
type WorkflowStats struct {
	Total          int
	Running        int
	Completed      int
	AvgSuccessRate float64 // mean success_rate, one decimal; 0 when empty
}

func Workflows(rows []models.Workflow) WorkflowStats {
	var s WorkflowStats
	var sum float64
	for _, w := range rows {
		sum += w.SuccessRate
		switch w.Status {
		case models.WorkflowRunning:
			s.Running++
		case models.WorkflowCompleted:
			s.Completed++
		}
	}
	s.Total = len(rows)
	if s.Total > 0 {
		s.AvgSuccessRate = round1(sum / float64(s.Total))
	}
	return s
}

// ServiceCost is one slice of the token cost breakdown.
type ServiceCost struct {
	Service string // raw service key
	Name    string // display name
	Color   string // hex color for rendering
	Value   float64
}

// serviceDisplay maps the known services to display names and colors.
var serviceDisplay = map[string]struct {
	name  string
	color string
}{
	models.ServiceOpenAI:     {"OpenAI", "#3b82f6"},
	models.ServiceClaude:     {"Claude/Anthropic", "#8b5cf6"},
	models.ServiceAssemblyAI: {"AssemblyAI", "#ec4899"},
}

// fallbackColor is used for services without a mapping.
const fallbackColor = "#6b7280"

// TokenBreakdown groups token log costs by service. Known services come
// first in a fixed order; unknown services follow sorted by key, displayed
// under their raw name with the fallback color.
func TokenBreakdown(rows []models.TokenLog) []ServiceCost {
	totals := make(map[string]float64)
	for _, l := range rows {
		totals[l.Service] += l.Cost
	}

	var out []ServiceCost
	for _, svc := range []string{models.ServiceOpenAI, models.ServiceClaude, models.ServiceAssemblyAI} {
		if v, ok := totals[svc]; ok {
			d := serviceDisplay[svc]
			out = append(out, ServiceCost{Service: svc, Name: d.name, Color: d.color, Value: v})
			delete(totals, svc)
		}
	}

	rest := make([]string, 0, len(totals))
	for svc := range totals {
		rest = append(rest, svc)
	}
	sort.Strings(rest)
	for _, svc := range rest {
		out = append(out, ServiceCost{Service: svc, Name: svc, Color: fallbackColor, Value: totals[svc]})
	}
	return out
}

// TokenStats summarizes token spend. The daily average uses the fixed
// five-day window the dashboard has always assumed.
type TokenStats struct {
	Total            float64
	DailyAverage     float64 // total / 5, two decimals
	ProjectedMonthly float64 // daily average x 30, whole dollars
}

func Tokens(rows []models.TokenLog) TokenStats {
	var s TokenStats
	for _, l := range rows {
		s.Total += l.Cost
	}
	s.DailyAverage = round2(s.Total / 5)
	s.ProjectedMonthly = math.Round(s.DailyAverage * 30)
	return s
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
