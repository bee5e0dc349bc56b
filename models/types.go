// ABOUTME: Data models for dashboard entities
// ABOUTME: Defines Client, FinancialRecord, Task, Workflow, and TokenLog structs
package models

// Client is one row of the remote clients collection.
type Client struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	MRRValue    float64 `json:"mrr_value"`
	Product     string  `json:"product,omitempty"`
	HealthScore float64 `json:"health_score"`
	JoinDate    string  `json:"join_date,omitempty"`
}

type FinancialRecord struct {
	ID          string  `json:"id,omitempty"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date"`
}

type Task struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	Priority  string `json:"priority"`
	DueDate   string `json:"due_date,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

type Workflow struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	LastRun     *string `json:"last_run,omitempty"`
	AvgDuration string  `json:"avg_duration,omitempty"`
	SuccessRate float64 `json:"success_rate"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

type TokenLog struct {
	ID      string  `json:"id,omitempty"`
	Service string  `json:"service"`
	Cost    float64 `json:"cost"`
	Date    string  `json:"date,omitempty"`
}

// Client status constants.
const (
	ClientActive   = "active"
	ClientInactive = "inactive"
	ClientProspect = "prospect"
)

// Financial record types.
const (
	TypeRevenue = "revenue"
	TypeExpense = "expense"
)

// Task status constants.
const (
	TaskPending    = "pending"
	TaskInProgress = "in-progress"
	TaskCompleted  = "completed"
)

// Task priority constants.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Workflow status constants.
const (
	WorkflowIdle      = "idle"
	WorkflowRunning   = "running"
	WorkflowCompleted = "completed"
)

// Token service constants.
const (
	ServiceOpenAI     = "openai"
	ServiceClaude     = "claude"
	ServiceAssemblyAI = "assemblyai"
)

// Remote collection names.
const (
	CollectionClients    = "clients"
	CollectionFinancials = "financials"
	CollectionTasks      = "tasks"
	CollectionWorkflows  = "workflows"
	CollectionTokenLogs  = "token_logs"
)
