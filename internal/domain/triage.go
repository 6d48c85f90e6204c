package domain

// Urgency is derived once from the time-since-incident answer and drives
// action timeframes and the recovery estimate.
type Urgency string

const (
	UrgencyCritical Urgency = "critical" // less than 30 minutes ago
	UrgencyUrgent   Urgency = "urgent"   // 30 minutes to 4 hours
	UrgencyHigh     Urgency = "high"     // 4 to 24 hours
	UrgencyStandard Urgency = "standard" // older than 24 hours
)

// Priority orders action items by how soon they must be done.
type Priority string

const (
	PriorityImmediate Priority = "immediate"
	PriorityWithin1H  Priority = "within-1h"
	PriorityWithin4H  Priority = "within-4h"
	PriorityWithin24H Priority = "within-24h"
	PriorityFollowUp  Priority = "follow-up"
)

// ActionItem is one step of the recovery action plan. List order is display
// order and must be preserved.
type ActionItem struct {
	ID          string   `json:"id"`
	Priority    Priority `json:"priority"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Timeframe   string   `json:"timeframe"`
	Icon        string   `json:"icon"`
}

// Scenario is a classified fraud scenario.
type Scenario struct {
	Name     string `json:"name"`
	Category string `json:"category"` // "UPI", "Card", "NetBanking", "Prevention", "General"
}

// TriageResult is produced exactly once per session when a terminal option is
// answered. It is an immutable snapshot; ownership passes to the caller.
type TriageResult struct {
	FraudScenario       string       `json:"fraudScenario"`
	Category            string       `json:"category"`
	UrgencyLevel        Urgency      `json:"urgencyLevel"`
	Actions             []ActionItem `json:"actions"`
	RecoveryProbability int          `json:"recoveryProbability"`
	Path                []string     `json:"path"`
	Answers             AnswerMap    `json:"answers"`
}
