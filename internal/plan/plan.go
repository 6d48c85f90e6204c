// Package plan turns a classified scenario into a recovery plan: an ordered
// list of prioritized actions and a recovery-probability estimate. Both are
// pure functions of (scenario, urgency).
package plan

import (
	"fmt"
	"strings"

	"github.com/upi-kavach/kavach/internal/domain"
)

// Actions builds the ordered action list for a scenario. The order is fixed:
// three base actions, then at most one category-specific dispute action, then
// the closing evidence-collection action. The list always has 4 or 5 items.
func Actions(scenario domain.Scenario, urgency domain.Urgency) []domain.ActionItem {
	critical := urgency == domain.UrgencyCritical

	callPriority := domain.PriorityWithin1H
	callTimeframe := "Within 1 hour"
	if critical {
		callPriority = domain.PriorityImmediate
		callTimeframe = "0-5 minutes"
	}

	cybercrimePriority := domain.PriorityWithin4H
	cybercrimeTimeframe := "Within 4 hours"
	if critical {
		cybercrimePriority = domain.PriorityWithin1H
		cybercrimeTimeframe = "Within 1 hour"
	}

	actions := []domain.ActionItem{
		{
			ID:          "call-bank",
			Priority:    callPriority,
			Title:       "Call Bank Fraud Helpline",
			Description: fmt.Sprintf("Report %s immediately", scenario.Name),
			Timeframe:   callTimeframe,
			Icon:        "📞",
		},
		{
			ID:          "block-payment",
			Priority:    domain.PriorityImmediate,
			Title:       blockTitle(scenario.Category),
			Description: "Prevent further unauthorized transactions",
			Timeframe:   "0-5 minutes",
			Icon:        "🔒",
		},
		{
			ID:          "cybercrime",
			Priority:    cybercrimePriority,
			Title:       "File Cybercrime Complaint",
			Description: "Register complaint on cybercrime.gov.in",
			Timeframe:   cybercrimeTimeframe,
			Icon:        "🚨",
		},
	}

	switch scenario.Category {
	case "UPI":
		actions = append(actions, domain.ActionItem{
			ID:          "upi-dispute",
			Priority:    domain.PriorityWithin4H,
			Title:       "File UPI Dispute",
			Description: "Report transaction in your UPI app",
			Timeframe:   "Within 4 hours",
			Icon:        "📱",
		})
	case "Card":
		actions = append(actions, domain.ActionItem{
			ID:          "chargeback",
			Priority:    domain.PriorityWithin24H,
			Title:       "Request Chargeback",
			Description: "Dispute unauthorized card transactions",
			Timeframe:   "Within 24 hours",
			Icon:        "💳",
		})
	}

	actions = append(actions, domain.ActionItem{
		ID:          "evidence",
		Priority:    domain.PriorityWithin4H,
		Title:       "Collect Evidence",
		Description: "Screenshots, receipts, and communication records",
		Timeframe:   "Within 4 hours",
		Icon:        "📸",
	})

	return actions
}

func blockTitle(category string) string {
	switch category {
	case "UPI":
		return "Disable UPI"
	case "Card":
		return "Block Card"
	default:
		return "Freeze Account"
	}
}

// RecoveryProbability estimates the chance of recovering lost money as an
// integer percentage. The arithmetic starts from a base of 50, adjusts for
// urgency, then applies scenario-name adjustments in a fixed order. A name
// containing "Prevention" short-circuits to 100 since no money was lost.
func RecoveryProbability(scenario domain.Scenario, urgency domain.Urgency) int {
	prob := 50

	switch urgency {
	case domain.UrgencyCritical:
		prob += 25
	case domain.UrgencyUrgent:
		prob += 15
	case domain.UrgencyHigh:
		prob += 5
	default:
		prob -= 20
	}

	if strings.Contains(scenario.Name, "QR Code") {
		prob += 10
	}
	if strings.Contains(scenario.Name, "Card Cloning") {
		prob -= 15
	}
	if strings.Contains(scenario.Name, "Prevention") {
		return 100
	}
	if strings.Contains(scenario.Name, "Investment") {
		prob -= 30
	}

	if prob < 0 {
		return 0
	}
	if prob > 100 {
		return 100
	}
	return prob
}
