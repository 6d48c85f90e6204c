package domain

// ScenarioRule is one ordered classification rule. Expression is a CEL
// expression over two variables: `answers` (map of question ID to chosen
// option value) and `endpoint` (the terminal option value). Rules are
// evaluated in declaration order; the first rule whose expression yields
// true decides the scenario.
type ScenarioRule struct {
	ID         string `json:"id"`
	Name       string `json:"name"`     // scenario name, e.g. "UPI QR Code Amount Manipulation"
	Category   string `json:"category"` // "UPI", "Card", "NetBanking", "Prevention"
	Expression string `json:"expression"`
}

// FallbackScenario is returned when no classification rule matches.
var FallbackScenario = Scenario{Name: "Financial Fraud", Category: "General"}
