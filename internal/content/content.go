// Package content generates ready-to-use reporting material for a classified
// fraud scenario: a call script for the bank helpline, an SMS, and an email
// body, plus immediate-action checklists.
//
// Generation is a pure string build. The scenario name is lower-cased and
// matched against an ordered list of substring predicates; the first match
// picks the template set. Case fields are interpolated where present, and
// every interpolation site degrades to a bracketed human-readable
// placeholder, so a completely empty case record still produces usable text.
package content

import (
	"strings"
	"time"

	"github.com/upi-kavach/kavach/internal/domain"
)

// Generator builds scenario content. The clock stamps the "called fraud
// helpline" lines in email bodies; inject a fixed clock in tests.
type Generator struct {
	clock func() time.Time
}

// NewGenerator creates a generator using the wall clock.
func NewGenerator() *Generator {
	return &Generator{clock: time.Now}
}

// NewGeneratorWithClock creates a generator with an injected clock.
func NewGeneratorWithClock(clock func() time.Time) *Generator {
	return &Generator{clock: clock}
}

// Generate builds the content for a scenario. Predicate order matters: the
// first matching template set wins, and anything unmatched falls through to
// the generic fraud template.
func (g *Generator) Generate(scenarioName string, details domain.CaseDetails) domain.ScenarioContent {
	scenario := strings.ToLower(scenarioName)

	switch {
	case strings.Contains(scenario, "qr") && strings.Contains(scenario, "amount manipulation"):
		return g.qrAmountManipulation(details)
	case strings.Contains(scenario, "account takeover") || strings.Contains(scenario, "compromised"):
		return g.accountTakeover(scenario, details)
	case strings.Contains(scenario, "skimming") || strings.Contains(scenario, "cloning"):
		return g.cardCompromise(scenario, details)
	case strings.Contains(scenario, "phishing"):
		return g.phishing(scenario, details)
	case strings.Contains(scenario, "e-commerce") || strings.Contains(scenario, "online seller"):
		return g.ecommerce(details)
	default:
		return g.generic(scenarioName, details)
	}
}

// orElse returns the value, or the bracketed placeholder when it is empty.
func orElse(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

// helplineCalledAt renders the timestamp for "called fraud helpline" lines.
func (g *Generator) helplineCalledAt() string {
	return g.clock().Format("2 Jan 2006, 3:04 PM")
}
