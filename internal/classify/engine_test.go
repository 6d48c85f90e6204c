package classify

import (
	"testing"

	"github.com/upi-kavach/kavach/internal/domain"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine()
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}
	if err := e.LoadRules(BuiltinRules()); err != nil {
		t.Fatalf("LoadRules() error: %v", err)
	}
	return e
}

func TestClassifyBuiltinRules(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name         string
		answers      domain.AnswerMap
		endpoint     string
		wantName     string
		wantCategory string
	}{
		{
			name: "qr wrong amount",
			answers: domain.AnswerMap{
				"Q1_TIME":           "just-now",
				"Q2_MONEY_STATUS":   "yes-lost",
				"Q3_PAYMENT_METHOD": "upi",
				"Q4_UPI_ACTIVITY":   "scanning-qr",
				"Q5_QR_ISSUE":       "wrong-amount",
			},
			endpoint:     "wrong-amount",
			wantName:     "UPI QR Code Amount Manipulation",
			wantCategory: "UPI",
		},
		{
			name: "fake merchant qr",
			answers: domain.AnswerMap{
				"Q4_UPI_ACTIVITY": "scanning-qr",
			},
			endpoint:     "fake-merchant",
			wantName:     "Fake Merchant QR Code Scam",
			wantCategory: "UPI",
		},
		{
			name: "investment fraud",
			answers: domain.AnswerMap{
				"Q4_UPI_ACTIVITY": "sending-money",
			},
			endpoint:     "investment-job",
			wantName:     "Investment/Job Fraud",
			wantCategory: "UPI",
		},
		{
			name: "card cloning",
			answers: domain.AnswerMap{
				"Q4_CARD_WHERE": "online",
			},
			endpoint:     "multiple-unauthorized",
			wantName:     "Card Cloning",
			wantCategory: "Card",
		},
		{
			name: "vishing",
			answers: domain.AnswerMap{
				"Q4_NETBANK_ACCESS": "shared-otp",
			},
			endpoint:     "caller-bank",
			wantName:     "Vishing (Voice Phishing)",
			wantCategory: "NetBanking",
		},
		{
			name: "prevented phishing",
			answers: domain.AnswerMap{
				"Q2_MONEY_STATUS": "prevented",
			},
			endpoint:     "otp-details",
			wantName:     "Phishing Attempt (Prevented)",
			wantCategory: "Prevention",
		},
		{
			name: "password changed takeover keys on question visit",
			answers: domain.AnswerMap{
				"Q3_CHECK":        "cannot-access",
				"Q4_ACCESS_ISSUE": "password-not-working",
			},
			endpoint:     "password-not-working",
			wantName:     "Account Takeover (Password Changed)",
			wantCategory: "NetBanking",
		},
		{
			name: "unmapped endpoint falls back",
			answers: domain.AnswerMap{
				"Q4_UPI_ACTIVITY": "scanning-qr",
			},
			endpoint:     "different-recipient",
			wantName:     "Financial Fraud",
			wantCategory: "General",
		},
		{
			name:         "empty answers fall back",
			answers:      domain.AnswerMap{},
			endpoint:     "whatever",
			wantName:     "Financial Fraud",
			wantCategory: "General",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Classify(tt.answers, tt.endpoint)
			if got.Name != tt.wantName {
				t.Errorf("scenario name = %q, want %q", got.Name, tt.wantName)
			}
			if got.Category != tt.wantCategory {
				t.Errorf("scenario category = %q, want %q", got.Category, tt.wantCategory)
			}
		})
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	e, err := NewEngine()
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}
	rules := []*domain.ScenarioRule{
		{ID: "specific", Name: "Specific", Category: "A", Expression: `endpoint == "x"`},
		{ID: "broad", Name: "Broad", Category: "B", Expression: `true`},
	}
	if err := e.LoadRules(rules); err != nil {
		t.Fatalf("LoadRules() error: %v", err)
	}

	if got := e.Classify(domain.AnswerMap{}, "x"); got.Name != "Specific" {
		t.Errorf("scenario = %q, want Specific", got.Name)
	}
	if got := e.Classify(domain.AnswerMap{}, "y"); got.Name != "Broad" {
		t.Errorf("scenario = %q, want Broad", got.Name)
	}
}

func TestLoadRulesRejectsBadExpressions(t *testing.T) {
	e, err := NewEngine()
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}

	t.Run("syntax error", func(t *testing.T) {
		err := e.LoadRules([]*domain.ScenarioRule{
			{ID: "bad", Name: "Bad", Category: "X", Expression: `endpoint ==`},
		})
		if err == nil {
			t.Fatal("expected compile error")
		}
	})

	t.Run("non-bool output", func(t *testing.T) {
		err := e.LoadRules([]*domain.ScenarioRule{
			{ID: "bad", Name: "Bad", Category: "X", Expression: `endpoint`},
		})
		if err == nil {
			t.Fatal("expected type error for non-bool expression")
		}
	})

	t.Run("unknown variable", func(t *testing.T) {
		err := e.ValidateRule(&domain.ScenarioRule{
			ID: "bad", Name: "Bad", Category: "X", Expression: `velocity > 3`,
		})
		if err == nil {
			t.Fatal("expected error for unknown variable")
		}
	})
}

func TestLoadRulesReplacesRuleSet(t *testing.T) {
	e := newTestEngine(t)
	before := e.RuleCount()
	if before == 0 {
		t.Fatal("builtin rule set is empty")
	}

	if err := e.LoadRules([]*domain.ScenarioRule{
		{ID: "only", Name: "Only", Category: "X", Expression: `true`},
	}); err != nil {
		t.Fatalf("LoadRules() error: %v", err)
	}
	if got := e.RuleCount(); got != 1 {
		t.Errorf("rule count = %d, want 1", got)
	}
}

func TestEvaluationErrorIsSkipped(t *testing.T) {
	e, err := NewEngine()
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}
	// The first rule indexes a missing key without a guard, which errors at
	// evaluation time. Classification must move on to the next rule.
	rules := []*domain.ScenarioRule{
		{ID: "erroring", Name: "Erroring", Category: "X", Expression: `answers["MISSING"] == "x"`},
		{ID: "match", Name: "Match", Category: "Y", Expression: `true`},
	}
	if err := e.LoadRules(rules); err != nil {
		t.Fatalf("LoadRules() error: %v", err)
	}
	if got := e.Classify(domain.AnswerMap{}, "x"); got.Name != "Match" {
		t.Errorf("scenario = %q, want Match", got.Name)
	}
}
