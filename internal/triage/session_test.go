package triage

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/upi-kavach/kavach/internal/classify"
	"github.com/upi-kavach/kavach/internal/domain"
	"github.com/upi-kavach/kavach/internal/graph"
)

func testGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.Builtin()
	if err != nil {
		t.Fatalf("graph.Builtin() error: %v", err)
	}
	return g
}

func testClassifier(t *testing.T) *classify.Engine {
	t.Helper()
	e, err := classify.NewEngine()
	if err != nil {
		t.Fatalf("classify.NewEngine() error: %v", err)
	}
	if err := e.LoadRules(classify.BuiltinRules()); err != nil {
		t.Fatalf("LoadRules() error: %v", err)
	}
	return e
}

func mustAnswer(t *testing.T, s *Session, questionID, value string) *domain.TriageResult {
	t.Helper()
	result, err := s.Answer(questionID, value, time.Now())
	if err != nil {
		t.Fatalf("Answer(%s, %s) error: %v", questionID, value, err)
	}
	return result
}

func TestSessionCriticalQRPath(t *testing.T) {
	s := NewSession("s1", testGraph(t), testClassifier(t), time.Now())

	mustAnswer(t, s, "Q1_TIME", "just-now")
	mustAnswer(t, s, "Q2_MONEY_STATUS", "yes-lost")
	mustAnswer(t, s, "Q3_PAYMENT_METHOD", "upi")
	mustAnswer(t, s, "Q4_UPI_ACTIVITY", "scanning-qr")
	result := mustAnswer(t, s, "Q5_QR_ISSUE", "wrong-amount")

	if result == nil {
		t.Fatal("terminal answer returned nil result")
	}
	if result.FraudScenario != "UPI QR Code Amount Manipulation" {
		t.Errorf("scenario = %q, want UPI QR Code Amount Manipulation", result.FraudScenario)
	}
	if result.Category != "UPI" {
		t.Errorf("category = %q, want UPI", result.Category)
	}
	if result.UrgencyLevel != domain.UrgencyCritical {
		t.Errorf("urgency = %q, want critical", result.UrgencyLevel)
	}
	if result.RecoveryProbability != 85 {
		t.Errorf("recovery probability = %d, want 85", result.RecoveryProbability)
	}
	if len(result.Actions) != 5 {
		t.Errorf("action count = %d, want 5", len(result.Actions))
	}

	wantPath := []string{
		"Q1_TIME:just-now",
		"Q2_MONEY_STATUS:yes-lost",
		"Q3_PAYMENT_METHOD:upi",
		"Q4_UPI_ACTIVITY:scanning-qr",
		"Q5_QR_ISSUE:wrong-amount",
	}
	if !reflect.DeepEqual(result.Path, wantPath) {
		t.Errorf("path = %v, want %v", result.Path, wantPath)
	}

	if !s.IsComplete() {
		t.Error("session not marked complete")
	}
	if got, err := s.Result(); err != nil || got != result {
		t.Errorf("Result() = %v, %v", got, err)
	}
}

func TestSessionFakeMerchantPath(t *testing.T) {
	s := NewSession("s1", testGraph(t), testClassifier(t), time.Now())

	mustAnswer(t, s, "Q1_TIME", "just-now")
	mustAnswer(t, s, "Q2_MONEY_STATUS", "yes-lost")
	mustAnswer(t, s, "Q3_PAYMENT_METHOD", "upi")
	mustAnswer(t, s, "Q4_UPI_ACTIVITY", "scanning-qr")
	result := mustAnswer(t, s, "Q5_QR_ISSUE", "fake-merchant")

	if result.FraudScenario != "Fake Merchant QR Code Scam" {
		t.Errorf("scenario = %q, want Fake Merchant QR Code Scam", result.FraudScenario)
	}
	if result.Category != "UPI" {
		t.Errorf("category = %q, want UPI", result.Category)
	}
}

func TestSessionUrgencyMapping(t *testing.T) {
	tests := []struct {
		value string
		want  domain.Urgency
	}{
		{"just-now", domain.UrgencyCritical},
		{"recent", domain.UrgencyUrgent},
		{"today", domain.UrgencyHigh},
		{"older", domain.UrgencyStandard},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			s := NewSession("s1", testGraph(t), testClassifier(t), time.Now())
			mustAnswer(t, s, "Q1_TIME", tt.value)
			if got := s.Snapshot().Urgency; got != tt.want {
				t.Errorf("urgency = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSessionRejectsInvalidTransitions(t *testing.T) {
	s := NewSession("s1", testGraph(t), testClassifier(t), time.Now())

	t.Run("answer for non-current question", func(t *testing.T) {
		_, err := s.Answer("Q3_PAYMENT_METHOD", "upi", time.Now())
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("error = %v, want ErrInvalidTransition", err)
		}
	})

	t.Run("unknown option value", func(t *testing.T) {
		_, err := s.Answer("Q1_TIME", "next-week", time.Now())
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("error = %v, want ErrInvalidTransition", err)
		}
	})

	t.Run("rejected answer mutates nothing", func(t *testing.T) {
		before := s.Snapshot()
		_, _ = s.Answer("Q1_TIME", "bogus", time.Now())
		after := s.Snapshot()
		if before.Question.ID != after.Question.ID || len(after.Path) != len(before.Path) {
			t.Errorf("session state changed by rejected answer: %+v -> %+v", before, after)
		}
	})

	t.Run("answer after completion", func(t *testing.T) {
		mustAnswer(t, s, "Q1_TIME", "just-now")
		mustAnswer(t, s, "Q2_MONEY_STATUS", "prevented")
		mustAnswer(t, s, "Q3_PREVENTED", "transaction-failed")

		_, err := s.Answer("Q1_TIME", "just-now", time.Now())
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("error = %v, want ErrInvalidTransition", err)
		}
	})
}

func TestSessionBack(t *testing.T) {
	t.Run("round trip restores answers and question", func(t *testing.T) {
		s := NewSession("s1", testGraph(t), testClassifier(t), time.Now())
		mustAnswer(t, s, "Q1_TIME", "just-now")
		before := s.Snapshot()

		mustAnswer(t, s, "Q2_MONEY_STATUS", "yes-lost")
		qid, err := s.Back(time.Now())
		if err != nil {
			t.Fatalf("Back() error: %v", err)
		}
		if qid != "Q2_MONEY_STATUS" {
			t.Errorf("Back() = %q, want Q2_MONEY_STATUS", qid)
		}

		after := s.Snapshot()
		if after.Question.ID != before.Question.ID {
			t.Errorf("current question = %q, want %q", after.Question.ID, before.Question.ID)
		}
		if !reflect.DeepEqual(after.Path, before.Path) {
			t.Errorf("path = %v, want %v", after.Path, before.Path)
		}
	})

	t.Run("urgency is sticky across back navigation", func(t *testing.T) {
		s := NewSession("s1", testGraph(t), testClassifier(t), time.Now())
		mustAnswer(t, s, "Q1_TIME", "just-now")

		if _, err := s.Back(time.Now()); err != nil {
			t.Fatalf("Back() error: %v", err)
		}
		if got := s.Snapshot().Urgency; got != domain.UrgencyCritical {
			t.Errorf("urgency after back = %q, want critical (not reverted)", got)
		}

		// Re-answering the root overwrites the level.
		mustAnswer(t, s, "Q1_TIME", "older")
		if got := s.Snapshot().Urgency; got != domain.UrgencyStandard {
			t.Errorf("urgency after re-answer = %q, want standard", got)
		}
	})

	t.Run("back at root", func(t *testing.T) {
		s := NewSession("s1", testGraph(t), testClassifier(t), time.Now())
		if _, err := s.Back(time.Now()); !errors.Is(err, ErrAtStart) {
			t.Fatalf("error = %v, want ErrAtStart", err)
		}
	})

	t.Run("back after completion", func(t *testing.T) {
		s := NewSession("s1", testGraph(t), testClassifier(t), time.Now())
		mustAnswer(t, s, "Q1_TIME", "just-now")
		mustAnswer(t, s, "Q2_MONEY_STATUS", "prevented")
		mustAnswer(t, s, "Q3_PREVENTED", "transaction-failed")

		if _, err := s.Back(time.Now()); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("error = %v, want ErrInvalidTransition", err)
		}
	})
}

func TestSessionCheckBranchLoopsIntoLossBranch(t *testing.T) {
	s := NewSession("s1", testGraph(t), testClassifier(t), time.Now())

	mustAnswer(t, s, "Q1_TIME", "today")
	mustAnswer(t, s, "Q2_MONEY_STATUS", "not-sure")
	mustAnswer(t, s, "Q3_CHECK", "checking-now")
	mustAnswer(t, s, "Q4_CHECK_RESULT", "unauthorized-found")

	snap := s.Snapshot()
	if snap.Question == nil || snap.Question.ID != "Q3_PAYMENT_METHOD" {
		t.Fatalf("current question = %+v, want Q3_PAYMENT_METHOD", snap.Question)
	}
	if snap.Urgency != domain.UrgencyHigh {
		t.Errorf("urgency = %q, want high (preserved across loop-back)", snap.Urgency)
	}

	mustAnswer(t, s, "Q3_PAYMENT_METHOD", "upi")
	mustAnswer(t, s, "Q4_UPI_ACTIVITY", "scanning-qr")
	result := mustAnswer(t, s, "Q5_QR_ISSUE", "wrong-amount")

	if result.FraudScenario != "UPI QR Code Amount Manipulation" {
		t.Errorf("scenario = %q, want UPI QR Code Amount Manipulation", result.FraudScenario)
	}
	// Both the check branch and the loss branch show up in the path.
	if len(result.Path) != 7 {
		t.Errorf("path length = %d, want 7: %v", len(result.Path), result.Path)
	}
	if result.Answers["Q2_MONEY_STATUS"] != "not-sure" {
		t.Errorf("check-branch answer lost: %v", result.Answers)
	}
}

func TestSessionWithoutClassifierFallsBack(t *testing.T) {
	s := NewSession("s1", testGraph(t), nil, time.Now())

	mustAnswer(t, s, "Q1_TIME", "older")
	mustAnswer(t, s, "Q2_MONEY_STATUS", "prevented")
	result := mustAnswer(t, s, "Q3_PREVENTED", "transaction-failed")

	if result.FraudScenario != "Financial Fraud" || result.Category != "General" {
		t.Errorf("result = %q/%q, want fallback scenario", result.FraudScenario, result.Category)
	}
}
