package stats

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/upi-kavach/kavach/internal/bus"
	"github.com/upi-kavach/kavach/internal/domain"
)

func publish(t *testing.T, b domain.EventBus, topic string, event any) {
	t.Helper()
	payload, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}
	if err := b.Publish(context.Background(), topic, payload); err != nil {
		t.Fatalf("Publish(%s) error: %v", topic, err)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached within deadline")
}

func TestCollectorAggregates(t *testing.T) {
	b := bus.NewChannelBus(10)
	defer b.Close()

	c := NewCollector(b)
	if err := c.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	defer c.Close()

	publish(t, b, domain.TopicTriageStarted, domain.TriageStartedEvent{SessionID: "s1"})
	publish(t, b, domain.TopicTriageStarted, domain.TriageStartedEvent{SessionID: "s2"})

	publish(t, b, domain.TopicTriageCompleted, domain.TriageCompletedEvent{
		SessionID:           "s1",
		FraudScenario:       "UPI QR Code Amount Manipulation",
		Category:            "UPI Fraud",
		UrgencyLevel:        domain.UrgencyCritical,
		RecoveryProbability: 85,
		Steps:               5,
	})
	publish(t, b, domain.TopicTriageCompleted, domain.TriageCompletedEvent{
		SessionID:           "s2",
		FraudScenario:       "Phishing Attack (Email)",
		Category:            "Phishing",
		UrgencyLevel:        domain.UrgencyStandard,
		RecoveryProbability: 35,
		Steps:               7,
	})

	waitFor(t, func() bool { return c.Snapshot().SessionsCompleted == 2 })

	snap := c.Snapshot()
	if snap.SessionsStarted != 2 {
		t.Errorf("SessionsStarted = %d, want 2", snap.SessionsStarted)
	}
	if snap.ByScenario["UPI QR Code Amount Manipulation"] != 1 {
		t.Errorf("ByScenario = %v", snap.ByScenario)
	}
	if snap.ByCategory["Phishing"] != 1 {
		t.Errorf("ByCategory = %v", snap.ByCategory)
	}
	if snap.ByUrgency[domain.UrgencyCritical] != 1 {
		t.Errorf("ByUrgency = %v", snap.ByUrgency)
	}
	if snap.AvgRecoveryProbability != 60 {
		t.Errorf("AvgRecoveryProbability = %v, want 60", snap.AvgRecoveryProbability)
	}
	if snap.AvgSteps != 6 {
		t.Errorf("AvgSteps = %v, want 6", snap.AvgSteps)
	}
}

func TestCollectorEmptySnapshot(t *testing.T) {
	b := bus.NewChannelBus(10)
	defer b.Close()

	c := NewCollector(b)
	if err := c.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	defer c.Close()

	snap := c.Snapshot()
	if snap.SessionsStarted != 0 || snap.SessionsCompleted != 0 {
		t.Errorf("fresh snapshot not zero: %+v", snap)
	}
	if snap.AvgRecoveryProbability != 0 || snap.AvgSteps != 0 {
		t.Errorf("averages on zero completions should be 0: %+v", snap)
	}
}

func TestCollectorIgnoresMalformedEvents(t *testing.T) {
	b := bus.NewChannelBus(10)
	defer b.Close()

	c := NewCollector(b)
	if err := c.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	defer c.Close()

	if err := b.Publish(context.Background(), domain.TopicTriageCompleted, []byte("not json")); err != nil {
		t.Fatalf("Publish() error: %v", err)
	}
	publish(t, b, domain.TopicTriageStarted, domain.TriageStartedEvent{SessionID: "s1"})

	waitFor(t, func() bool { return c.Snapshot().SessionsStarted == 1 })

	if got := c.Snapshot().SessionsCompleted; got != 0 {
		t.Errorf("SessionsCompleted = %d after malformed event, want 0", got)
	}
}
