// Package stats aggregates triage outcomes from the event bus.
package stats

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/upi-kavach/kavach/internal/domain"
)

// Collector consumes triage lifecycle events and keeps running aggregates.
// All counts are per-process; in a multi-replica deployment each replica
// reports its own share unless the NATS bus fans events into one collector.
type Collector struct {
	bus domain.EventBus

	mu          sync.RWMutex
	started     int64
	completed   int64
	byScenario  map[string]int64
	byCategory  map[string]int64
	byUrgency   map[domain.Urgency]int64
	recoverySum int64
	stepsSum    int64

	subscriptions []domain.Subscription
	ctx           context.Context
	cancel        context.CancelFunc
}

// Snapshot is a point-in-time view of the aggregates.
type Snapshot struct {
	SessionsStarted        int64                    `json:"sessionsStarted"`
	SessionsCompleted      int64                    `json:"sessionsCompleted"`
	ByScenario             map[string]int64         `json:"byScenario"`
	ByCategory             map[string]int64         `json:"byCategory"`
	ByUrgency              map[domain.Urgency]int64 `json:"byUrgency"`
	AvgRecoveryProbability float64                  `json:"avgRecoveryProbability"`
	AvgSteps               float64                  `json:"avgSteps"`
}

// NewCollector creates a collector bound to the given bus.
func NewCollector(bus domain.EventBus) *Collector {
	ctx, cancel := context.WithCancel(context.Background())
	return &Collector{
		bus:        bus,
		byScenario: make(map[string]int64),
		byCategory: make(map[string]int64),
		byUrgency:  make(map[domain.Urgency]int64),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start subscribes to the triage lifecycle topics.
func (c *Collector) Start() error {
	sub, err := c.bus.Subscribe(c.ctx, domain.TopicTriageStarted, c.handleStarted)
	if err != nil {
		return err
	}
	c.subscriptions = append(c.subscriptions, sub)

	sub, err = c.bus.Subscribe(c.ctx, domain.TopicTriageCompleted, c.handleCompleted)
	if err != nil {
		return err
	}
	c.subscriptions = append(c.subscriptions, sub)

	slog.Info("stats collector started")
	return nil
}

func (c *Collector) handleStarted(ctx context.Context, msg *domain.Message) error {
	var event domain.TriageStartedEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		slog.Error("failed to parse triage started event",
			"message_id", msg.ID,
			"error", err,
		)
		return err
	}

	c.mu.Lock()
	c.started++
	c.mu.Unlock()
	return nil
}

func (c *Collector) handleCompleted(ctx context.Context, msg *domain.Message) error {
	var event domain.TriageCompletedEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		slog.Error("failed to parse triage completed event",
			"message_id", msg.ID,
			"error", err,
		)
		return err
	}

	c.mu.Lock()
	c.completed++
	c.byScenario[event.FraudScenario]++
	c.byCategory[event.Category]++
	c.byUrgency[event.UrgencyLevel]++
	c.recoverySum += int64(event.RecoveryProbability)
	c.stepsSum += int64(event.Steps)
	c.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the current aggregates.
func (c *Collector) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := Snapshot{
		SessionsStarted:   c.started,
		SessionsCompleted: c.completed,
		ByScenario:        make(map[string]int64, len(c.byScenario)),
		ByCategory:        make(map[string]int64, len(c.byCategory)),
		ByUrgency:         make(map[domain.Urgency]int64, len(c.byUrgency)),
	}
	for k, v := range c.byScenario {
		snap.ByScenario[k] = v
	}
	for k, v := range c.byCategory {
		snap.ByCategory[k] = v
	}
	for k, v := range c.byUrgency {
		snap.ByUrgency[k] = v
	}
	if c.completed > 0 {
		snap.AvgRecoveryProbability = float64(c.recoverySum) / float64(c.completed)
		snap.AvgSteps = float64(c.stepsSum) / float64(c.completed)
	}
	return snap
}

// Close unsubscribes from the bus.
func (c *Collector) Close() error {
	c.cancel()
	for _, sub := range c.subscriptions {
		_ = sub.Unsubscribe()
	}
	c.subscriptions = nil
	return nil
}
