package domain

import (
	"context"
)

// EventBus defines the interface for event-driven communication.
// Supports Go channels (single process) or NATS (distributed).
type EventBus interface {
	// Publish sends a message to a topic.
	Publish(ctx context.Context, topic string, payload []byte) error

	// Subscribe registers a handler for a topic.
	// Returns a subscription that can be used to unsubscribe.
	Subscribe(ctx context.Context, topic string, handler MessageHandler) (Subscription, error)

	// Health check
	Ping(ctx context.Context) error

	// Lifecycle
	Close() error
}

// MessageHandler processes incoming messages.
type MessageHandler func(ctx context.Context, msg *Message) error

// Message represents an event message.
type Message struct {
	ID        string `json:"id"`
	Topic     string `json:"topic"`
	Payload   []byte `json:"payload"`
	Timestamp int64  `json:"timestamp"`
}

// Subscription represents an active subscription.
type Subscription interface {
	// Unsubscribe stops receiving messages.
	Unsubscribe() error

	// Topic returns the subscribed topic.
	Topic() string
}

// EventBusConfig holds configuration for event bus initialization.
type EventBusConfig struct {
	// Type is the bus type: "channel" or "nats"
	Type string

	// Channel settings
	ChannelBufferSize int

	// NATS settings
	NATSUrl           string
	NATSToken         string
	NATSMaxReconnects int
	NATSReconnectWait int // seconds
}

// Session lifecycle topics.
const (
	TopicTriageStarted   = "kavach.triage.started"
	TopicTriageCompleted = "kavach.triage.completed"
)

// TriageStartedEvent is published when a new session begins.
type TriageStartedEvent struct {
	SessionID string `json:"sessionId"`
	StartedAt int64  `json:"startedAt"`
}

// TriageCompletedEvent is published when a session reaches a terminal option.
type TriageCompletedEvent struct {
	SessionID           string  `json:"sessionId"`
	FraudScenario       string  `json:"fraudScenario"`
	Category            string  `json:"category"`
	UrgencyLevel        Urgency `json:"urgencyLevel"`
	RecoveryProbability int     `json:"recoveryProbability"`
	Steps               int     `json:"steps"`
	CompletedAt         int64   `json:"completedAt"`
}
