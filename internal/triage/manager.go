package triage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/upi-kavach/kavach/internal/domain"
	"github.com/upi-kavach/kavach/internal/graph"
)

var tracer = otel.Tracer("kavach-triage")

var (
	// ErrSessionNotFound reports an unknown or expired session ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrTooManySessions reports that the live-session cap was hit.
	ErrTooManySessions = errors.New("too many live sessions")
)

// counterSessionsStarted is the cache counter key for daily session volume.
const counterSessionsStarted = "kavach:counter:sessions_started"

// resultCacheKey is the cache key for a completed triage result.
func resultCacheKey(sessionID string) string {
	return "kavach:result:" + sessionID
}

// Manager owns the live triage sessions. It creates sessions, routes answers
// and back-navigation to them, expires idle ones, and on completion caches
// the result and publishes a completion event.
type Manager struct {
	cfg        domain.SessionConfig
	graph      *graph.Graph
	classifier Classifier
	cache      domain.Cache
	bus        domain.EventBus
	clock      func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewManager creates a session manager and starts its expiry sweeper.
func NewManager(cfg domain.SessionConfig, g *graph.Graph, classifier Classifier, cache domain.Cache, bus domain.EventBus) *Manager {
	m := &Manager{
		cfg:        cfg,
		graph:      g,
		classifier: classifier,
		cache:      cache,
		bus:        bus,
		clock:      time.Now,
		sessions:   make(map[string]*Session),
		stopCh:     make(chan struct{}),
	}

	if cfg.SweepInterval > 0 && cfg.TTL > 0 {
		m.wg.Add(1)
		go m.sweepLoop()
	}

	return m
}

// Start creates a new session at the root question.
func (m *Manager) Start(ctx context.Context) (*Session, error) {
	now := m.clock()

	m.mu.Lock()
	if m.cfg.MaxSessions > 0 && len(m.sessions) >= m.cfg.MaxSessions {
		m.mu.Unlock()
		return nil, ErrTooManySessions
	}
	s := NewSession(uuid.New().String(), m.graph, m.classifier, now)
	m.sessions[s.ID] = s
	m.mu.Unlock()

	// Volume counter and start event are best effort; triage proceeds
	// even when the cache or bus is down.
	if m.cache != nil {
		if _, err := m.cache.IncrementCounter(ctx, counterSessionsStarted, 24*time.Hour); err != nil {
			slog.Warn("failed to increment session counter", "error", err)
		}
	}
	m.publish(ctx, domain.TopicTriageStarted, domain.TriageStartedEvent{
		SessionID: s.ID,
		StartedAt: now.Unix(),
	})

	slog.Debug("triage session started", "session_id", s.ID)
	return s, nil
}

// Get returns a live session by ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Answer applies one answer to a session. On the terminal answer the
// completed result is returned, cached, and announced on the bus; before
// that the result is nil and the caller reads the next question from the
// session snapshot.
func (m *Manager) Answer(ctx context.Context, sessionID, questionID, value string) (*domain.TriageResult, error) {
	s, err := m.Get(sessionID)
	if err != nil {
		return nil, err
	}

	result, err := s.Answer(questionID, value, m.clock())
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}

	ctx, span := tracer.Start(ctx, "triage.complete",
		trace.WithAttributes(
			attribute.String("session.id", sessionID),
			attribute.String("scenario", result.FraudScenario),
			attribute.String("category", result.Category),
			attribute.String("urgency", string(result.UrgencyLevel)),
			attribute.Int("recovery_probability", result.RecoveryProbability),
		),
	)
	defer span.End()

	m.storeResult(ctx, sessionID, result)
	m.publish(ctx, domain.TopicTriageCompleted, domain.TriageCompletedEvent{
		SessionID:           sessionID,
		FraudScenario:       result.FraudScenario,
		Category:            result.Category,
		UrgencyLevel:        result.UrgencyLevel,
		RecoveryProbability: result.RecoveryProbability,
		Steps:               len(result.Path),
		CompletedAt:         m.clock().Unix(),
	})

	slog.Info("triage session completed",
		"session_id", sessionID,
		"scenario", result.FraudScenario,
		"category", result.Category,
		"urgency", result.UrgencyLevel,
		"recovery_probability", result.RecoveryProbability,
		"steps", len(result.Path))

	return result, nil
}

// Back undoes the latest answer on a session and returns the question ID the
// session moved back to.
func (m *Manager) Back(sessionID string) (string, error) {
	s, err := m.Get(sessionID)
	if err != nil {
		return "", err
	}
	return s.Back(m.clock())
}

// Result returns the completed result for a session. A session evicted from
// memory is served from the result cache, which also covers results
// completed on another replica when the cache is shared.
func (m *Manager) Result(ctx context.Context, sessionID string) (*domain.TriageResult, error) {
	if s, err := m.Get(sessionID); err == nil {
		return s.Result()
	}

	if m.cache != nil {
		data, err := m.cache.Get(ctx, resultCacheKey(sessionID))
		if err != nil {
			return nil, fmt.Errorf("result cache lookup: %w", err)
		}
		if data != nil {
			var result domain.TriageResult
			if err := json.Unmarshal(data, &result); err != nil {
				return nil, fmt.Errorf("decode cached result: %w", err)
			}
			return &result, nil
		}
	}

	return nil, ErrSessionNotFound
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close stops the expiry sweeper. Live sessions are dropped; completed
// results remain available through the cache until their TTL.
func (m *Manager) Close() error {
	m.stopOnce.Do(func() {
		close(m.stopCh)
	})
	m.wg.Wait()
	return nil
}

func (m *Manager) storeResult(ctx context.Context, sessionID string, result *domain.TriageResult) {
	if m.cache == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		slog.Warn("failed to encode triage result for cache", "session_id", sessionID, "error", err)
		return
	}
	ttl := m.cfg.ResultTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	if err := m.cache.Set(ctx, resultCacheKey(sessionID), data, ttl); err != nil {
		slog.Warn("failed to cache triage result", "session_id", sessionID, "error", err)
	}
}

func (m *Manager) publish(ctx context.Context, topic string, event any) {
	if m.bus == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		slog.Warn("failed to encode event", "topic", topic, "error", err)
		return
	}
	if err := m.bus.Publish(ctx, topic, payload); err != nil {
		slog.Warn("failed to publish event", "topic", topic, "error", err)
	}
}

func (m *Manager) sweepLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopCh:
			return
		case <-ticker.C:
			m.sweep()
		}
	}
}

// sweep evicts sessions idle longer than the TTL. Completed sessions are
// evicted too; their results stay reachable through the cache.
func (m *Manager) sweep() {
	cutoff := m.clock().Add(-m.cfg.TTL)

	m.mu.Lock()
	var evicted int
	for id, s := range m.sessions {
		if s.LastActive().Before(cutoff) {
			delete(m.sessions, id)
			evicted++
		}
	}
	m.mu.Unlock()

	if evicted > 0 {
		slog.Debug("evicted idle triage sessions", "count", evicted)
	}
}
