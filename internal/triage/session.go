// Package triage implements the questionnaire state machine and the session
// manager that hosts it. A session walks the question graph one answer at a
// time, accumulating an answer map and traversal path, and produces a triage
// result exactly once when a terminal option is chosen.
package triage

import (
	"errors"
	"sync"
	"time"

	"github.com/upi-kavach/kavach/internal/domain"
	"github.com/upi-kavach/kavach/internal/graph"
	"github.com/upi-kavach/kavach/internal/plan"
)

var (
	// ErrInvalidTransition reports an answer for a question other than the
	// current one, an option not present on the current question, or any
	// operation on an already completed session. The session state is
	// unchanged when this is returned.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrAtStart reports back-navigation at the root question. A signal,
	// not a failure; the caller decides whether to abandon the flow.
	ErrAtStart = errors.New("already at first question")

	// ErrNotComplete reports a result request before a terminal option was
	// answered.
	ErrNotComplete = errors.New("triage not complete")
)

// Classifier names the fraud scenario for a completed questionnaire.
type Classifier interface {
	Classify(answers domain.AnswerMap, endpoint string) domain.Scenario
}

// Session is one triage walk through the question graph. All methods are
// safe for concurrent use; a session has exactly one pending question at a
// time, so concurrent answers serialize and the loser gets
// ErrInvalidTransition.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	graph      *graph.Graph
	classifier Classifier
	current    string
	answers    domain.AnswerMap
	path       []string
	urgency    domain.Urgency
	result     *domain.TriageResult
	updatedAt  time.Time
}

// NewSession starts a session at the graph's root question.
func NewSession(id string, g *graph.Graph, classifier Classifier, now time.Time) *Session {
	return &Session{
		ID:         id,
		CreatedAt:  now,
		graph:      g,
		classifier: classifier,
		current:    g.Root(),
		answers:    make(domain.AnswerMap),
		urgency:    domain.UrgencyStandard,
		updatedAt:  now,
	}
}

// urgencyForTime maps the root-question answer to an urgency level.
func urgencyForTime(value string) domain.Urgency {
	switch value {
	case "just-now":
		return domain.UrgencyCritical
	case "recent":
		return domain.UrgencyUrgent
	case "today":
		return domain.UrgencyHigh
	default:
		return domain.UrgencyStandard
	}
}

// Answer records the chosen option for the current question and advances the
// session. On a terminal option it classifies the scenario, builds the
// action plan, and returns the completed result; otherwise the returned
// result is nil. Validation happens before any mutation, so a rejected
// answer leaves the session exactly as it was.
//
// Answering the root question sets the urgency level. Re-answering it after
// back-navigation overwrites the level; nothing else ever changes it.
func (s *Session) Answer(questionID, value string, now time.Time) (*domain.TriageResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != nil {
		return nil, ErrInvalidTransition
	}
	if questionID != s.current {
		return nil, ErrInvalidTransition
	}

	q, err := s.graph.Question(s.current)
	if err != nil {
		return nil, err
	}

	var chosen *domain.Option
	for i := range q.Options {
		if q.Options[i].Value == value {
			chosen = &q.Options[i]
			break
		}
	}
	if chosen == nil {
		return nil, ErrInvalidTransition
	}

	// Resolve the next question before mutating, so a graph configuration
	// error cannot leave a half-advanced session.
	var next string
	if !chosen.Terminal() {
		probe := s.answers.Clone()
		probe[questionID] = value
		next, err = s.graph.Next(*chosen, probe)
		if err != nil {
			return nil, err
		}
	}

	s.answers[questionID] = value
	s.path = append(s.path, domain.PathToken(questionID, value))
	s.updatedAt = now

	if questionID == s.graph.Root() {
		s.urgency = urgencyForTime(value)
	}

	if chosen.Terminal() {
		s.result = s.buildResult(value)
		return s.result, nil
	}

	s.current = next
	return nil, nil
}

func (s *Session) buildResult(endpoint string) *domain.TriageResult {
	scenario := domain.FallbackScenario
	if s.classifier != nil {
		scenario = s.classifier.Classify(s.answers, endpoint)
	}

	path := make([]string, len(s.path))
	copy(path, s.path)

	return &domain.TriageResult{
		FraudScenario:       scenario.Name,
		Category:            scenario.Category,
		UrgencyLevel:        s.urgency,
		Actions:             plan.Actions(scenario, s.urgency),
		RecoveryProbability: plan.RecoveryProbability(scenario, s.urgency),
		Path:                path,
		Answers:             s.answers.Clone(),
	}
}

// Back undoes the most recent answer and returns to its question. The
// urgency level is deliberately not reverted: once the incident time is
// known the urgency framing stays, even if the user navigates back past the
// root answer. Returns ErrAtStart at the root and ErrInvalidTransition on a
// completed session.
func (s *Session) Back(now time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != nil {
		return "", ErrInvalidTransition
	}
	if len(s.path) == 0 {
		return "", ErrAtStart
	}

	last := s.path[len(s.path)-1]
	questionID, _ := domain.SplitPathToken(last)

	s.path = s.path[:len(s.path)-1]
	delete(s.answers, questionID)
	s.current = questionID
	s.updatedAt = now

	return questionID, nil
}

// Current returns the pending question, or nil once the session is complete.
func (s *Session) Current() *domain.Question {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != nil {
		return nil
	}
	q, err := s.graph.Question(s.current)
	if err != nil {
		return nil
	}
	return q
}

// IsComplete reports whether a terminal option has been answered.
func (s *Session) IsComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result != nil
}

// Result returns the triage result, or ErrNotComplete before completion.
func (s *Session) Result() (*domain.TriageResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result == nil {
		return nil, ErrNotComplete
	}
	return s.result, nil
}

// State is a read-only snapshot of a session for API responses.
type State struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
	Complete  bool             `json:"complete"`
	Question  *domain.Question `json:"question,omitempty"`
	Urgency   domain.Urgency   `json:"urgency"`
	Path      []string         `json:"path"`
	Step      int              `json:"step"`
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.updatedAt,
		Complete:  s.result != nil,
		Urgency:   s.urgency,
		Path:      append([]string(nil), s.path...),
		Step:      len(s.path) + 1,
	}
	if s.result == nil {
		if q, err := s.graph.Question(s.current); err == nil {
			st.Question = q
		}
	}
	return st
}

// LastActive returns the time of the most recent state change. Used by the
// manager's TTL sweeper.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}
