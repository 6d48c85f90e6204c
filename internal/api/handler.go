package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/upi-kavach/kavach/internal/bank"
	"github.com/upi-kavach/kavach/internal/classify"
	"github.com/upi-kavach/kavach/internal/content"
	"github.com/upi-kavach/kavach/internal/domain"
	"github.com/upi-kavach/kavach/internal/graph"
	"github.com/upi-kavach/kavach/internal/stats"
	"github.com/upi-kavach/kavach/internal/triage"
)

// Handler holds dependencies for API handlers.
type Handler struct {
	manager   *triage.Manager
	engine    *classify.Engine
	generator *content.Generator
	graph     *graph.Graph
	cache     domain.Cache
	bus       domain.EventBus
	collector *stats.Collector
	version   string
}

// NewHandler creates a new API handler.
func NewHandler(manager *triage.Manager, engine *classify.Engine, generator *content.Generator, g *graph.Graph, cache domain.Cache, bus domain.EventBus, collector *stats.Collector, version string) *Handler {
	return &Handler{
		manager:   manager,
		engine:    engine,
		generator: generator,
		graph:     g,
		cache:     cache,
		bus:       bus,
		collector: collector,
		version:   version,
	}
}

// StartSession handles POST /sessions.
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.manager.Start(r.Context())
	if err != nil {
		h.writeTriageError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, s.Snapshot())
}

// GetSession handles GET /sessions/{id}.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.manager.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeTriageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Snapshot())
}

// AnswerRequest is the request body for POST /sessions/{id}/answers.
type AnswerRequest struct {
	QuestionID string `json:"questionId"`
	Value      string `json:"value"`
}

// AnswerResponse is the response for POST /sessions/{id}/answers. Result is
// set only on the terminal answer; before that Session carries the next
// question.
type AnswerResponse struct {
	Complete bool                 `json:"complete"`
	Session  *triage.State        `json:"session,omitempty"`
	Result   *domain.TriageResult `json:"result,omitempty"`
}

// Answer handles POST /sessions/{id}/answers.
func (h *Handler) Answer(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid JSON request body",
		})
		return
	}
	if req.QuestionID == "" || req.Value == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "questionId and value are required",
		})
		return
	}

	result, err := h.manager.Answer(r.Context(), sessionID, req.QuestionID, req.Value)
	if err != nil {
		h.writeTriageError(w, err)
		return
	}

	if result != nil {
		writeJSON(w, http.StatusOK, AnswerResponse{Complete: true, Result: result})
		return
	}

	s, err := h.manager.Get(sessionID)
	if err != nil {
		h.writeTriageError(w, err)
		return
	}
	state := s.Snapshot()
	writeJSON(w, http.StatusOK, AnswerResponse{Session: &state})
}

// Back handles POST /sessions/{id}/back.
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	if _, err := h.manager.Back(sessionID); err != nil {
		h.writeTriageError(w, err)
		return
	}

	s, err := h.manager.Get(sessionID)
	if err != nil {
		h.writeTriageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Snapshot())
}

// GetResult handles GET /sessions/{id}/result.
func (h *Handler) GetResult(w http.ResponseWriter, r *http.Request) {
	result, err := h.manager.Result(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeTriageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ContentRequest is the request body for POST /content.
type ContentRequest struct {
	Scenario string             `json:"scenario"`
	Details  domain.CaseDetails `json:"details"`
}

// GenerateContent handles POST /content.
func (h *Handler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	var req ContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid JSON request body",
		})
		return
	}
	if req.Scenario == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "scenario is required",
		})
		return
	}

	writeJSON(w, http.StatusOK, h.generator.Generate(req.Scenario, req.Details))
}

// ListBanks handles GET /banks.
func (h *Handler) ListBanks(w http.ResponseWriter, r *http.Request) {
	banks := bank.SupportedBanks()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"banks": banks,
		"count": len(banks),
	})
}

// GetBank handles GET /banks/{name}. Unknown banks get the generic record so
// the caller always has a number to dial.
func (h *Handler) GetBank(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	writeJSON(w, http.StatusOK, bank.Contacts(name))
}

// ListQuestions handles GET /questions.
func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions := h.graph.Questions()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"root":      h.graph.Root(),
		"questions": questions,
		"count":     len(questions),
	})
}

// ListRules returns the loaded classification rules.
func (h *Handler) ListRules(w http.ResponseWriter, r *http.Request) {
	loadedRules := h.engine.LoadedRules()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rules": loadedRules,
		"count": len(loadedRules),
	})
}

// GetStats handles GET /stats.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	if h.collector == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "stats collector not available",
		})
		return
	}
	writeJSON(w, http.StatusOK, h.collector.Snapshot())
}

// Health returns server health status.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"

	// Check cache health
	if h.cache != nil {
		if err := h.cache.Ping(r.Context()); err != nil {
			status = "degraded"
		}
	}

	// Check bus health
	if h.bus != nil {
		if err := h.bus.Ping(r.Context()); err != nil {
			status = "degraded"
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  status,
		"version": h.version,
	})
}

// Ready returns whether the server is ready to accept traffic.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"ready": "true",
	})
}

// writeTriageError maps session errors to HTTP status codes.
func (h *Handler) writeTriageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, triage.ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "session not found",
		})
	case errors.Is(err, triage.ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, map[string]string{
			"error": err.Error(),
		})
	case errors.Is(err, triage.ErrAtStart):
		writeJSON(w, http.StatusConflict, map[string]string{
			"error": "already at the first question",
		})
	case errors.Is(err, triage.ErrNotComplete):
		writeJSON(w, http.StatusConflict, map[string]string{
			"error": "triage not complete",
		})
	case errors.Is(err, triage.ErrTooManySessions):
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "too many live sessions, try again later",
		})
	default:
		slog.Error("triage operation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "internal server error",
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
