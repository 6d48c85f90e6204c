// Package classify provides the CEL-Go based scenario classification engine.
//
// Each completed questionnaire is matched against an ordered list of rules
// whose CEL expressions inspect the collected answers and the terminal
// option. The first rule that evaluates to true names the fraud scenario;
// if none match, the generic fallback scenario is returned.
package classify

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"

	"github.com/upi-kavach/kavach/internal/domain"
)

// Engine is the CEL-based scenario classification engine.
type Engine struct {
	mu    sync.RWMutex
	env   *cel.Env
	rules []*compiledRule
}

// compiledRule holds a pre-compiled CEL program alongside its config.
type compiledRule struct {
	config  *domain.ScenarioRule
	program cel.Program
}

// NewEngine creates a classification engine with an empty rule set.
func NewEngine() (*Engine, error) {
	env, err := cel.NewEnv(
		cel.Variable("answers", cel.MapType(cel.StringType, cel.StringType)),
		cel.Variable("endpoint", cel.StringType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	return &Engine{env: env}, nil
}

// ValidateRule compiles a rule without mutating the loaded rule set.
func (e *Engine) ValidateRule(cfg *domain.ScenarioRule) error {
	if cfg == nil {
		return fmt.Errorf("rule config is required")
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	_, err := e.compileRule(cfg)
	return err
}

// LoadRules compiles and installs a rule set, replacing any previous one.
// Rule order is preserved: classification is first-match-wins, so more
// specific rules must come before broader ones.
func (e *Engine) LoadRules(configs []*domain.ScenarioRule) error {
	compiled := make([]*compiledRule, 0, len(configs))
	for _, cfg := range configs {
		rule, err := e.compileRule(cfg)
		if err != nil {
			return err
		}
		compiled = append(compiled, rule)
	}

	e.mu.Lock()
	e.rules = compiled
	e.mu.Unlock()

	return nil
}

// Classify matches the answers and terminal option against the loaded rules
// in order and returns the scenario of the first match. A rule that fails to
// evaluate is skipped; classification itself never fails, the fallback
// scenario covers paths no rule describes.
func (e *Engine) Classify(answers domain.AnswerMap, endpoint string) domain.Scenario {
	e.mu.RLock()
	rules := e.rules
	e.mu.RUnlock()

	activation := map[string]any{
		"answers":  map[string]string(answers),
		"endpoint": endpoint,
	}

	for _, rule := range rules {
		out, _, err := rule.program.Eval(activation)
		if err != nil {
			slog.Debug("scenario rule evaluation failed",
				"rule_id", rule.config.ID,
				"error", err)
			continue
		}
		if matched, ok := out.(types.Bool); ok && bool(matched) {
			return domain.Scenario{
				Name:     rule.config.Name,
				Category: rule.config.Category,
			}
		}
	}

	return domain.FallbackScenario
}

// RuleCount returns the number of loaded rules.
func (e *Engine) RuleCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.rules)
}

// LoadedRules returns the currently loaded rule configurations in
// evaluation order.
func (e *Engine) LoadedRules() []*domain.ScenarioRule {
	e.mu.RLock()
	defer e.mu.RUnlock()

	rules := make([]*domain.ScenarioRule, 0, len(e.rules))
	for _, rule := range e.rules {
		rules = append(rules, rule.config)
	}
	return rules
}

// Close cleans up the engine.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rules = nil
	return nil
}

func (e *Engine) compileRule(cfg *domain.ScenarioRule) (*compiledRule, error) {
	ast, issues := e.env.Compile(cfg.Expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("failed to compile rule %s: %w", cfg.ID, issues.Err())
	}

	if ast.OutputType() != cel.BoolType {
		return nil, fmt.Errorf("rule %s: expression must return bool, got %s", cfg.ID, ast.OutputType())
	}

	program, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to create program for rule %s: %w", cfg.ID, err)
	}

	return &compiledRule{config: cfg, program: program}, nil
}
