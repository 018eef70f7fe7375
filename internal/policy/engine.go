package policy

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/jokarl/nearacct/internal/types"
)

// Evaluator decides whether a candidate account id violates the naming policy
type Evaluator interface {
	Evaluate(ctx context.Context, candidate types.AccountID) *types.Violation
}

// Engine evaluates rules in registry order against a candidate
type Engine struct {
	registry *Registry
	env      Env
	disabled map[string]bool
	logger   hclog.Logger
}

// NewEngine creates an Engine over the given registry. The environment is
// copied; a nil env or a non-positive minimum length falls back to defaults.
func NewEngine(registry *Registry, env *Env, logger hclog.Logger) *Engine {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	var e Env
	if env != nil {
		e = *env
	}
	if e.MinTopLevelLength <= 0 {
		e.MinTopLevelLength = DefaultMinTopLevelLength
	}
	return &Engine{
		registry: registry,
		env:      e,
		disabled: make(map[string]bool),
		logger:   logger,
	}
}

// NewDefaultEngine creates an Engine with the built-in rules
func NewDefaultEngine(prober *Prober, minTopLevelLength int, logger hclog.Logger) *Engine {
	return NewEngine(DefaultRegistry, &Env{Prober: prober, MinTopLevelLength: minTopLevelLength}, logger)
}

// EnableRule enables a rule by ID or name
func (e *Engine) EnableRule(idOrName string) {
	if rule, ok := e.registry.Lookup(idOrName); ok {
		delete(e.disabled, rule.ID())
	}
}

// DisableRule disables a rule by ID or name
func (e *Engine) DisableRule(idOrName string) {
	if rule, ok := e.registry.Lookup(idOrName); ok {
		e.disabled[rule.ID()] = true
	}
}

// IsEnabled reports whether a rule takes part in evaluation
func (e *Engine) IsEnabled(id string) bool {
	return !e.disabled[id]
}

// MinTopLevelLength returns the configured minimum top-level name length
func (e *Engine) MinTopLevelLength() int {
	return e.env.MinTopLevelLength
}

// Evaluate runs the enabled rules in order and returns the first violation,
// or nil when the candidate passes every rule.
func (e *Engine) Evaluate(ctx context.Context, candidate types.AccountID) *types.Violation {
	for _, rule := range e.registry.All() {
		if !e.IsEnabled(rule.ID()) {
			continue
		}
		if v := rule.Evaluate(ctx, &e.env, candidate); v != nil {
			e.logger.Debug("policy violation", "account_id", candidate, "rule", rule.Name(), "kind", v.Kind)
			return v
		}
	}
	e.logger.Debug("candidate passed all rules", "account_id", candidate)
	return nil
}
