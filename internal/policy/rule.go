package policy

import (
	"context"

	"github.com/jokarl/nearacct/internal/types"
)

// DefaultMinTopLevelLength is the shortest top-level name that anyone other
// than the registrar may create.
const DefaultMinTopLevelLength = 32

// Env is what rules may consult while evaluating a candidate
type Env struct {
	// Prober looks the candidate (or its parent) up on every configured network
	Prober *Prober

	// MinTopLevelLength is the minimum character count of a top-level name
	MinTopLevelLength int
}

// Rule defines the interface for a naming policy rule
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "NP001")
	ID() string

	// Name returns the human-readable name (e.g., "top-level-too-short")
	Name() string

	// Description returns a description of what this rule detects
	Description() string

	// Kind returns the kind of violation this rule produces
	Kind() types.ViolationKind

	// Evaluate checks the candidate and returns a violation, or nil if it passes
	Evaluate(ctx context.Context, env *Env, candidate types.AccountID) *types.Violation
}
