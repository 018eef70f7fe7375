package policy

import (
	"context"

	"github.com/jokarl/nearacct/internal/types"
)

// TopLevelTooShort detects top-level names shorter than the registrar-only limit
type TopLevelTooShort struct{}

func (r *TopLevelTooShort) ID() string {
	return "NP001"
}

func (r *TopLevelTooShort) Name() string {
	return "top-level-too-short"
}

func (r *TopLevelTooShort) Description() string {
	return "Only the registrar account can create top-level accounts shorter than the minimum length"
}

func (r *TopLevelTooShort) Kind() types.ViolationKind {
	return types.ViolationTooShortTopLevel
}

func (r *TopLevelTooShort) Documentation() *RuleDoc {
	return &RuleDoc{
		ID:          r.ID(),
		Name:        r.Name(),
		Kind:        r.Kind(),
		Description: r.Description(),
		Example:     "alice (5 characters, top-level)",
		Remediation: `Create a sub-account of an account you control instead, e.g.
alice.near or app.alice.near, or choose a top-level name at least
as long as account.min_top_level_length (32 by default).

See https://nomicon.io/DataStructures/Account#top-level-accounts`,
	}
}

func (r *TopLevelTooShort) Evaluate(ctx context.Context, env *Env, candidate types.AccountID) *types.Violation {
	if !candidate.IsTopLevel() {
		return nil
	}
	if candidate.Len() >= env.MinTopLevelLength {
		return nil
	}
	return types.NewTooShortTopLevel(r.ID(), candidate, env.MinTopLevelLength)
}
