package policy

import (
	"context"

	"github.com/jokarl/nearacct/internal/types"
)

// ParentMissing detects sub-accounts whose parent does not exist on any network.
// Top-level parents are assumed to exist and are never probed.
type ParentMissing struct{}

func (r *ParentMissing) ID() string {
	return "NP002"
}

func (r *ParentMissing) Name() string {
	return "parent-missing"
}

func (r *ParentMissing) Description() string {
	return "A sub-account can only be created by its parent account, which does not exist yet"
}

func (r *ParentMissing) Kind() types.ViolationKind {
	return types.ViolationParentMissing
}

func (r *ParentMissing) Documentation() *RuleDoc {
	return &RuleDoc{
		ID:          r.ID(),
		Name:        r.Name(),
		Kind:        r.Kind(),
		Description: r.Description(),
		Example:     "app.alice.near (alice.near not found on any network)",
		Remediation: `Create the parent account first, or pick a name under a parent
account you already own.`,
	}
}

func (r *ParentMissing) Evaluate(ctx context.Context, env *Env, candidate types.AccountID) *types.Violation {
	parent, ok := candidate.Parent()
	if !ok || parent.IsTopLevel() {
		return nil
	}
	if _, found := env.Prober.FindExisting(ctx, parent); found {
		return nil
	}
	return types.NewParentMissing(r.ID(), candidate, parent)
}
