package policy

import (
	"context"

	"github.com/jokarl/nearacct/internal/types"
)

// AlreadyExists detects candidates that are registered on a configured network
type AlreadyExists struct{}

func (r *AlreadyExists) ID() string {
	return "AE001"
}

func (r *AlreadyExists) Name() string {
	return "already-exists"
}

func (r *AlreadyExists) Description() string {
	return "The account already exists on a configured network, so a create-account transaction would fail and waste tokens"
}

func (r *AlreadyExists) Kind() types.ViolationKind {
	return types.ViolationAlreadyExists
}

func (r *AlreadyExists) Documentation() *RuleDoc {
	return &RuleDoc{
		ID:          r.ID(),
		Name:        r.Name(),
		Kind:        r.Kind(),
		Description: r.Description(),
		Example:     "alice.testnet (exists on testnet)",
		Remediation: `Pick a name that is not taken yet. Networks are probed in the order
they appear in .nearacct.hcl and the first network holding the account
is reported. An unreachable network counts as "not found".`,
	}
}

func (r *AlreadyExists) Evaluate(ctx context.Context, env *Env, candidate types.AccountID) *types.Violation {
	network, found := env.Prober.FindExisting(ctx, candidate)
	if !found {
		return nil
	}
	return types.NewAlreadyExists(r.ID(), candidate, network)
}
