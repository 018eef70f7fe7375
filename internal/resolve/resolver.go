// Package resolve drives the interactive resolution of a new account id.
//
// The resolver is a small state machine:
//
//	AwaitingCandidate -> Evaluating -> Accepted
//	                         |
//	                         +-> AwaitingReplacement -> Evaluating
//
// Every violation is advisory. The user may always keep the current name,
// and may bypass evaluation entirely at the entry gate.
package resolve

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jokarl/nearacct/internal/balance"
	"github.com/jokarl/nearacct/internal/policy"
	"github.com/jokarl/nearacct/internal/types"
)

// ErrAborted wraps every failure that ends a resolution without an accepted id
var ErrAborted = errors.New("account id resolution aborted")

type state int

const (
	stateAwaitingCandidate state = iota
	stateEvaluating
	stateAwaitingReplacement
	stateAccepted
)

func (s state) String() string {
	switch s {
	case stateAwaitingCandidate:
		return "awaiting-candidate"
	case stateEvaluating:
		return "evaluating"
	case stateAwaitingReplacement:
		return "awaiting-replacement"
	case stateAccepted:
		return "accepted"
	default:
		return "unknown"
	}
}

// Resolver resolves a user-supplied identifier into an accepted account id
type Resolver struct {
	evaluator policy.Evaluator
	ui        Interactor
	gate      GateMode
	logger    hclog.Logger
}

// Option configures a Resolver
type Option func(*Resolver)

// WithGateMode pre-answers the entry gate
func WithGateMode(mode GateMode) Option {
	return func(r *Resolver) {
		r.gate = mode
	}
}

// WithLogger sets the logger
func WithLogger(logger hclog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New creates a Resolver
func New(evaluator policy.Evaluator, ui Interactor, opts ...Option) *Resolver {
	r := &Resolver{
		evaluator: evaluator,
		ui:        ui,
		gate:      GateAsk,
		logger:    hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve runs the resolution loop. When initial is empty the user is asked
// for the first candidate.
func (r *Resolver) Resolve(ctx context.Context, initial types.AccountID) (*types.Resolution, error) {
	current := initial
	if current == "" {
		id, err := r.readAccountID(ctx)
		if err != nil {
			return nil, err
		}
		current = id
	}

	gate, err := r.askGate(current)
	if err != nil {
		return nil, abort(err)
	}
	if gate == GateSkip {
		r.logger.Info("existence check skipped", "account_id", current)
		return types.NewResolution(current, false), nil
	}

	res := types.NewResolution(current, true)
	st := stateEvaluating
	for {
		r.logger.Trace("resolution state", "state", st, "account_id", current)

		switch st {
		case stateEvaluating:
			res.Attempts++
			v := r.evaluator.Evaluate(ctx, current)
			if v == nil {
				st = stateAccepted
				continue
			}

			r.ui.Notify(v)
			res.AddAdvisory(v)

			decision, err := r.askRename(current)
			if err != nil {
				return nil, abort(err)
			}
			if decision == RenameKeep {
				r.logger.Info("keeping name despite advisory", "account_id", current, "kind", v.Kind)
				st = stateAccepted
			} else {
				st = stateAwaitingReplacement
			}

		case stateAwaitingReplacement, stateAwaitingCandidate:
			id, err := r.readAccountID(ctx)
			if err != nil {
				return nil, err
			}
			current = id
			st = stateEvaluating

		case stateAccepted:
			res.AccountID = current
			return res, nil
		}
	}
}

func (r *Resolver) askGate(candidate types.AccountID) (GateDecision, error) {
	switch r.gate {
	case GateAlways:
		return GateCheck, nil
	case GateNever:
		return GateSkip, nil
	}

	yes, err := r.ui.Confirm(Question{Kind: QuestionCheckExistence, AccountID: candidate})
	if err != nil {
		return GateSkip, err
	}
	if yes {
		return GateCheck, nil
	}
	return GateSkip, nil
}

func (r *Resolver) askRename(candidate types.AccountID) (RenameDecision, error) {
	yes, err := r.ui.Confirm(Question{Kind: QuestionChangeName, AccountID: candidate})
	if err != nil {
		return RenameKeep, err
	}
	if yes {
		return RenameChange, nil
	}
	return RenameKeep, nil
}

// readAccountID asks until the input parses as an account id
func (r *Resolver) readAccountID(ctx context.Context) (types.AccountID, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", abort(err)
		}

		raw, err := r.ui.Input(Question{Kind: QuestionAccountID}, "")
		if err != nil {
			return "", abort(err)
		}

		id, err := types.ParseAccountID(raw)
		if err != nil {
			r.ui.Invalid(err)
			continue
		}
		return id, nil
	}
}

// ReadInitialBalance asks for the funding amount. Unlike the account id, an
// unparsable amount ends the step with an error.
func ReadInitialBalance(ui Interactor, defaultValue string) (balance.Balance, error) {
	raw, err := ui.Input(Question{Kind: QuestionInitialBalance}, defaultValue)
	if err != nil {
		return balance.Balance{}, abort(err)
	}
	if raw == "" {
		raw = defaultValue
	}
	b, err := balance.Parse(raw)
	if err != nil {
		return balance.Balance{}, err
	}
	return b, nil
}

func abort(err error) error {
	return fmt.Errorf("%w: %w", ErrAborted, err)
}
