package policy

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/jokarl/nearacct/internal/rpc"
	"github.com/jokarl/nearacct/internal/types"
)

// NetworkRegistry answers whether an account exists on one network
type NetworkRegistry interface {
	// Name returns the configured network name
	Name() string

	// Network returns the network description reported in advisories
	Network() *types.Network

	// CheckExistence performs a single blocking read of the account's latest state
	CheckExistence(ctx context.Context, id types.AccountID) (*types.AccountState, error)
}

// Prober checks a candidate against an ordered set of network registries
type Prober struct {
	registries []NetworkRegistry
	logger     hclog.Logger
}

// NewProber creates a Prober over registries in their configured order
func NewProber(registries []NetworkRegistry, logger hclog.Logger) *Prober {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Prober{
		registries: registries,
		logger:     logger,
	}
}

// Names returns the registry names in probe order
func (p *Prober) Names() []string {
	if p == nil {
		return []string{}
	}
	names := make([]string, 0, len(p.registries))
	for _, r := range p.registries {
		names = append(names, r.Name())
	}
	return names
}

// FindExisting returns the first registry, in configured order, on which the
// account exists. Lookup failures count as "not on this registry", so a
// negative answer is advisory only.
func (p *Prober) FindExisting(ctx context.Context, id types.AccountID) (*types.Network, bool) {
	if p == nil {
		return nil, false
	}
	for _, r := range p.registries {
		_, err := r.CheckExistence(ctx, id)
		if err == nil {
			p.logger.Debug("account exists", "account_id", id, "network", r.Name())
			return r.Network(), true
		}

		if rpc.IsUnknownAccount(err) {
			p.logger.Trace("account not found", "account_id", id, "network", r.Name())
		} else {
			p.logger.Debug("lookup failed, treating account as absent", "account_id", id, "network", r.Name(), "error", err)
		}
	}
	return nil, false
}
