package policy

import (
	"context"
	"errors"

	"github.com/jokarl/nearacct/internal/rpc"
	"github.com/jokarl/nearacct/internal/types"
)

// stubRegistry answers existence queries from a fixed set and counts calls
type stubRegistry struct {
	name     string
	accounts map[types.AccountID]bool
	fail     error
	calls    []types.AccountID
}

func newStub(name string, accounts ...types.AccountID) *stubRegistry {
	s := &stubRegistry{name: name, accounts: make(map[types.AccountID]bool)}
	for _, a := range accounts {
		s.accounts[a] = true
	}
	return s
}

func (s *stubRegistry) Name() string {
	return s.name
}

func (s *stubRegistry) Network() *types.Network {
	return &types.Network{Name: s.name, RPCURL: "https://rpc." + s.name + ".example"}
}

func (s *stubRegistry) CheckExistence(ctx context.Context, id types.AccountID) (*types.AccountState, error) {
	s.calls = append(s.calls, id)
	if s.fail != nil {
		return nil, s.fail
	}
	if s.accounts[id] {
		return &types.AccountState{BlockHeight: 1}, nil
	}
	return nil, &rpc.RPCError{Name: "HANDLER_ERROR", Cause: &rpc.ErrorCause{Name: "UNKNOWN_ACCOUNT"}}
}

var errUnreachable = errors.New("dial tcp: connection refused")

func registries(stubs ...*stubRegistry) []NetworkRegistry {
	out := make([]NetworkRegistry, len(stubs))
	for i, s := range stubs {
		out[i] = s
	}
	return out
}
