package netfilter

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jokarl/nearacct/internal/types"
)

func names(networks []types.Network) []string {
	out := make([]string, len(networks))
	for i, n := range networks {
		out[i] = n.Name
	}
	return out
}

func TestSelect(t *testing.T) {
	networks := []types.Network{
		{Name: "mainnet"},
		{Name: "testnet"},
		{Name: "localnet"},
		{Name: "testnet-fastnear"},
	}

	tests := []struct {
		name     string
		include  []string
		exclude  []string
		expected []string
	}{
		{
			name:     "default selects all in order",
			include:  []string{"*"},
			expected: []string{"mainnet", "testnet", "localnet", "testnet-fastnear"},
		},
		{
			name:     "empty include selects all",
			expected: []string{"mainnet", "testnet", "localnet", "testnet-fastnear"},
		},
		{
			name:     "prefix pattern",
			include:  []string{"testnet*"},
			expected: []string{"testnet", "testnet-fastnear"},
		},
		{
			name:     "exclude wins",
			include:  []string{"*"},
			exclude:  []string{"local*"},
			expected: []string{"mainnet", "testnet", "testnet-fastnear"},
		},
		{
			name:     "alternatives",
			include:  []string{"{mainnet,localnet}"},
			expected: []string{"mainnet", "localnet"},
		},
		{
			name:     "no match",
			include:  []string{"betanet"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.include, tt.exclude).Select(networks)
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}
			if diff := cmp.Diff(tt.expected, names(got)); diff != "" {
				t.Errorf("Select() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultFilter().Validate(); err != nil {
		t.Errorf("default filter invalid: %v", err)
	}
	if err := New([]string{"[main"}, nil).Validate(); err == nil {
		t.Error("expected error for unterminated class")
	}
}

func TestMatch(t *testing.T) {
	f := New([]string{"*net"}, []string{"mainnet"})

	ok, err := f.Match("testnet")
	if err != nil || !ok {
		t.Errorf("Match(testnet) = %v, %v", ok, err)
	}
	ok, err = f.Match("mainnet")
	if err != nil || ok {
		t.Errorf("Match(mainnet) = %v, %v", ok, err)
	}
}
