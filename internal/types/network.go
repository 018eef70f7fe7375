package types

import "time"

// Network identifies one backend able to answer account existence queries
type Network struct {
	// Name is the configured network name (e.g., "mainnet")
	Name string `json:"name" yaml:"name"`

	// RPCURL is the JSON-RPC endpoint of the network
	RPCURL string `json:"rpc_url" yaml:"rpc_url"`

	// WalletURL is the web wallet used for this network
	WalletURL string `json:"wallet_url,omitempty" yaml:"wallet_url,omitempty"`

	// ExplorerURL is the block explorer used for this network
	ExplorerURL string `json:"explorer_url,omitempty" yaml:"explorer_url,omitempty"`

	// Timeout bounds a single RPC request (0 means the client default)
	Timeout time.Duration `json:"-" yaml:"-"`
}

// AccountState is the on-chain view of an existing account
type AccountState struct {
	Amount        string `json:"amount"`
	Locked        string `json:"locked"`
	CodeHash      string `json:"code_hash"`
	StorageUsage  uint64 `json:"storage_usage"`
	StoragePaidAt uint64 `json:"storage_paid_at"`
	BlockHeight   uint64 `json:"block_height"`
	BlockHash     string `json:"block_hash"`
}
