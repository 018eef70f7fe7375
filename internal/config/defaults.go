package config

import "github.com/jokarl/nearacct/internal/policy"

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Version: 1,
		Networks: []*NetworkConfig{
			{
				Name:        "mainnet",
				RPCURL:      "https://archival-rpc.mainnet.near.org",
				WalletURL:   "https://app.mynearwallet.com/",
				ExplorerURL: "https://explorer.near.org/",
			},
			{
				Name:        "testnet",
				RPCURL:      "https://archival-rpc.testnet.near.org",
				WalletURL:   "https://testnet.mynearwallet.com/",
				ExplorerURL: "https://explorer.testnet.near.org/",
			},
		},
		Account: &AccountConfig{
			MinTopLevelLength:     policy.DefaultMinTopLevelLength,
			DefaultInitialBalance: "0.1 NEAR",
		},
		Selection: &SelectionConfig{
			Include: []string{"*"},
			Exclude: []string{},
		},
		Output: &OutputConfig{
			Format: "text",
			Color:  "auto",
		},
		Log: &LogConfig{
			Level: "warn",
		},
		Rules: []*RuleConfig{},
	}
}

// DefaultConfigHCL returns the documented starter configuration written by init
func DefaultConfigHCL() string {
	return `# nearacct configuration
version = 1

# Networks are checked in the order they are declared. The first network
# on which an account exists is reported. Values may reference environment
# variables (or a .env file next to this file) as env.NAME.
network "mainnet" {
  rpc_url      = "https://archival-rpc.mainnet.near.org"
  wallet_url   = "https://app.mynearwallet.com/"
  explorer_url = "https://explorer.near.org/"
  # timeout    = "30s"
}

network "testnet" {
  rpc_url      = "https://archival-rpc.testnet.near.org"
  wallet_url   = "https://testnet.mynearwallet.com/"
  explorer_url = "https://explorer.testnet.near.org/"
}

account {
  # Top-level names shorter than this can only be created by the registrar
  min_top_level_length = 32

  # Offered when asking for the initial balance
  default_initial_balance = "0.1 NEAR"
}

# Which networks to check (doublestar patterns over network names)
selection {
  include = ["*"]
  exclude = []
}

output {
  format = "text" # text, json, yaml
  color  = "auto" # auto, always, never
}

log {
  level = "warn" # trace, debug, info, warn, error
}

# Rules can be switched off by name or ID:
# rules "parent-missing" {
#   enabled = false
# }
`
}
