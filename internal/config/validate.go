package config

import (
	"fmt"
	"net/url"

	"github.com/hashicorp/go-hclog"

	"github.com/jokarl/nearacct/internal/balance"
	"github.com/jokarl/nearacct/internal/policy"
	"github.com/jokarl/nearacct/internal/types"
)

// Validate validates the configuration
func Validate(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (only version 1 is supported)", cfg.Version)
	}

	if err := validateNetworks(cfg.Networks); err != nil {
		return err
	}

	if cfg.Account != nil {
		if n := cfg.Account.MinTopLevelLength; n < 1 || n > types.MaxAccountIDLength {
			return fmt.Errorf("invalid min_top_level_length: %d (must be between 1 and %d)", n, types.MaxAccountIDLength)
		}
		if cfg.Account.DefaultInitialBalance != "" {
			if _, err := balance.Parse(cfg.Account.DefaultInitialBalance); err != nil {
				return fmt.Errorf("invalid default_initial_balance: %w", err)
			}
		}
	}

	if cfg.Selection != nil {
		if err := cfg.Filter().Validate(); err != nil {
			return err
		}
	}

	if cfg.Output != nil && cfg.Output.Format != "" {
		switch cfg.Output.Format {
		case "text", "json", "yaml":
			// valid
		default:
			return fmt.Errorf("invalid output format: %s (must be 'text', 'json', or 'yaml')", cfg.Output.Format)
		}
	}

	if cfg.Output != nil && cfg.Output.Color != "" {
		switch cfg.Output.Color {
		case "auto", "always", "never":
			// valid
		default:
			return fmt.Errorf("invalid color mode: %s (must be 'auto', 'always', or 'never')", cfg.Output.Color)
		}
	}

	if cfg.Log != nil && cfg.Log.Level != "" {
		if hclog.LevelFromString(cfg.Log.Level) == hclog.NoLevel {
			return fmt.Errorf("invalid log level: %s", cfg.Log.Level)
		}
	}

	for _, rule := range cfg.Rules {
		if !policy.IsKnownRule(rule.Name) {
			return fmt.Errorf("unknown rule: %s", rule.Name)
		}
	}

	return nil
}

func validateNetworks(networks []*NetworkConfig) error {
	seen := make(map[string]bool)
	for _, n := range networks {
		if n.Name == "" {
			return fmt.Errorf("network name must not be empty")
		}
		if seen[n.Name] {
			return fmt.Errorf("duplicate network: %s", n.Name)
		}
		seen[n.Name] = true

		u, err := url.Parse(n.RPCURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid rpc_url for network %s: %q", n.Name, n.RPCURL)
		}

		if _, err := parseTimeout(n.Timeout); err != nil {
			return fmt.Errorf("invalid timeout for network %s: %w", n.Name, err)
		}
	}
	return nil
}
