// Package config handles loading and validating nearacct configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/jokarl/nearacct/internal/netfilter"
	"github.com/jokarl/nearacct/internal/types"
)

// FileName is the name of the configuration file searched for by Load
const FileName = ".nearacct.hcl"

// Config represents the nearacct configuration
type Config struct {
	Version   int              `hcl:"version,attr"`
	Networks  []*NetworkConfig `hcl:"network,block"`
	Account   *AccountConfig   `hcl:"account,block"`
	Selection *SelectionConfig `hcl:"selection,block"`
	Output    *OutputConfig    `hcl:"output,block"`
	Log       *LogConfig       `hcl:"log,block"`
	Rules     []*RuleConfig    `hcl:"rules,block"`

	// Internal: path to the loaded config file (empty if using defaults)
	configPath string
}

// NetworkConfig defines one network; blocks are probed in file order
type NetworkConfig struct {
	Name        string `hcl:"name,label"`
	RPCURL      string `hcl:"rpc_url,attr"`
	WalletURL   string `hcl:"wallet_url,optional"`
	ExplorerURL string `hcl:"explorer_url,optional"`
	Timeout     string `hcl:"timeout,optional"`
}

// AccountConfig defines naming policy and funding defaults
type AccountConfig struct {
	MinTopLevelLength     int    `hcl:"min_top_level_length,optional"`
	DefaultInitialBalance string `hcl:"default_initial_balance,optional"`
}

// SelectionConfig selects which networks are probed
type SelectionConfig struct {
	Include []string `hcl:"include,optional"`
	Exclude []string `hcl:"exclude,optional"`
}

// OutputConfig defines output settings
type OutputConfig struct {
	Format string `hcl:"format,optional"`
	Color  string `hcl:"color,optional"`
}

// LogConfig defines logging settings
type LogConfig struct {
	Level string `hcl:"level,optional"`
}

// RuleConfig defines per-rule configuration, keyed by rule name or ID
type RuleConfig struct {
	Name    string `hcl:"name,label"`
	Enabled *bool  `hcl:"enabled,optional"`
}

// ConfigPath returns the path to the loaded config file, or empty if using defaults
func (c *Config) ConfigPath() string {
	return c.configPath
}

// GetRuleConfig returns the configuration for a specific rule, or nil if not configured
func (c *Config) GetRuleConfig(name string) *RuleConfig {
	for _, rc := range c.Rules {
		if rc.Name == name {
			return rc
		}
	}
	return nil
}

// IsRuleEnabled returns whether a rule is enabled based on config
func (c *Config) IsRuleEnabled(name string) bool {
	rc := c.GetRuleConfig(name)
	if rc == nil || rc.Enabled == nil {
		return true // enabled by default
	}
	return *rc.Enabled
}

// NetworkList returns the configured networks in probe order
func (c *Config) NetworkList() []types.Network {
	result := make([]types.Network, 0, len(c.Networks))
	for _, n := range c.Networks {
		// Validate has already rejected bad durations
		timeout, _ := parseTimeout(n.Timeout)
		result = append(result, types.Network{
			Name:        n.Name,
			RPCURL:      n.RPCURL,
			WalletURL:   n.WalletURL,
			ExplorerURL: n.ExplorerURL,
			Timeout:     timeout,
		})
	}
	return result
}

// Filter returns the network selection filter
func (c *Config) Filter() *netfilter.Filter {
	if c.Selection == nil {
		return netfilter.DefaultFilter()
	}
	return netfilter.New(c.Selection.Include, c.Selection.Exclude)
}

// Load loads configuration from the specified path or searches for it.
// Search order: configPath (if provided), .nearacct.hcl in cwd, .nearacct.hcl in $HOME
func Load(configPath string) (*Config, error) {
	var path string

	if configPath != "" {
		path = configPath
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else {
		path = findConfigFile()
	}

	if path == "" {
		return Default(), nil
	}

	return loadFromFile(path)
}

// findConfigFile searches for .nearacct.hcl in standard locations
func findConfigFile() string {
	cwd, err := os.Getwd()
	if err == nil {
		cwdPath := filepath.Join(cwd, FileName)
		if _, err := os.Stat(cwdPath); err == nil {
			return cwdPath
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homePath := filepath.Join(home, FileName)
		if _, err := os.Stat(homePath); err == nil {
			return homePath
		}
	}

	return ""
}

// loadFromFile loads and parses a configuration file
func loadFromFile(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", formatDiagnostics(diags))
	}

	evalCtx, err := newEvalContext(filepath.Dir(path))
	if err != nil {
		return nil, err
	}

	var config Config
	decodeDiags := gohcl.DecodeBody(file.Body, evalCtx, &config)
	if decodeDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", formatDiagnostics(decodeDiags))
	}

	config.configPath = path

	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// formatDiagnostics formats HCL diagnostics into a readable error string
func formatDiagnostics(diags hcl.Diagnostics) string {
	if len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	for i, diag := range diags {
		if i > 0 {
			b.WriteString("; ")
		}
		if diag.Subject != nil {
			fmt.Fprintf(&b, "%s:%d: ", diag.Subject.Filename, diag.Subject.Start.Line)
		}
		b.WriteString(diag.Summary)
		if diag.Detail != "" {
			b.WriteString(": ")
			b.WriteString(diag.Detail)
		}
	}
	return b.String()
}

// applyDefaults fills in default values for missing optional config blocks
func applyDefaults(cfg *Config) {
	defaults := Default()

	if len(cfg.Networks) == 0 {
		cfg.Networks = defaults.Networks
	}

	if cfg.Account == nil {
		cfg.Account = defaults.Account
	} else {
		if cfg.Account.MinTopLevelLength == 0 {
			cfg.Account.MinTopLevelLength = defaults.Account.MinTopLevelLength
		}
		if cfg.Account.DefaultInitialBalance == "" {
			cfg.Account.DefaultInitialBalance = defaults.Account.DefaultInitialBalance
		}
	}

	if cfg.Selection == nil {
		cfg.Selection = defaults.Selection
	} else if len(cfg.Selection.Include) == 0 {
		cfg.Selection.Include = defaults.Selection.Include
	}

	if cfg.Output == nil {
		cfg.Output = defaults.Output
	} else {
		if cfg.Output.Format == "" {
			cfg.Output.Format = defaults.Output.Format
		}
		if cfg.Output.Color == "" {
			cfg.Output.Color = defaults.Output.Color
		}
	}

	if cfg.Log == nil {
		cfg.Log = defaults.Log
	} else if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
}

func parseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
