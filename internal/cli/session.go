package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jokarl/nearacct/internal/config"
	"github.com/jokarl/nearacct/internal/netfilter"
	"github.com/jokarl/nearacct/internal/output"
	"github.com/jokarl/nearacct/internal/policy"
	"github.com/jokarl/nearacct/internal/rpc"
	"github.com/jokarl/nearacct/internal/types"
)

// Flags shared by the commands that evaluate candidates
var (
	configFlag  string
	networkFlag []string
	formatFlag  string
	outputFlag  string
	colorFlag   string
)

// session bundles what a command needs to evaluate candidates
type session struct {
	cfg    *config.Config
	logger hclog.Logger
	prober *policy.Prober
	engine *policy.Engine
}

func newSession() (*session, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := newLogger(cfg)
	if path := cfg.ConfigPath(); path != "" {
		logger.Debug("loaded config", "path", path)
	}

	networks, err := selectNetworks(cfg)
	if err != nil {
		return nil, err
	}
	if len(networks) == 0 {
		return nil, fmt.Errorf("no networks selected")
	}

	registries := make([]policy.NetworkRegistry, 0, len(networks))
	for _, n := range networks {
		registries = append(registries, rpc.NewClient(n, logger.Named("rpc")))
	}
	prober := policy.NewProber(registries, logger.Named("prober"))

	engine := policy.NewDefaultEngine(prober, cfg.Account.MinTopLevelLength, logger.Named("policy"))
	for _, rc := range cfg.Rules {
		if cfg.IsRuleEnabled(rc.Name) {
			engine.EnableRule(rc.Name)
			continue
		}
		engine.DisableRule(rc.Name)
		logger.Debug("rule disabled by config", "rule", rc.Name)
	}
	logger.Debug("naming policy ready",
		"networks", prober.Names(),
		"min_top_level_length", engine.MinTopLevelLength())

	return &session{
		cfg:    cfg,
		logger: logger,
		prober: prober,
		engine: engine,
	}, nil
}

// selectNetworks applies --network patterns, or the config selection block
func selectNetworks(cfg *config.Config) ([]types.Network, error) {
	filter := cfg.Filter()
	if len(networkFlag) > 0 {
		filter = netfilter.New(networkFlag, nil)
		if err := filter.Validate(); err != nil {
			return nil, fmt.Errorf("invalid --network: %w", err)
		}
	}
	return filter.Select(cfg.NetworkList())
}

// format returns the --format value, falling back to the config
func (s *session) format() (output.Format, error) {
	f := formatFlag
	if f == "" {
		f = s.cfg.Output.Format
	}
	if !output.IsValidFormat(f) {
		return "", fmt.Errorf("invalid --format %q: must be one of %v", f, output.ValidFormats())
	}
	return output.Format(f), nil
}

func (s *session) colorMode() string {
	if colorFlag != "" {
		return colorFlag
	}
	return s.cfg.Output.Color
}

// render writes the result to --output or stdout
func (s *session) render(fn func(output.Renderer, *os.File) error) error {
	format, err := s.format()
	if err != nil {
		return err
	}

	var writer *os.File
	if outputFlag != "" {
		f, err := os.Create(outputFlag)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		writer = f
	} else {
		writer = os.Stdout
	}

	renderer := output.NewRenderer(format, shouldUseColor(s.colorMode(), writer))
	if err := fn(renderer, writer); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	return nil
}

// commandContext returns the command's context, or Background when the
// command was not started through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}

func shouldUseColor(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // auto
		if f == nil {
			return false
		}
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
}
