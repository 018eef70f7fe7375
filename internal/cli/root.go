package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jokarl/nearacct/internal/config"
)

var (
	versionStr string
	commitStr  string
	dateStr    string
)

// Global flags
var logLevelFlag string

// logEnvVar overrides the configured log level when --log-level is not set
const logEnvVar = "NEARACCT_LOG"

// Prompts are read from promptIn and written to promptOut so stdout only
// carries rendered results.
var (
	promptIn  io.Reader = os.Stdin
	promptOut io.Writer = os.Stderr
	logOutput io.Writer = os.Stderr
)

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	versionStr = version
	commitStr = commit
	dateStr = date
}

var rootCmd = &cobra.Command{
	Use:   "nearacct",
	Short: "NEAR account id resolver",
	Long: `nearacct walks you through choosing a new NEAR account id and its
initial balance before a create-account transaction is built.

Candidates are checked against every configured network, and against the
naming policy for top-level names and sub-accounts.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logLevelFlag != "" && hclog.LevelFromString(logLevelFlag) == hclog.NoLevel {
			return fmt.Errorf("invalid --log-level %q: must be one of trace, debug, info, warn, error", logLevelFlag)
		}
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: trace, debug, info, warn, error (default from config)")
}

// newLogger builds the root logger. The level comes from --log-level, then
// NEARACCT_LOG, then the config file, then warn.
func newLogger(cfg *config.Config) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "nearacct",
		Level:  resolveLogLevel(cfg),
		Output: logOutput,
	})
}

func resolveLogLevel(cfg *config.Config) hclog.Level {
	candidates := []string{logLevelFlag, os.Getenv(logEnvVar)}
	if cfg != nil && cfg.Log != nil {
		candidates = append(candidates, cfg.Log.Level)
	}
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if level := hclog.LevelFromString(strings.TrimSpace(c)); level != hclog.NoLevel {
			return level
		}
	}
	return hclog.Warn
}
