package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jokarl/nearacct/internal/output"
	"github.com/jokarl/nearacct/internal/types"
)

var checkCmd = &cobra.Command{
	Use:   "check <account-id>",
	Short: "Evaluate an account id against networks and naming policy",
	Long: `Run the naming policy once against a candidate account id, without
prompting. The first violation found is reported.

Exits with status 1 when the candidate would not be accepted as-is.

Example:
  nearacct check app.alice.near --network testnet`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Path to config file (default: .nearacct.hcl)")
	checkCmd.Flags().StringSliceVar(&networkFlag, "network", nil, "Networks to check (glob patterns, repeatable)")
	checkCmd.Flags().StringVar(&formatFlag, "format", "", "Output format: text, json, yaml")
	checkCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write output to file instead of stdout")
	checkCmd.Flags().StringVar(&colorFlag, "color", "", "Color mode: auto, always, never")
}

func runCheck(cmd *cobra.Command, args []string) error {
	id, err := types.ParseAccountID(args[0])
	if err != nil {
		return err
	}

	s, err := newSession()
	if err != nil {
		return err
	}

	report := s.check(commandContext(cmd), id)

	if err := s.render(func(r output.Renderer, w *os.File) error {
		return r.RenderCheck(w, report)
	}); err != nil {
		return err
	}

	// Set exit code based on result
	if report.Result == "FAIL" {
		os.Exit(1)
	}
	return nil
}

// check evaluates id once against the selected networks
func (s *session) check(ctx context.Context, id types.AccountID) *types.CheckReport {
	v := s.engine.Evaluate(ctx, id)
	if v != nil {
		s.logger.Debug("candidate rejected", "account_id", id, "rule", v.RuleID, "reason", output.Describe(v))
	}
	return types.NewCheckReport(id, s.prober.Names(), v)
}
