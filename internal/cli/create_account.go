package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jokarl/nearacct/internal/balance"
	"github.com/jokarl/nearacct/internal/output"
	"github.com/jokarl/nearacct/internal/prompt"
	"github.com/jokarl/nearacct/internal/resolve"
	"github.com/jokarl/nearacct/internal/types"
)

var (
	accountIDFlag      string
	initialBalanceFlag string
	checkModeFlag      string
)

var createAccountCmd = &cobra.Command{
	Use:   "create-account",
	Short: "Choose a new account id and its initial balance",
	Long: `Interactively resolve a new account id and the amount it is funded with.

The candidate is checked on every selected network. When it already exists,
or breaks the naming policy, you can enter a different name or keep it.
The accepted id and balance are printed for the next stage.

Example:
  nearacct create-account --account-id app.alice.near --initial-balance 1NEAR`,
	Args: cobra.NoArgs,
	RunE: runCreateAccount,
}

func init() {
	rootCmd.AddCommand(createAccountCmd)

	createAccountCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Path to config file (default: .nearacct.hcl)")
	createAccountCmd.Flags().StringVar(&accountIDFlag, "account-id", "", "Initial candidate (prompted when empty)")
	createAccountCmd.Flags().StringVar(&initialBalanceFlag, "initial-balance", "", "Initial balance, e.g. 10NEAR (prompted when empty)")
	createAccountCmd.Flags().StringVar(&checkModeFlag, "check", "ask", "Existence check: ask, always, never")
	createAccountCmd.Flags().StringSliceVar(&networkFlag, "network", nil, "Networks to check (glob patterns, repeatable)")
	createAccountCmd.Flags().StringVar(&formatFlag, "format", "", "Output format: text, json, yaml")
	createAccountCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write output to file instead of stdout")
	createAccountCmd.Flags().StringVar(&colorFlag, "color", "", "Color mode: auto, always, never")
}

func runCreateAccount(cmd *cobra.Command, args []string) error {
	gate, err := resolve.ParseGateMode(checkModeFlag)
	if err != nil {
		return fmt.Errorf("invalid --check value: %w", err)
	}

	var initial types.AccountID
	if accountIDFlag != "" {
		initial, err = types.ParseAccountID(accountIDFlag)
		if err != nil {
			return fmt.Errorf("invalid --account-id: %w", err)
		}
	}

	var presetBalance *balance.Balance
	if initialBalanceFlag != "" {
		b, err := balance.Parse(initialBalanceFlag)
		if err != nil {
			return fmt.Errorf("invalid --initial-balance: %w", err)
		}
		presetBalance = &b
	}

	s, err := newSession()
	if err != nil {
		return err
	}

	promptColor := false
	if f, ok := promptOut.(*os.File); ok {
		promptColor = shouldUseColor(s.colorMode(), f)
	}
	ui := prompt.NewTerminal(promptIn, promptOut, promptColor)

	resolver := resolve.New(s.engine, ui,
		resolve.WithGateMode(gate),
		resolve.WithLogger(s.logger.Named("resolve")),
	)

	res, err := resolver.Resolve(commandContext(cmd), initial)
	if err != nil {
		return err
	}

	account := &types.NewAccount{Resolution: res}
	if presetBalance != nil {
		account.InitialBalance = *presetBalance
	} else {
		account.InitialBalance, err = resolve.ReadInitialBalance(ui, s.cfg.Account.DefaultInitialBalance)
		if err != nil {
			return err
		}
	}

	s.logger.Info("account resolved",
		"account_id", res.AccountID,
		"attempts", res.Attempts,
		"existence_checked", res.ExistenceChecked,
		"initial_balance", account.InitialBalance)

	return s.render(func(r output.Renderer, w *os.File) error {
		return r.RenderAccount(w, account)
	})
}
