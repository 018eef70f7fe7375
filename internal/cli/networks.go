package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jokarl/nearacct/internal/config"
)

var networksCmd = &cobra.Command{
	Use:   "networks",
	Short: "List configured networks",
	Long: `List the configured networks in the order they are checked, and whether
the current selection (config selection block or --network) includes them.`,
	Args: cobra.NoArgs,
	RunE: runNetworks,
}

func init() {
	rootCmd.AddCommand(networksCmd)

	networksCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Path to config file (default: .nearacct.hcl)")
	networksCmd.Flags().StringSliceVar(&networkFlag, "network", nil, "Networks to check (glob patterns, repeatable)")
}

func runNetworks(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return listNetworks(os.Stdout, cfg)
}

func listNetworks(w io.Writer, cfg *config.Config) error {
	selected, err := selectNetworks(cfg)
	if err != nil {
		return err
	}
	inSelection := make(map[string]bool, len(selected))
	for _, n := range selected {
		inSelection[n.Name] = true
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSELECTED\tRPC URL\tTIMEOUT")
	for _, n := range cfg.NetworkList() {
		mark := "no"
		if inSelection[n.Name] {
			mark = "yes"
		}
		timeout := "default"
		if n.Timeout > 0 {
			timeout = n.Timeout.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", n.Name, mark, n.RPCURL, timeout)
	}
	return tw.Flush()
}
