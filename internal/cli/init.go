package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jokarl/nearacct/internal/config"
)

var forceFlag bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create starter .nearacct.hcl configuration",
	Long: `Create a new .nearacct.hcl configuration file in the current directory
with the default networks and naming policy.

The generated configuration includes comments explaining each option.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite existing configuration file")
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := filepath.Join(".", config.FileName)

	if _, err := os.Stat(configPath); err == nil {
		if !forceFlag {
			return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
		}
	}

	content := config.DefaultConfigHCL()
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Printf("Created %s\n", configPath)
	return nil
}
