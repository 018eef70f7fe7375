package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jokarl/nearacct/internal/policy"
)

var explainCmd = &cobra.Command{
	Use:   "explain <rule>",
	Short: "Show rule documentation",
	Long: `Show detailed documentation for a naming policy rule, by ID or name:
- Rule ID and name
- Violation kind
- Description
- Example
- Remediation guidance

Example:
  nearacct explain NP001
  nearacct explain parent-missing`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	doc := policy.GetDocumentation(args[0])
	if doc == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown rule: %s\n", args[0])
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Available rules:")
		for _, r := range policy.DefaultRegistry.All() {
			fmt.Fprintf(os.Stderr, "  %s  %s\n", r.ID(), r.Name())
		}
		os.Exit(2)
	}

	fmt.Printf("%s: %s\n", doc.ID, doc.Name)
	fmt.Printf("Kind: %s\n", doc.Kind)
	fmt.Println()
	fmt.Println(doc.Description)
	fmt.Println()

	if doc.Example != "" {
		fmt.Println("Example:")
		fmt.Println(indent(doc.Example, "  "))
		fmt.Println()
	}

	if doc.Remediation != "" {
		fmt.Println("Remediation:")
		fmt.Println(indent(doc.Remediation, "  "))
	}

	return nil
}

// indent adds a prefix to each line of text
func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
