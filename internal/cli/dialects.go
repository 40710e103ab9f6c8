package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ruleport/ruleport/internal/dialect"
)

var dialectsCmd = &cobra.Command{
	Use:   "dialects",
	Short: "List the supported rule dialects",
	Long: `List every dialect ruleport can read and write, with the location its
rules live in and the activation types its format expresses without
degradation.`,
	RunE: runDialects,
}

func init() {
	rootCmd.AddCommand(dialectsCmd)
}

func runDialects(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	for _, profile := range dialect.All() {
		acts := make([]string, len(profile.Activations))
		for i, act := range profile.Activations {
			acts[i] = string(act)
		}
		_, _ = fmt.Fprintf(out, "%s %-24s %s\n",
			cliPrimary.Render(fmt.Sprintf("%-16s", profile.Name())),
			profile.PrimaryLocation(""),
			cliMuted.Render(strings.Join(acts, ", ")))
	}
	return nil
}
