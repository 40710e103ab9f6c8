package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ruleport/ruleport/internal/dialect"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "List the rule dialects present in a project",
	Long: `Probe the project for rule files of every supported dialect and list
what was found, ordered by rule count. Only the first existing location
of each dialect is scanned, so a dialect's primary directory shadows
its legacy single-file form.`,
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().String("root", "", "Project root to scan (default: current directory)")
}

func runDetect(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	root, err := resolveRoot(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	results, err := deps.Detector.Detect(root)
	if err != nil {
		return fmt.Errorf("detect rules: %w", err)
	}
	if len(results) == 0 {
		_, _ = fmt.Fprintln(out, "No rule files found.")
		return nil
	}

	for _, res := range results {
		profile, ok := dialect.Get(dialect.ID(res.Dialect))
		if !ok {
			continue
		}
		word := "rules"
		if res.RuleCount() == 1 {
			word = "rule"
		}
		count := fmt.Sprintf("%-9s", fmt.Sprintf("%d %s", res.RuleCount(), word))
		_, _ = fmt.Fprintf(out, "%s %s %s %s\n",
			symSuccess(),
			cliPrimary.Render(fmt.Sprintf("%-16s", profile.Name())),
			count,
			cliMuted.Render(res.Location))
	}
	return nil
}
