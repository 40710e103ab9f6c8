package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/ruleport/ruleport/internal/dialect"
	"github.com/ruleport/ruleport/internal/render"
	"github.com/ruleport/ruleport/pkg/models"
)

var showCmd = &cobra.Command{
	Use:   "show DIALECT RULE",
	Short: "Render one detected rule as terminal markdown",
	Long: `Find a rule by name within a detected dialect and print its body as
rendered markdown. RULE matches the rule name or its slug.

Examples:
  ruleport show cursor typescript
  ruleport show agents "API conventions" --raw`,
	Args: cobra.ExactArgs(2),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().String("root", "", "Project root to scan (default: current directory)")
	showCmd.Flags().Bool("raw", false, "Print the body without markdown rendering")
}

func runShow(cmd *cobra.Command, args []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	root, err := resolveRoot(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	id, ok := dialect.Resolve(args[0])
	if !ok {
		return fmt.Errorf("unknown dialect %q", args[0])
	}

	cfg, err := deps.Config.Load(root)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	results, err := deps.Detector.Detect(root)
	if err != nil {
		return fmt.Errorf("detect rules: %w", err)
	}

	rule, found := findRule(results, id, args[1])
	if !found {
		return fmt.Errorf("rule %q not found for dialect %s", args[1], id)
	}

	_, _ = fmt.Fprintf(out, "%s %s\n",
		cliPrimary.Render(rule.Name), cliMuted.Render(activationSummary(rule)))
	if rule.Description != "" {
		_, _ = fmt.Fprintln(out, cliMuted.Render(rule.Description))
	}
	_, _ = fmt.Fprintln(out)

	if getBoolFlag(cmd, "raw") {
		_, _ = fmt.Fprintln(out, strings.TrimRight(rule.Body, "\n"))
		return nil
	}

	style := glamour.WithAutoStyle()
	if cfg.UI.NoColor {
		style = glamour.WithStandardStyle("notty")
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		// The unstyled body is still useful when rendering fails.
		_, _ = fmt.Fprintln(out, strings.TrimRight(rule.Body, "\n"))
		return nil
	}
	rendered, err := renderer.Render(rule.Body)
	if err != nil {
		_, _ = fmt.Fprintln(out, strings.TrimRight(rule.Body, "\n"))
		return nil
	}
	_, _ = fmt.Fprint(out, rendered)
	return nil
}

// findRule locates a rule by exact name or slug within the detection
// results for one dialect.
func findRule(results []models.DetectionResult, id dialect.ID, name string) (models.Rule, bool) {
	for _, res := range results {
		if res.Dialect != string(id) {
			continue
		}
		for _, rule := range res.Rules {
			if rule.Name == name || render.Slug(rule.Name) == render.Slug(name) {
				return rule, true
			}
		}
	}
	return models.Rule{}, false
}

func activationSummary(rule models.Rule) string {
	if rule.Activation == models.ActivationPattern && len(rule.Patterns) > 0 {
		return fmt.Sprintf("(%s: %s)", rule.Activation, strings.Join(rule.Patterns, ", "))
	}
	return fmt.Sprintf("(%s)", rule.Activation)
}
