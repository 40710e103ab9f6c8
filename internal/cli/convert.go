package cli

import (
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ruleport/ruleport/internal/config"
	"github.com/ruleport/ruleport/internal/defs"
	"github.com/ruleport/ruleport/internal/dialect"
	"github.com/ruleport/ruleport/internal/diff"
	"github.com/ruleport/ruleport/internal/ui"
	"github.com/ruleport/ruleport/pkg/models"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert rules from one dialect to others",
	Long: `Detect the rules of a source dialect, translate them into the
canonical form, and write them out for every target dialect.

The source and targets come from flags when given, from defaults in
.ruleport.yaml when present, and from interactive pickers otherwise.
Without a terminal the pickers are skipped and missing choices are an
error.

Examples:
  ruleport convert --from cursor --to agents,claude
  ruleport convert --to copilot --dry-run
  ruleport convert --root ./service --output ./service/converted`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().String("from", "", "Source dialect (default: detected, or defaults.source)")
	convertCmd.Flags().String("to", "", "Comma-separated target dialects (default: defaults.targets)")
	convertCmd.Flags().String("root", "", "Project root to scan (default: current directory)")
	convertCmd.Flags().String("output", "", "Output root for converted rules (default: project root)")
	convertCmd.Flags().Bool("dry-run", false, "Print the planned writes and diffs without touching any file")
	convertCmd.Flags().Bool("non-interactive", false, "Never prompt; fail when a choice cannot be derived")
}

func runConvert(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	root, err := resolveRoot(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	cfg, err := deps.Config.Load(root)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	theme := ui.NewTheme(cfg.UI.NoColor)
	hm := ui.NewHeadlessManager()
	if getBoolFlag(cmd, "non-interactive") || cfg.UI.NonInteractive {
		hm.ForceHeadless(true)
	}
	hm.SetDefaults(configDefaults(cfg))

	output := getStringFlag(cmd, "output")
	if output == "" {
		output = cfg.Defaults.Output
		if output != "" && !filepath.IsAbs(output) {
			output = filepath.Join(root, output)
		}
	}
	if output == "" {
		output = root
	}

	progress := ui.NewProgress(theme, hm, out)

	sp := progress.Spinner("Detecting rule dialects")
	results, err := deps.Detector.Detect(root)
	sp.Stop()
	if err != nil {
		return fmt.Errorf("detect rules: %w", err)
	}
	if len(results) == 0 {
		_, _ = fmt.Fprintln(out, "No rule files found.")
		return nil
	}

	source, err := chooseSource(cmd, hm, theme, results)
	if err != nil {
		return err
	}

	var rules []models.Rule
	for _, res := range results {
		if res.Dialect == string(source) {
			rules = res.Rules
			break
		}
	}
	if len(rules) == 0 {
		return fmt.Errorf("no rules found for source dialect %s", source)
	}

	targets, err := chooseTargets(cmd, hm, theme, source)
	if err != nil {
		return err
	}

	printRunHeader(out, rules, source, targets)

	if getBoolFlag(cmd, "dry-run") {
		return printPreview(out, rules, targets, output)
	}

	bar := progress.Start("Converting", len(targets))
	outcome := models.ConversionOutcome{Success: true}
	for _, target := range targets {
		bar.SetTitle("Converting to " + target)
		mergeOutcome(&outcome, deps.Converter.Convert(rules, []string{target}, output))
		bar.Increment(1)
	}
	bar.Done()

	printOutcome(out, outcome)
	if !outcome.Success {
		return fmt.Errorf("conversion finished with errors")
	}
	return nil
}

// configDefaults flattens the config defaults into the prompt-name map
// the headless manager answers from.
func configDefaults(cfg *config.Config) map[string]string {
	defaults := map[string]string{}
	if cfg.Defaults.Source != "" {
		defaults["source"] = cfg.Defaults.Source
	}
	if len(cfg.Defaults.Targets) > 0 {
		defaults["targets"] = strings.Join(cfg.Defaults.Targets, ",")
	}
	return defaults
}

// chooseSource resolves the source dialect: the --from flag, then an
// unambiguous detection, then the configured default, then the picker.
func chooseSource(cmd *cobra.Command, hm *ui.HeadlessManager, theme *ui.Theme, results []models.DetectionResult) (dialect.ID, error) {
	if from := getStringFlag(cmd, "from"); from != "" {
		id, ok := dialect.Resolve(from)
		if !ok {
			return "", fmt.Errorf("unknown source dialect %q", from)
		}
		return id, nil
	}

	if len(results) == 1 {
		return dialect.ID(results[0].Dialect), nil
	}

	if source, ok := hm.GetDefault("source"); ok {
		id, ok := dialect.Resolve(source)
		if !ok {
			return "", fmt.Errorf("unknown source dialect %q in %s", source, defs.ConfigYAML)
		}
		return id, nil
	}

	if hm.IsHeadless() {
		return "", fmt.Errorf("multiple dialects detected; pass --from or set defaults.source in %s", defs.ConfigYAML)
	}
	return pickSource(theme, results)
}

// chooseTargets resolves the target dialects: the --to flag, then the
// configured defaults, then the picker. Names are validated during
// conversion, so unknown entries surface in the outcome.
func chooseTargets(cmd *cobra.Command, hm *ui.HeadlessManager, theme *ui.Theme, source dialect.ID) ([]string, error) {
	if targets := splitTargets(getStringFlag(cmd, "to")); len(targets) > 0 {
		return targets, nil
	}

	if joined, ok := hm.GetDefault("targets"); ok {
		return splitTargets(joined), nil
	}

	if hm.IsHeadless() {
		return nil, fmt.Errorf("no targets given; pass --to or set defaults.targets in %s", defs.ConfigYAML)
	}
	return pickTargets(theme, source)
}

// splitTargets splits a comma-separated dialect list, dropping empty
// entries.
func splitTargets(raw string) []string {
	var targets []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			targets = append(targets, part)
		}
	}
	return targets
}

func printRunHeader(out io.Writer, rules []models.Rule, source dialect.ID, targets []string) {
	names := make([]string, len(targets))
	for i, target := range targets {
		names[i] = target
		if id, ok := dialect.Resolve(target); ok {
			profile, _ := dialect.Get(id)
			names[i] = profile.Name()
		}
	}
	word := "rules"
	if len(rules) == 1 {
		word = "rule"
	}
	sourceProfile, _ := dialect.Get(source)
	_, _ = fmt.Fprintf(out, "Converting %d %s: %s -> %s\n",
		len(rules), word, sourceProfile.Name(), strings.Join(names, ", "))
}

// printPreview plans every target without writing and prints the
// pending changes, with a unified diff for files that already exist.
func printPreview(out io.Writer, rules []models.Rule, targets []string, output string) error {
	plans, outcome := deps.Converter.Preview(rules, targets, output)

	for _, plan := range plans {
		for _, change := range plan.Changes {
			rel, err := filepath.Rel(plan.Root, change.Path)
			if err != nil {
				rel = change.Path
			}
			rel = filepath.ToSlash(rel)

			switch {
			case change.Before == change.After:
				_, _ = fmt.Fprintf(out, "%s %s %s\n",
					cliMuted.Render("unchanged"), cliPrimary.Render(string(plan.Target)), rel)
			case change.Before == "":
				_, _ = fmt.Fprintf(out, "%s %s %s\n",
					cliSuccess.Render("create"), cliPrimary.Render(string(plan.Target)), rel)
			default:
				_, _ = fmt.Fprintf(out, "%s %s %s\n",
					cliWarn.Render("update"), cliPrimary.Render(string(plan.Target)), rel)
				_, _ = fmt.Fprintln(out, diff.Unified(rel, change.Before, change.After))
			}
		}
	}

	printOutcome(out, outcome)
	_, _ = fmt.Fprintln(out, "Dry run: nothing was written.")
	return nil
}

// mergeOutcome folds one target's outcome into the accumulated run
// total.
func mergeOutcome(total *models.ConversionOutcome, part models.ConversionOutcome) {
	if !part.Success {
		total.Success = false
	}
	total.Converted += part.Converted
	total.Skipped += part.Skipped
	total.Errors = append(total.Errors, part.Errors...)
	total.Warnings = append(total.Warnings, part.Warnings...)
	for target, files := range part.Written {
		if total.Written == nil {
			total.Written = make(map[string][]string)
		}
		total.Written[target] = append(total.Written[target], files...)
	}
}

func printOutcome(out io.Writer, outcome models.ConversionOutcome) {
	for _, warning := range outcome.Warnings {
		_, _ = fmt.Fprintf(out, "%s %s\n", symWarning(), warning)
	}
	for _, msg := range outcome.Errors {
		_, _ = fmt.Fprintf(out, "%s %s\n", symError(), msg)
	}
	for _, target := range slices.Sorted(maps.Keys(outcome.Written)) {
		for _, file := range outcome.Written[target] {
			_, _ = fmt.Fprintf(out, "%s %s %s\n", symSuccess(), cliPrimary.Render(target), file)
		}
	}
	_, _ = fmt.Fprintf(out, "%d converted, %d skipped\n", outcome.Converted, outcome.Skipped)
}
