package convert_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ruleport/ruleport/internal/convert"
	"github.com/ruleport/ruleport/pkg/models"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func detect(t *testing.T, root string) []models.DetectionResult {
	t.Helper()
	results, err := convert.NewDetector(nil).Detect(root)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	return results
}

func TestDetectCursorRule(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".cursor", "rules", "typescript.mdc"),
		"---\ndescription: TypeScript conventions\nglobs:\nalwaysApply: true\n---\n\nUse strict mode.\n")

	results := detect(t, root)
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}

	got := results[0]
	if got.Dialect != "cursor" {
		t.Errorf("Dialect = %q, want %q", got.Dialect, "cursor")
	}
	if got.Location != ".cursor/rules" {
		t.Errorf("Location = %q, want %q", got.Location, ".cursor/rules")
	}
	if got.RuleCount() != 1 {
		t.Fatalf("RuleCount() = %d, want 1", got.RuleCount())
	}

	rule := got.Rules[0]
	if rule.Name != "typescript" {
		t.Errorf("Name = %q, want %q", rule.Name, "typescript")
	}
	if rule.Activation != models.ActivationAlways {
		t.Errorf("Activation = %q, want %q", rule.Activation, models.ActivationAlways)
	}
	if rule.Body != "Use strict mode." {
		t.Errorf("Body = %q, want %q", rule.Body, "Use strict mode.")
	}
	if rule.Description != "TypeScript conventions" {
		t.Errorf("Description = %q, want %q", rule.Description, "TypeScript conventions")
	}
}

func TestDetectEmptyRoot(t *testing.T) {
	t.Parallel()

	results := detect(t, t.TempDir())
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0 for an empty root", len(results))
	}
}

func TestDetectOrdersByRuleCount(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".roo", "rules", "a.md"), "Rule a.\n")
	writeFile(t, filepath.Join(root, ".roo", "rules", "b.md"), "Rule b.\n")
	writeFile(t, filepath.Join(root, ".windsurf", "rules", "one.md"),
		"---\ntrigger: always_on\n---\n\nOne.\n")
	writeFile(t, filepath.Join(root, ".kiro", "steering", "one.md"),
		"---\ninclusion: always\n---\n\nOne.\n")

	results := detect(t, root)
	want := []string{"roo", "windsurf", "kiro"}
	if len(results) != len(want) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(want))
	}
	for i, dialect := range want {
		if results[i].Dialect != dialect {
			t.Errorf("results[%d].Dialect = %q, want %q (counts first, registry ties)",
				i, results[i].Dialect, dialect)
		}
	}
}

func TestDetectLegacySingleFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".cursorrules"), "Always use tabs.\n")

	results := detect(t, root)
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	got := results[0]
	if got.Dialect != "cursor" || got.Location != ".cursorrules" {
		t.Errorf("got %s at %q, want cursor at %q", got.Dialect, got.Location, ".cursorrules")
	}
	rule := got.Rules[0]
	if rule.Name != "cursorrules" {
		t.Errorf("Name = %q, want %q", rule.Name, "cursorrules")
	}
	if rule.Activation != models.ActivationManual {
		t.Errorf("Activation = %q, want %q: no signals and no description",
			rule.Activation, models.ActivationManual)
	}
}

func TestDetectPrimaryShadowsLegacy(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".windsurf", "rules", "a.md"),
		"---\ntrigger: manual\n---\n\nFrom the directory.\n")
	writeFile(t, filepath.Join(root, ".windsurfrules"), "From the legacy file.\n")

	results := detect(t, root)
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if got := results[0]; got.Location != ".windsurf/rules" || got.RuleCount() != 1 {
		t.Errorf("got %d rules at %q, want 1 at %q: the first existing location decides",
			got.RuleCount(), got.Location, ".windsurf/rules")
	}
}

func TestDetectSkipsRulelessDialects(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".roo", "rules"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(root, ".clinerules", "style.md"), "Tabs.\n")

	results := detect(t, root)
	if len(results) != 1 || results[0].Dialect != "cline" {
		t.Errorf("results = %+v, want only cline: empty locations carry no rules", results)
	}
}

func TestDetectMultiplexSections(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "AGENTS.md"),
		"# Agent instructions\n\n---- typescript ----\n\nUse strict mode.\n\n---- testing ----\n\nTable tests.\n")

	results := detect(t, root)
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	got := results[0]
	if got.Dialect != "agents" || got.RuleCount() != 2 {
		t.Fatalf("got %s with %d rules, want agents with 2", got.Dialect, got.RuleCount())
	}
	if got.Rules[0].Name != "typescript" || got.Rules[1].Name != "testing" {
		t.Errorf("section names = %q, %q, want typescript, testing",
			got.Rules[0].Name, got.Rules[1].Name)
	}
}

func TestDetectClaudeNarrative(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "CLAUDE.md"), "# Project\n\nKeep functions small.\n")

	results := detect(t, root)
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	got := results[0]
	if got.Dialect != "claude" || got.RuleCount() != 1 {
		t.Fatalf("got %s with %d rules, want claude with 1", got.Dialect, got.RuleCount())
	}
	rule := got.Rules[0]
	if rule.Name != "CLAUDE" {
		t.Errorf("Name = %q, want %q", rule.Name, "CLAUDE")
	}
	if rule.Activation != models.ActivationAlways {
		t.Errorf("Activation = %q, want %q", rule.Activation, models.ActivationAlways)
	}
	if rule.Description != "Project" {
		t.Errorf("Description = %q, want the first heading %q", rule.Description, "Project")
	}
}
