// Package render serializes canonical rules into each dialect's on-disk
// form. Serialization is two-phase: Plan computes every pending write in
// memory, Apply flushes them. Shared files (multiplex, narrative) are
// read once and rewritten once, so a conversion run never writes the
// same file twice.
package render

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ruleport/ruleport/internal/dialect"
	"github.com/ruleport/ruleport/pkg/models"
)

// Serializer renders canonical rules for a target dialect.
type Serializer interface {
	// Plan computes the file changes that write rules below outputRoot.
	// It reads existing shared files to merge them but writes nothing.
	// The only error is an unreadable shared target file.
	Plan(rules []models.Rule, profile dialect.Profile, outputRoot string) (Plan, error)

	// Apply writes every change in the plan, creating directories as
	// needed. Write failures are collected per change; Apply never
	// stops early.
	Apply(plan Plan) ApplyResult
}

// serializer is the concrete implementation of Serializer.
type serializer struct {
	logger *slog.Logger
}

// NewSerializer creates a Serializer.
func NewSerializer(logger *slog.Logger) Serializer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &serializer{logger: logger}
}

// Plan computes the file changes for one (rules, target) pair.
func (s *serializer) Plan(rules []models.Rule, profile dialect.Profile, outputRoot string) (Plan, error) {
	plan := Plan{Target: profile.ID, Root: outputRoot}
	if len(rules) == 0 {
		return plan, nil
	}

	prepared := make([]models.Rule, 0, len(rules))
	for _, r := range rules {
		adjusted, degraded := profile.Degrade(r)
		if degraded {
			plan.Warnings = append(plan.Warnings, fmt.Sprintf(
				"rule %q: %s cannot express %s activation, encoded as %s with a body hint",
				r.Name, profile.ID, r.Activation, dialect.Fallback()))
		}
		prepared = append(prepared, adjusted)
	}

	switch profile.Layout {
	case dialect.LayoutMultiplex:
		return s.planMultiplex(plan, prepared, profile)
	case dialect.LayoutNarrative:
		return s.planNarrative(plan, prepared, profile)
	default:
		return s.planFiles(plan, prepared, profile)
	}
}

// planFiles renders one file per rule below the dialect's primary
// location. When two rules slug to the same path the later one wins and
// the earlier one is counted as skipped.
func (s *serializer) planFiles(plan Plan, rules []models.Rule, profile dialect.Profile) (Plan, error) {
	dir := profile.PrimaryLocation(plan.Root)
	byPath := make(map[string]int, len(rules))
	total := 0

	for _, r := range rules {
		content := ruleFileContent(profile, r)
		path := filepath.Join(dir, Slug(r.Name)+profile.Extension)
		total += len(content)

		if profile.MaxRuleChars > 0 && len(content) > profile.MaxRuleChars {
			plan.Warnings = append(plan.Warnings, fmt.Sprintf(
				"rule %q: rendered size %d exceeds the %s per-rule limit of %d characters",
				r.Name, len(content), profile.ID, profile.MaxRuleChars))
		}

		change := FileChange{
			Path:   path,
			Before: readIfExists(path),
			After:  content,
			Rules:  []string{r.Name},
		}
		if i, exists := byPath[path]; exists {
			displaced := plan.Changes[i].Rules[0]
			plan.Warnings = append(plan.Warnings, fmt.Sprintf(
				"rule %q replaces %q: both resolve to %s", r.Name, displaced, filepath.Base(path)))
			plan.Changes[i] = change
			plan.Skipped++
			continue
		}
		byPath[path] = len(plan.Changes)
		plan.Changes = append(plan.Changes, change)
		plan.Converted++
	}

	if profile.MaxTotalChars > 0 && total > profile.MaxTotalChars {
		plan.Warnings = append(plan.Warnings, fmt.Sprintf(
			"total rendered size %d exceeds the %s limit of %d characters",
			total, profile.ID, profile.MaxTotalChars))
	}
	return plan, nil
}

// planMultiplex plans the single read-merge-write of a delimited shared
// rule file. Rules sharing a section name collapse into one section;
// the last body wins and the earlier rules count as skipped.
func (s *serializer) planMultiplex(plan Plan, rules []models.Rule, profile dialect.Profile) (Plan, error) {
	path := profile.PrimaryLocation(plan.Root)
	existing, err := readShared(path)
	if err != nil {
		return Plan{}, fmt.Errorf("read %s: %w", path, err)
	}

	names := make([]string, 0, len(rules))
	seen := make(map[string]bool, len(rules))
	for _, r := range rules {
		name := sectionName(r.Name)
		if seen[name] {
			plan.Warnings = append(plan.Warnings, fmt.Sprintf(
				"rule %q appears more than once, the last body wins", name))
			plan.Skipped++
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	plan.Changes = append(plan.Changes, FileChange{
		Path:   path,
		Before: existing,
		After:  mergeMultiplex(existing, rules),
		Rules:  names,
	})
	plan.Converted = len(rules) - plan.Skipped
	return plan, nil
}

// planNarrative plans the single append to a free-form memory file.
// Appending never collapses rules, so every rule converts.
func (s *serializer) planNarrative(plan Plan, rules []models.Rule, profile dialect.Profile) (Plan, error) {
	path := profile.PrimaryLocation(plan.Root)
	existing, err := readShared(path)
	if err != nil {
		return Plan{}, fmt.Errorf("read %s: %w", path, err)
	}

	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, sectionName(r.Name))
	}

	plan.Changes = append(plan.Changes, FileChange{
		Path:   path,
		Before: existing,
		After:  narrativeAppend(existing, rules),
		Rules:  names,
	})
	plan.Converted = len(rules)
	return plan, nil
}

// Apply writes every change in the plan.
func (s *serializer) Apply(plan Plan) ApplyResult {
	var res ApplyResult
	for _, change := range plan.Changes {
		rel := relPath(plan.Root, change.Path)
		if err := os.MkdirAll(filepath.Dir(change.Path), 0o755); err != nil {
			res.Errors = append(res.Errors, applyError(plan.Target, change, rel, err))
			res.FailedRules += len(change.Rules)
			continue
		}
		if err := os.WriteFile(change.Path, []byte(change.After), 0o644); err != nil {
			res.Errors = append(res.Errors, applyError(plan.Target, change, rel, err))
			res.FailedRules += len(change.Rules)
			continue
		}
		res.Written = append(res.Written, rel)
		s.logger.Debug("wrote rule file", "path", change.Path, "bytes", len(change.After))
	}
	return res
}

// ruleFileContent assembles a complete rule file: frontmatter block,
// blank separator, body, trailing newline.
func ruleFileContent(p dialect.Profile, r models.Rule) string {
	fm := renderFrontmatter(p, r)
	switch {
	case fm == "" && r.Body == "":
		return ""
	case fm == "":
		return r.Body + "\n"
	case r.Body == "":
		return fm
	default:
		return fm + "\n" + r.Body + "\n"
	}
}

// sectionName flattens a rule name onto one line so it survives a
// delimiter or heading position.
func sectionName(name string) string {
	flat := strings.ReplaceAll(strings.ReplaceAll(name, "\r", " "), "\n", " ")
	flat = strings.TrimSpace(flat)
	if flat == "" {
		return "rule"
	}
	return flat
}

// readIfExists returns a file's content, or "" when it cannot be read.
// Used only to capture the Before side of a change for previews.
func readIfExists(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

// readShared reads a shared target file. Absence is normal; any other
// failure aborts planning, since merging against unknown content would
// overwrite it.
func readShared(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}

func applyError(target dialect.ID, change FileChange, rel string, err error) string {
	quoted := make([]string, len(change.Rules))
	for i, name := range change.Rules {
		quoted[i] = fmt.Sprintf("%q", name)
	}
	return fmt.Sprintf("rule %s: write %s for %s: %v", strings.Join(quoted, ", "), rel, target, err)
}
