// Package parse turns scanned rule units into canonical rules. Parsing
// is layered: frontmatter split, YAML decode with a quirk-tolerant
// retry, activation resolution, description fallback, name derivation.
// Failures never abort a scan; they surface as warnings on the unit.
package parse

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ruleport/ruleport/internal/dialect"
	"github.com/ruleport/ruleport/internal/scan"
	"github.com/ruleport/ruleport/pkg/models"
)

// Parser converts rule units into canonical rules.
type Parser interface {
	// Parse converts one unit according to the dialect profile. A nil
	// rule means the unit holds nothing parseable (blank file). The
	// returned warnings are non-fatal and name the unit source.
	Parse(unit scan.Unit, profile dialect.Profile) (*models.Rule, []string)
}

// parser is the concrete implementation of Parser.
type parser struct {
	logger *slog.Logger
}

// NewParser creates a Parser.
func NewParser(logger *slog.Logger) Parser {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &parser{logger: logger}
}

// frontmatter is the union of every known dialect frontmatter field.
// Fields absent from a document keep their zero values; which fields are
// interpreted depends on the dialect.
type frontmatter struct {
	Description string      `yaml:"description"`
	Globs       patternList `yaml:"globs"`
	AlwaysApply bool        `yaml:"alwaysApply"`

	// Trigger is windsurf's activation keyword.
	Trigger string `yaml:"trigger"`

	// Glob is accepted as a legacy alias of globs.
	Glob patternList `yaml:"glob"`

	// FilesToApplyRule is accepted as a legacy cursor alias of globs.
	FilesToApplyRule patternList `yaml:"filesToApplyRule"`

	// ApplyTo is copilot's glob field.
	ApplyTo patternList `yaml:"applyTo"`

	// Inclusion and FileMatchPattern are kiro's steering fields.
	Inclusion        string      `yaml:"inclusion"`
	FileMatchPattern patternList `yaml:"fileMatchPattern"`

	// Type is augment's activation keyword.
	Type string `yaml:"type"`
}

// consumedKeys lists the frontmatter keys each dialect maps onto
// canonical fields. Everything else lands in Rule.Metadata.
var consumedKeys = map[dialect.ID][]string{
	dialect.Cursor:   {"description", "globs", "glob", "filesToApplyRule", "alwaysApply"},
	dialect.Windsurf: {"trigger", "description", "globs", "glob"},
	dialect.Copilot:  {"description", "applyTo"},
	dialect.Kiro:     {"inclusion", "fileMatchPattern"},
	dialect.Augment:  {"type", "description"},
}

// Parse converts one unit according to the dialect profile.
func (p *parser) Parse(unit scan.Unit, profile dialect.Profile) (*models.Rule, []string) {
	if strings.TrimSpace(unit.Raw) == "" && unit.Name == "" {
		p.logger.Debug("skipping blank unit", "source", unit.Source)
		return nil, nil
	}

	var warnings []string
	body := unit.Raw
	var fm frontmatter
	var extra map[string]any

	if profile.Frontmatter {
		if fmText, rest, found := splitFrontmatter(unit.Raw); found {
			var err error
			fm, extra, err = decodeFrontmatter(fmText)
			if err != nil {
				// Cursor writes globs unquoted; a leading * reads as a
				// YAML alias and fails the strict parse. Quote the glob
				// values and try once more before giving up.
				fm2, extra2, retryErr := decodeFrontmatter(sanitizeFrontmatter(fmText))
				if retryErr == nil {
					fm, extra = fm2, extra2
				} else {
					warnings = append(warnings, fmt.Sprintf("%s: frontmatter ignored: %v", unit.Source, err))
					fm = frontmatter{}
					extra = nil
				}
			}
			body = rest
		}
	}
	body = strings.Trim(body, "\r\n")

	act, patterns, actWarnings := resolveActivation(profile, fm)
	for _, w := range actWarnings {
		warnings = append(warnings, fmt.Sprintf("%s: %s", unit.Source, w))
	}

	desc := dialectDescription(profile, fm)
	if desc == "" {
		desc = firstHeading(body)
	}

	rule := &models.Rule{
		Name:          deriveName(unit, profile),
		Description:   desc,
		Body:          body,
		Activation:    act,
		Patterns:      patterns,
		SourceDialect: string(profile.ID),
		Metadata:      metadataFrom(profile.ID, extra),
	}
	p.logger.Debug("parsed rule",
		"source", unit.Source,
		"name", rule.Name,
		"activation", rule.Activation,
	)
	return rule, warnings
}

// resolveActivation applies the activation signal priority: explicit
// trigger word, then glob presence, then the always flag, then the
// dialect default.
func resolveActivation(profile dialect.Profile, fm frontmatter) (models.ActivationType, []string, []string) {
	var warns []string
	patterns := dialectPatterns(profile, fm)

	if word := triggerWordFor(profile, fm); word != "" {
		if act, ok := dialect.ActivationFromTrigger(profile.ID, word); ok {
			if act != models.ActivationPattern {
				return act, nil, warns
			}
			if len(patterns) == 0 {
				warns = append(warns, fmt.Sprintf("trigger %q without file patterns", word))
			}
			return act, patterns, warns
		}
		warns = append(warns, fmt.Sprintf("unknown trigger %q, falling back to other signals", word))
	}

	if len(patterns) > 0 {
		// Copilot encodes always-activation as a match-everything glob.
		if profile.ID == dialect.Copilot && len(patterns) == 1 && patterns[0] == "**" {
			return models.ActivationAlways, nil, warns
		}
		return models.ActivationPattern, patterns, warns
	}

	if profile.ID == dialect.Cursor && fm.AlwaysApply {
		return models.ActivationAlways, nil, warns
	}

	return defaultActivation(profile, fm), nil, warns
}

// triggerWordFor returns the dialect's activation keyword, if any.
func triggerWordFor(profile dialect.Profile, fm frontmatter) string {
	switch profile.ID {
	case dialect.Windsurf:
		return fm.Trigger
	case dialect.Kiro:
		return fm.Inclusion
	case dialect.Augment:
		return fm.Type
	}
	return ""
}

// dialectPatterns picks the glob patterns from the fields the dialect
// actually defines, first non-empty key wins.
func dialectPatterns(profile dialect.Profile, fm frontmatter) []string {
	switch profile.ID {
	case dialect.Cursor:
		return firstNonEmpty(fm.Globs, fm.Glob, fm.FilesToApplyRule)
	case dialect.Windsurf:
		return firstNonEmpty(fm.Globs, fm.Glob)
	case dialect.Copilot:
		return fm.ApplyTo
	case dialect.Kiro:
		return fm.FileMatchPattern
	}
	return nil
}

// dialectDescription returns the frontmatter description for dialects
// that define the field. Kiro has none; its description comes from the
// body heading.
func dialectDescription(profile dialect.Profile, fm frontmatter) string {
	switch profile.ID {
	case dialect.Cursor, dialect.Windsurf, dialect.Copilot, dialect.Augment:
		return strings.TrimSpace(fm.Description)
	}
	return ""
}

// defaultActivation is the no-signal activation. Cursor distinguishes
// agent-requested rules (description present, nothing else) from manual
// ones; every other dialect defaults to always.
func defaultActivation(profile dialect.Profile, fm frontmatter) models.ActivationType {
	if profile.ID == dialect.Cursor {
		if strings.TrimSpace(fm.Description) != "" {
			return models.ActivationContext
		}
		return models.ActivationManual
	}
	return models.ActivationAlways
}

// deriveName picks the rule name: the multiplex section name when
// present, otherwise the source file stem.
func deriveName(unit scan.Unit, profile dialect.Profile) string {
	if unit.Name != "" {
		return unit.Name
	}
	base := filepath.Base(unit.Source)
	stem := strings.TrimPrefix(base, ".")
	if trimmed := strings.TrimSuffix(stem, profile.Extension); trimmed != stem && trimmed != "" {
		stem = trimmed
	} else if ext := filepath.Ext(stem); ext != "" && ext != stem {
		stem = strings.TrimSuffix(stem, ext)
	}
	if stem == "" {
		return "rule"
	}
	return stem
}

// metadataFrom keeps the frontmatter keys the dialect does not map onto
// canonical fields, so same-dialect serialization can restore them.
func metadataFrom(id dialect.ID, extra map[string]any) map[string]any {
	if len(extra) == 0 {
		return nil
	}
	for _, key := range consumedKeys[id] {
		delete(extra, key)
	}
	if len(extra) == 0 {
		return nil
	}
	return extra
}

func firstNonEmpty(lists ...patternList) []string {
	for _, l := range lists {
		if len(l) > 0 {
			return []string(l)
		}
	}
	return nil
}
