package dialect

import (
	"github.com/ruleport/ruleport/pkg/models"
)

// ID identifies a supported rule dialect.
type ID string

const (
	// Cursor reads .mdc files with description/globs/alwaysApply frontmatter.
	Cursor ID = "cursor"

	// Windsurf reads .md files keyed by a trigger frontmatter field.
	Windsurf ID = "windsurf"

	// Copilot reads .instructions.md files with an applyTo glob field.
	Copilot ID = "copilot"

	// Kiro reads steering files keyed by an inclusion frontmatter field.
	Kiro ID = "kiro"

	// Augment reads rule files keyed by a type frontmatter field.
	Augment ID = "augment"

	// Cline reads plain markdown rules without frontmatter.
	Cline ID = "cline"

	// Roo reads plain markdown rules without frontmatter.
	Roo ID = "roo"

	// Claude appends rules to the CLAUDE.md narrative memory file.
	Claude ID = "claude"

	// Agents shares one AGENTS.md file between rules using named sections.
	Agents ID = "agents"
)

// String returns the string representation of the ID.
func (id ID) String() string {
	return string(id)
}

// IsValid checks whether the ID is one of the registered dialects.
func (id ID) IsValid() bool {
	_, ok := registry[id]
	return ok
}

// Layout describes how a dialect stores rules on disk.
type Layout string

const (
	// LayoutFilePerRule keeps each rule in its own file inside a rules
	// directory.
	LayoutFilePerRule Layout = "file-per-rule"

	// LayoutMultiplex keeps every rule in one shared file, separated by
	// named section delimiters.
	LayoutMultiplex Layout = "multiplex"

	// LayoutNarrative keeps rules as appended sections of a single
	// free-form document.
	LayoutNarrative Layout = "narrative"
)

// String returns the string representation of the Layout.
func (l Layout) String() string {
	return string(l)
}

// Profile describes one dialect: where its rules live, how rule files are
// shaped, and which activation types the format expresses natively.
// Profiles are static data; all fields are read-only after package init.
type Profile struct {
	// ID is the unique registry key.
	ID ID

	// DisplayNames are the user-facing names, preferred name first.
	// Resolve accepts any of them, case-insensitively.
	DisplayNames []string

	// Extension is the file suffix of rule files for file-per-rule
	// layouts. Matched as a suffix, so multi-dot extensions such as
	// ".instructions.md" work.
	Extension string

	// Primary lists current rule locations relative to the project root,
	// in probe order.
	Primary []string

	// Legacy lists deprecated locations probed after the primary ones.
	Legacy []string

	// Layout selects the on-disk arrangement.
	Layout Layout

	// Frontmatter reports whether rule files begin with a YAML
	// frontmatter block.
	Frontmatter bool

	// Activations lists the activation types the dialect encodes without
	// degradation. Every dialect supports at least ActivationAlways.
	Activations []models.ActivationType

	// MaxRuleChars is the advisory per-rule size limit. Zero means
	// unlimited. Violations are reported, never enforced.
	MaxRuleChars int

	// MaxTotalChars is the advisory cumulative size limit across all
	// rules. Zero means unlimited.
	MaxTotalChars int
}

// Name returns the preferred display name.
func (p Profile) Name() string {
	if len(p.DisplayNames) == 0 {
		return string(p.ID)
	}
	return p.DisplayNames[0]
}

// Supports reports whether the dialect encodes the activation type
// natively. Unsupported types degrade to the fallback on serialization.
func (p Profile) Supports(act models.ActivationType) bool {
	for _, a := range p.Activations {
		if a == act {
			return true
		}
	}
	return false
}
