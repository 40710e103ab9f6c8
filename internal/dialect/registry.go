package dialect

import (
	"strings"

	"github.com/ruleport/ruleport/internal/defs"
	"github.com/ruleport/ruleport/pkg/models"
)

// orderedIDs fixes the registry iteration order. Detection results with
// equal rule counts keep this order.
var orderedIDs = []ID{
	Cursor,
	Windsurf,
	Copilot,
	Kiro,
	Augment,
	Cline,
	Roo,
	Claude,
	Agents,
}

// registry is the closed set of supported dialects. It is never mutated
// after package init; adding a dialect means adding an entry here and a
// matching parser and serializer case.
var registry = map[ID]Profile{
	Cursor: {
		ID:           Cursor,
		DisplayNames: []string{"Cursor"},
		Extension:    ".mdc",
		Primary:      []string{defs.CursorRulesDir},
		Legacy:       []string{defs.CursorRulesFile},
		Layout:       LayoutFilePerRule,
		Frontmatter:  true,
		Activations: []models.ActivationType{
			models.ActivationAlways,
			models.ActivationPattern,
			models.ActivationManual,
			models.ActivationContext,
		},
	},
	Windsurf: {
		ID:           Windsurf,
		DisplayNames: []string{"Windsurf", "Codeium"},
		Extension:    ".md",
		Primary:      []string{defs.WindsurfRulesDir},
		Legacy:       []string{defs.WindsurfRulesFile},
		Layout:       LayoutFilePerRule,
		Frontmatter:  true,
		Activations: []models.ActivationType{
			models.ActivationAlways,
			models.ActivationPattern,
			models.ActivationManual,
			models.ActivationContext,
		},
		MaxRuleChars:  6000,
		MaxTotalChars: 12000,
	},
	Copilot: {
		ID:           Copilot,
		DisplayNames: []string{"GitHub Copilot", "Copilot"},
		Extension:    ".instructions.md",
		Primary:      []string{defs.CopilotRulesDir},
		Legacy:       []string{".github/" + defs.CopilotInstructionsMD},
		Layout:       LayoutFilePerRule,
		Frontmatter:  true,
		Activations: []models.ActivationType{
			models.ActivationAlways,
			models.ActivationPattern,
		},
	},
	Kiro: {
		ID:           Kiro,
		DisplayNames: []string{"Kiro"},
		Extension:    ".md",
		Primary:      []string{defs.KiroSteeringDir},
		Layout:       LayoutFilePerRule,
		Frontmatter:  true,
		Activations: []models.ActivationType{
			models.ActivationAlways,
			models.ActivationPattern,
			models.ActivationManual,
		},
	},
	Augment: {
		ID:           Augment,
		DisplayNames: []string{"Augment Code", "Augment"},
		Extension:    ".md",
		Primary:      []string{defs.AugmentRulesDir},
		Legacy:       []string{defs.AugmentRulesFile},
		Layout:       LayoutFilePerRule,
		Frontmatter:  true,
		Activations: []models.ActivationType{
			models.ActivationAlways,
			models.ActivationManual,
			models.ActivationContext,
		},
	},
	Cline: {
		ID:           Cline,
		DisplayNames: []string{"Cline", "Claude Dev"},
		Extension:    ".md",
		// .clinerules is a directory in current setups and a single file
		// in older ones; the scanner handles both behind one location.
		Primary:     []string{defs.ClineRulesDir},
		Layout:      LayoutFilePerRule,
		Activations: []models.ActivationType{models.ActivationAlways},
	},
	Roo: {
		ID:           Roo,
		DisplayNames: []string{"Roo Code", "Roo"},
		Extension:    ".md",
		Primary:      []string{defs.RooRulesDir},
		Legacy:       []string{defs.RooRulesFile},
		Layout:       LayoutFilePerRule,
		Activations:  []models.ActivationType{models.ActivationAlways},
	},
	Claude: {
		ID:           Claude,
		DisplayNames: []string{"Claude Code", "Claude"},
		Extension:    ".md",
		Primary:      []string{defs.ClaudeMD},
		Legacy:       []string{".claude/" + defs.ClaudeMD},
		Layout:       LayoutNarrative,
		Activations:  []models.ActivationType{models.ActivationAlways},
	},
	Agents: {
		ID:           Agents,
		DisplayNames: []string{"Codex", "Codex CLI", "AGENTS.md"},
		Extension:    ".md",
		Primary:      []string{defs.AgentsMD},
		Layout:       LayoutMultiplex,
		Activations:  []models.ActivationType{models.ActivationAlways},
	},
}

// nameIndex maps lowercased ids and display names to dialect ids.
var nameIndex = map[string]ID{}

func init() {
	for id, p := range registry {
		nameIndex[strings.ToLower(string(id))] = id
		for _, name := range p.DisplayNames {
			nameIndex[strings.ToLower(name)] = id
		}
	}
}

// All returns every registered profile in registry order.
func All() []Profile {
	out := make([]Profile, 0, len(orderedIDs))
	for _, id := range orderedIDs {
		out = append(out, registry[id])
	}
	return out
}

// IDs returns the registered dialect ids in registry order.
func IDs() []ID {
	out := make([]ID, len(orderedIDs))
	copy(out, orderedIDs)
	return out
}

// Get returns the profile registered for the id.
func Get(id ID) (Profile, bool) {
	p, ok := registry[id]
	return p, ok
}

// Resolve maps a user-facing name to a dialect id. It accepts registry
// ids and display names, case-insensitively. The boolean is false when
// the name matches no registered dialect.
func Resolve(name string) (ID, bool) {
	id, ok := nameIndex[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}

// DisplayNames returns the display names registered for the id, preferred
// name first. Unknown ids yield nil.
func DisplayNames(id ID) []string {
	p, ok := registry[id]
	if !ok {
		return nil
	}
	out := make([]string, len(p.DisplayNames))
	copy(out, p.DisplayNames)
	return out
}

// Order returns the registry position of the id, for stable tie-breaking
// in detection output. Unknown ids sort last.
func Order(id ID) int {
	for i, known := range orderedIDs {
		if known == id {
			return i
		}
	}
	return len(orderedIDs)
}
