package models

// ActivationType defines when an assistant should load a rule.
type ActivationType string

const (
	// ActivationAlways marks rules injected into every session.
	ActivationAlways ActivationType = "always"

	// ActivationPattern marks rules scoped to files matching glob patterns.
	ActivationPattern ActivationType = "pattern-matched"

	// ActivationManual marks rules loaded only on explicit user request.
	ActivationManual ActivationType = "manual"

	// ActivationContext marks rules the assistant loads at its own
	// discretion, guided by the rule description.
	ActivationContext ActivationType = "context-decided"
)

// ValidActivationTypes returns all valid activation type values.
func ValidActivationTypes() []ActivationType {
	return []ActivationType{
		ActivationAlways,
		ActivationPattern,
		ActivationManual,
		ActivationContext,
	}
}

// IsValid checks if the activation type is a valid value.
func (a ActivationType) IsValid() bool {
	switch a {
	case ActivationAlways, ActivationPattern, ActivationManual, ActivationContext:
		return true
	}
	return false
}

// String returns the canonical string form of the activation type.
func (a ActivationType) String() string {
	return string(a)
}

// Rule is the dialect-neutral representation of a single rule document.
// Parsers produce it, serializers consume it; nothing in between mutates it.
type Rule struct {
	// Name identifies the rule. Derived from the multiplex section name,
	// the source file stem, or a placeholder, in that order.
	Name string `yaml:"name" json:"name"`

	// Description is an optional one-line summary. Taken from frontmatter
	// when present, otherwise from the first markdown heading.
	Description string `yaml:"description" json:"description"`

	// Body is the rule text with frontmatter removed and surrounding
	// blank lines trimmed.
	Body string `yaml:"body" json:"body"`

	// Activation states when the rule applies.
	Activation ActivationType `yaml:"activation" json:"activation"`

	// Patterns holds glob patterns, in source order, for pattern-matched
	// rules. Empty for other activation types.
	Patterns []string `yaml:"patterns,omitempty" json:"patterns,omitempty"`

	// SourceDialect records the dialect id the rule was parsed from.
	SourceDialect string `yaml:"source_dialect" json:"source_dialect"`

	// Metadata preserves dialect-specific frontmatter keys that have no
	// canonical field, so native re-serialization can restore them.
	Metadata map[string]any `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}
