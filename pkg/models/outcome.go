package models

// DetectionResult reports the rules discovered for a single dialect.
type DetectionResult struct {
	// Dialect is the registry id of the detected dialect.
	Dialect string `yaml:"dialect" json:"dialect"`

	// Location is the path, relative to the scanned root, where the rules
	// were found. Only the first existing location of a dialect is scanned.
	Location string `yaml:"location" json:"location"`

	// Rules holds the parsed rules in scan order.
	Rules []Rule `yaml:"rules" json:"rules"`
}

// RuleCount returns the number of rules discovered.
func (d DetectionResult) RuleCount() int {
	return len(d.Rules)
}

// ConversionOutcome aggregates the results of one conversion run.
type ConversionOutcome struct {
	// Success is false only when at least one rule failed to serialize.
	// Unknown targets and degradations are recorded without clearing it.
	Success bool `json:"success"`

	// Converted counts (rule, target) pairs that serialized.
	Converted int `json:"converted"`

	// Skipped counts (rule, target) pairs that did not serialize, whether
	// from a serialization failure or an unresolvable target name.
	Skipped int `json:"skipped"`

	// Errors holds human-readable error strings, each naming the affected
	// rule and dialect. Conversion continues past every entry.
	Errors []string `json:"errors,omitempty"`

	// Warnings holds non-fatal notices such as size-limit violations and
	// activation degradations.
	Warnings []string `json:"warnings,omitempty"`

	// Written maps target dialect ids to the files created or updated,
	// relative to the output root.
	Written map[string][]string `json:"written,omitempty"`
}
