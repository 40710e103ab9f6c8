package render

import (
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ruleport/ruleport/internal/dialect"
	"github.com/ruleport/ruleport/pkg/models"
)

// renderFrontmatter builds the frontmatter block for one rule in the
// target dialect. Key order is fixed per dialect so repeated runs are
// byte-identical. Dialects without frontmatter yield "".
//
// The rule passed in must already be degraded to an activation the
// dialect supports.
func renderFrontmatter(p dialect.Profile, r models.Rule) string {
	if !p.Frontmatter {
		return ""
	}

	var b strings.Builder
	b.WriteString("---\n")
	switch p.ID {
	case dialect.Cursor:
		// Cursor's native shape carries all three keys, globs as an
		// unquoted comma-separated list.
		writeKey(&b, "description", yamlScalar(r.Description))
		writeKey(&b, "globs", strings.Join(r.Patterns, ", "))
		writeKey(&b, "alwaysApply", strconv.FormatBool(r.Activation == models.ActivationAlways))
	case dialect.Windsurf:
		if word, ok := dialect.TriggerWord(p.ID, r.Activation); ok {
			writeKey(&b, "trigger", word)
		}
		if r.Description != "" {
			writeKey(&b, "description", yamlScalar(r.Description))
		}
		if r.Activation == models.ActivationPattern {
			writeKey(&b, "globs", strings.Join(r.Patterns, ", "))
		}
	case dialect.Copilot:
		patterns := r.Patterns
		if r.Activation == models.ActivationAlways {
			patterns = []string{"**"}
		}
		writeKey(&b, "applyTo", strconv.Quote(strings.Join(patterns, ", ")))
		if r.Description != "" {
			writeKey(&b, "description", yamlScalar(r.Description))
		}
	case dialect.Kiro:
		if word, ok := dialect.TriggerWord(p.ID, r.Activation); ok {
			writeKey(&b, "inclusion", word)
		}
		if r.Activation == models.ActivationPattern {
			writeKey(&b, "fileMatchPattern", strconv.Quote(strings.Join(r.Patterns, ", ")))
		}
	case dialect.Augment:
		if word, ok := dialect.TriggerWord(p.ID, r.Activation); ok {
			writeKey(&b, "type", word)
		}
		if r.Description != "" {
			writeKey(&b, "description", yamlScalar(r.Description))
		}
	}
	writeExtras(&b, p.ID, r)
	b.WriteString("---\n")
	return b.String()
}

// writeKey writes one frontmatter line. An empty value keeps the key
// with no value, matching how editors leave unset fields.
func writeKey(b *strings.Builder, key, value string) {
	b.WriteString(key)
	b.WriteByte(':')
	if value != "" {
		b.WriteByte(' ')
		b.WriteString(value)
	}
	b.WriteByte('\n')
}

// yamlScalar renders a string for a frontmatter line, quoting only when
// the plain form would change meaning under a YAML parser.
func yamlScalar(s string) string {
	if s == "" {
		return ""
	}
	if s != strings.TrimSpace(s) || strings.ContainsAny(s, ":#{}[]&*!|>'\"%@`\n") {
		return strconv.Quote(s)
	}
	return s
}

// writeExtras restores preserved frontmatter keys when a rule returns
// to its source dialect. Keys render in sorted order through the YAML
// encoder, so values of any shape stay valid.
func writeExtras(b *strings.Builder, target dialect.ID, r models.Rule) {
	if string(target) != r.SourceDialect || len(r.Metadata) == 0 {
		return
	}
	keys := make([]string, 0, len(r.Metadata))
	for k := range r.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out, err := yaml.Marshal(map[string]any{k: r.Metadata[k]})
		if err != nil {
			continue
		}
		b.Write(out)
	}
}
