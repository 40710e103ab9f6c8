package render

import (
	"strings"

	"github.com/ruleport/ruleport/internal/scan"
	"github.com/ruleport/ruleport/pkg/models"
)

// defaultSharedPreamble heads a shared rule file created from scratch.
const defaultSharedPreamble = "# Agent instructions\n"

// mergeMultiplex rewrites a shared multi-section document. Existing
// sections keep their order; a section whose name matches an incoming
// rule gets that rule's body, other sections are carried unchanged, and
// rules without a matching section are appended. Text before the first
// delimiter is preserved. Converting the same rules twice produces
// byte-identical output.
func mergeMultiplex(existing string, rules []models.Rule) string {
	preamble := scan.MultiplexPreamble(existing)
	if strings.TrimSpace(preamble) == "" {
		preamble = defaultSharedPreamble
	}

	replacement := make(map[string]string, len(rules))
	order := make([]string, 0, len(rules))
	for _, r := range rules {
		name := sectionName(r.Name)
		if _, seen := replacement[name]; !seen {
			order = append(order, name)
		}
		replacement[name] = r.Body
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(preamble, "\r\n") + "\n")

	merged := make(map[string]bool, len(rules))
	for _, unit := range scan.SplitMultiplex("", existing) {
		body := unit.Raw
		if incoming, ok := replacement[unit.Name]; ok {
			body = incoming
			merged[unit.Name] = true
		}
		writeSection(&b, unit.Name, body)
	}
	for _, name := range order {
		if !merged[name] {
			writeSection(&b, name, replacement[name])
		}
	}
	return b.String()
}

func writeSection(b *strings.Builder, name, body string) {
	b.WriteString("\n---- " + name + " ----\n")
	if body != "" {
		b.WriteString("\n" + strings.TrimRight(body, "\n") + "\n")
	}
}
