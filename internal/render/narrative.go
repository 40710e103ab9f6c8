package render

import (
	"strings"

	"github.com/ruleport/ruleport/pkg/models"
)

// defaultNarrativeHeader heads a memory file created from scratch.
const defaultNarrativeHeader = "# Project instructions\n"

// narrativeAppend grows a free-form memory document by one heading
// section per rule. Existing content is never rewritten; hand-edited
// prose above the appended sections stays as the author left it.
func narrativeAppend(existing string, rules []models.Rule) string {
	var b strings.Builder
	if strings.TrimSpace(existing) == "" {
		b.WriteString(defaultNarrativeHeader)
	} else {
		b.WriteString(strings.TrimRight(existing, "\n") + "\n")
	}
	for _, r := range rules {
		b.WriteString("\n## " + sectionName(r.Name) + "\n")
		if r.Body != "" {
			b.WriteString("\n" + strings.TrimRight(r.Body, "\n") + "\n")
		}
	}
	return b.String()
}
