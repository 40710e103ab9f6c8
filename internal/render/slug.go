package render

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Slug derives the output file stem for a rule name: NFC normalization,
// lowercasing, then every run of characters outside [a-z0-9] collapses
// to a single hyphen, with edge hyphens trimmed. Names that normalize
// to nothing fall back to "rule".
func Slug(name string) string {
	s := strings.ToLower(norm.NFC.String(name))

	var sb strings.Builder
	sb.Grow(len(s))
	pendingHyphen := false
	for _, r := range s {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingHyphen = sb.Len() > 0
			continue
		}
		if pendingHyphen {
			sb.WriteByte('-')
			pendingHyphen = false
		}
		sb.WriteRune(r)
	}

	if sb.Len() == 0 {
		return "rule"
	}
	return sb.String()
}
