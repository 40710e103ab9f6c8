package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// patternList accepts the three shapes dialects use for glob patterns:
// a single pattern string, a comma-separated string, and a YAML
// sequence. All of them normalize to a trimmed, order-preserving slice.
type patternList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *patternList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*p = nil
			return nil
		}
		*p = splitPatterns(value.Value)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return fmt.Errorf("parse: pattern list: %w", err)
		}
		out := make(patternList, 0, len(items))
		for _, item := range items {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		*p = out
		return nil
	}
	return fmt.Errorf("parse: unsupported pattern value (kind %d)", value.Kind)
}

// splitPatterns normalizes a comma-separated pattern string. Empty
// segments vanish; "*.ts, *.tsx" and ["*.ts", "*.tsx"] come out equal.
func splitPatterns(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// splitFrontmatter separates a leading YAML frontmatter block from the
// body. The opening fence must be the first line; without a closing
// fence the content counts as having no frontmatter at all.
func splitFrontmatter(raw string) (fmText, body string, found bool) {
	content := strings.TrimPrefix(raw, "\uFEFF")
	firstLineEnd := strings.IndexByte(content, '\n')
	if firstLineEnd < 0 {
		return "", raw, false
	}
	if strings.TrimRight(content[:firstLineEnd], "\r") != "---" {
		return "", raw, false
	}

	rest := content[firstLineEnd+1:]
	offset := 0
	for offset <= len(rest) {
		lineEnd := strings.IndexByte(rest[offset:], '\n')
		var line string
		var next int
		if lineEnd < 0 {
			line = rest[offset:]
			next = len(rest) + 1
		} else {
			line = rest[offset : offset+lineEnd]
			next = offset + lineEnd + 1
		}
		if strings.TrimRight(line, "\r") == "---" {
			if next <= len(rest) {
				body = rest[next:]
			}
			return rest[:offset], body, true
		}
		if lineEnd < 0 {
			break
		}
		offset = next
	}
	return "", raw, false
}

// globKeyLine matches frontmatter lines whose value is a glob
// expression written inline.
var globKeyLine = regexp.MustCompile(`^([ \t]*(?:globs|glob|filesToApplyRule|applyTo|fileMatchPattern):[ \t]*)(\S.*?)[ \t]*$`)

// globListItem matches sequence items that start with the alias
// character; anchors parse fine and are left alone.
var globListItem = regexp.MustCompile(`^([ \t]*-[ \t]+)(\*\S.*?)[ \t]*$`)

// sanitizeFrontmatter quotes inline glob values so that patterns
// starting with * survive the YAML parser, which would otherwise read
// them as alias nodes. Quoted, flow, and block values pass through.
func sanitizeFrontmatter(fmText string) string {
	lines := strings.Split(fmText, "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		if m := globKeyLine.FindStringSubmatch(line); m != nil {
			switch m[2][0] {
			case '"', '\'', '[', '|', '>', '#', '&':
				continue
			}
			lines[i] = m[1] + strconv.Quote(m[2])
			continue
		}
		if m := globListItem.FindStringSubmatch(line); m != nil {
			lines[i] = m[1] + strconv.Quote(m[2])
		}
	}
	return strings.Join(lines, "\n")
}

// decodeFrontmatter parses the frontmatter text twice: once into the
// typed union and once into a generic map for metadata preservation.
func decodeFrontmatter(fmText string) (frontmatter, map[string]any, error) {
	var fm frontmatter
	if err := yaml.Unmarshal([]byte(fmText), &fm); err != nil {
		return frontmatter{}, nil, err
	}
	var extra map[string]any
	if err := yaml.Unmarshal([]byte(fmText), &extra); err != nil {
		return frontmatter{}, nil, err
	}
	return fm, extra, nil
}
