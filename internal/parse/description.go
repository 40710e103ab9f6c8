package parse

import (
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// The goldmark parser is stateless after construction and safe for
// concurrent use, so one instance serves every call.
var (
	markdownOnce sync.Once
	markdown     goldmark.Markdown
)

func markdownParser() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdown = goldmark.New()
	})
	return markdown
}

// firstHeading returns the text of the first markdown heading in body,
// or "" when there is none. It serves as the description fallback for
// rules whose frontmatter carries no description.
func firstHeading(body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	src := []byte(body)
	doc := markdownParser().Parser().Parse(text.NewReader(src))

	var heading string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			heading = flattenText(h, src)
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(heading)
}

// flattenText collects the plain text of a node's inline children,
// dropping emphasis and code span markers.
func flattenText(node ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(src))
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}
