// Package diff renders unified diffs for conversion previews. A plan
// carries full before/after contents for every pending write; the diff
// is how a dry run shows what applying the plan would change.
package diff

import (
	"fmt"
	"strings"
)

// contextLines is the number of unchanged lines kept around each hunk.
const contextLines = 3

type op byte

const (
	opKeep op = ' '
	opDel  op = '-'
	opAdd  op = '+'
)

// line is one row of the aligned before/after sequence. a and b are
// 0-based line numbers, -1 when the line is absent on that side.
type line struct {
	op   op
	text string
	a, b int
}

// Unified renders a unified diff between two versions of a file.
// Identical content yields "". A new file diffs against nothing, so
// every line shows as added. Trailing newlines are not compared.
func Unified(path, before, after string) string {
	lines := align(splitLines(before), splitLines(after))

	changed := false
	for _, ln := range lines {
		if ln.op != opKeep {
			changed = true
			break
		}
	}
	if !changed {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- a/%s\n+++ b/%s\n", path, path)
	for _, h := range hunks(lines) {
		writeHunk(&sb, lines[h.start:h.end])
	}
	return sb.String()
}

// align builds the aligned line sequence from an LCS table. Equal lines
// stay inline, so hunk grouping can work on one flat slice.
func align(a, b []string) []line {
	m, n := len(a), len(b)
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			switch {
			case a[i-1] == b[j-1]:
				dp[i][j] = dp[i-1][j-1] + 1
			case dp[i-1][j] >= dp[i][j-1]:
				dp[i][j] = dp[i-1][j]
			default:
				dp[i][j] = dp[i][j-1]
			}
		}
	}

	var rev []line
	for i, j := m, n; i > 0 || j > 0; {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1]:
			rev = append(rev, line{op: opKeep, text: a[i-1], a: i - 1, b: j - 1})
			i--
			j--
		case j > 0 && (i == 0 || dp[i][j-1] >= dp[i-1][j]):
			rev = append(rev, line{op: opAdd, text: b[j-1], a: -1, b: j - 1})
			j--
		default:
			rev = append(rev, line{op: opDel, text: a[i-1], a: i - 1, b: -1})
			i--
		}
	}

	out := make([]line, len(rev))
	for i, ln := range rev {
		out[len(rev)-1-i] = ln
	}
	return out
}

// span is one hunk as a half-open range into the aligned sequence.
type span struct {
	start, end int
}

// hunks groups changed lines with their surrounding context. Changes
// whose context windows touch merge into one hunk.
func hunks(lines []line) []span {
	marked := make([]bool, len(lines))
	for i, ln := range lines {
		if ln.op == opKeep {
			continue
		}
		lo := max(i-contextLines, 0)
		hi := min(i+contextLines+1, len(lines))
		for j := lo; j < hi; j++ {
			marked[j] = true
		}
	}

	var out []span
	for i := 0; i < len(marked); i++ {
		if !marked[i] {
			continue
		}
		j := i
		for j < len(marked) && marked[j] {
			j++
		}
		out = append(out, span{start: i, end: j})
		i = j
	}
	return out
}

// writeHunk emits one @@ header and its annotated lines.
func writeHunk(sb *strings.Builder, lines []line) {
	var aStart, aCount, bStart, bCount int
	for _, ln := range lines {
		if ln.a >= 0 {
			if aCount == 0 {
				aStart = ln.a + 1
			}
			aCount++
		}
		if ln.b >= 0 {
			if bCount == 0 {
				bStart = ln.b + 1
			}
			bCount++
		}
	}
	// An all-add or all-delete hunk anchors its empty side to the line
	// before the change, per the unified format.
	if aCount == 0 {
		aStart = bStart - 1
	}
	if bCount == 0 {
		bStart = aStart - 1
	}

	fmt.Fprintf(sb, "@@ -%d,%d +%d,%d @@\n", aStart, aCount, bStart, bCount)
	for _, ln := range lines {
		sb.WriteByte(byte(ln.op))
		sb.WriteString(ln.text)
		sb.WriteByte('\n')
	}
}

// splitLines splits content into lines, dropping the empty tail a final
// newline would produce.
func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
