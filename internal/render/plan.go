package render

import (
	"github.com/ruleport/ruleport/internal/dialect"
)

// FileChange is one pending write: the full new content of a file plus
// the content it replaces, empty when the file does not exist yet.
type FileChange struct {
	// Path is the target file, joined below the plan's output root.
	Path string

	// Before is the current on-disk content, "" for a new file.
	Before string

	// After is the content Apply will write.
	After string

	// Rules names the rules carried by this change: one for
	// file-per-rule layouts, every planned rule for shared files.
	Rules []string
}

// Plan is the computed set of writes for one (rules, target) pair.
// Planning is pure apart from reading existing shared files; nothing is
// written until Apply.
type Plan struct {
	// Target is the dialect the plan renders into.
	Target dialect.ID

	// Root is the output root all change paths hang below.
	Root string

	// Changes lists the pending writes in deterministic order.
	Changes []FileChange

	// Converted counts the rules that made it into Changes.
	Converted int

	// Skipped counts the rules that did not, currently only slug
	// collisions where a later rule claimed the same path.
	Skipped int

	// Warnings records degradations, size-limit violations, and
	// collisions. None of them block Apply.
	Warnings []string
}

// ApplyResult reports what a plan's Apply actually did.
type ApplyResult struct {
	// Written lists the files created or updated, relative to the
	// plan's root, in change order.
	Written []string

	// Errors lists per-change write failures, each naming the affected
	// rules and the target dialect. Apply continues past failures.
	Errors []string

	// FailedRules counts rules whose content did not reach disk.
	FailedRules int
}
