// Package models provides shared data models and types for ruleport.
//
// This package contains the dialect-neutral rule representation and the
// result types that are passed between the scanner, parser, converter,
// and CLI packages.
//
// # Activation Types
//
// Every rule carries exactly one activation type describing when an
// assistant should load it:
//   - always: injected into every session
//   - pattern-matched: loaded when edited files match glob patterns
//   - manual: loaded only on explicit user request
//   - context-decided: the assistant decides, guided by the description
//
// Use [ActivationType] and its constants:
//
//	act := models.ActivationPattern
//	if act.IsValid() {
//	    fmt.Println("valid activation:", act)
//	}
//
// # Canonical Rules
//
// [Rule] is the lossless intermediate form every dialect parses into and
// every serializer renders from. Parsers populate it; downstream code
// treats it as read-only.
//
// # Results
//
// [DetectionResult] reports the rules found for one dialect in a project
// tree. [ConversionOutcome] aggregates a conversion run: per-rule counts,
// written files grouped by target dialect, and non-fatal errors and
// warnings collected along the way.
package models
