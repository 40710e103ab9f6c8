// Package dialect defines the closed registry of supported rule dialects:
// profile data, location resolution, and the activation crosswalk that
// maps canonical activation types onto each dialect's vocabulary.
package dialect

import "errors"

// Sentinel errors for dialect resolution.
var (
	// ErrUnknownDialect indicates a name that resolves to no registered
	// dialect id or display name.
	ErrUnknownDialect = errors.New("dialect: unknown dialect name")
)
