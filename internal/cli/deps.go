package cli

import (
	"io"
	"log/slog"

	"github.com/ruleport/ruleport/internal/config"
	"github.com/ruleport/ruleport/internal/convert"
)

// Dependencies holds the domain services used by CLI commands. This is
// the composition root: the only place where concrete types are
// instantiated and wired together. Commands reach them through the
// package-level deps variable.
type Dependencies struct {
	Detector  convert.Detector
	Converter convert.Converter
	Config    *config.Loader
	Logger    *slog.Logger
}

// deps is the global dependencies instance, initialized by
// InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires the domain dependencies. It should
// be called once during application startup.
func InitDependencies() {
	// Commands print through styled writers; keep slog quiet.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	deps = &Dependencies{
		Detector:  convert.NewDetector(logger),
		Converter: convert.NewConverter(logger),
		Config:    config.NewLoader(logger),
		Logger:    logger,
	}
}

// GetDeps returns the current Dependencies instance. Returns nil if
// InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}
