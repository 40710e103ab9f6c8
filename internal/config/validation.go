package config

import (
	"fmt"
	"strings"

	"github.com/ruleport/ruleport/internal/dialect"
)

// Validate checks every dialect reference against the registry. Empty
// fields are valid; the CLI falls back to detection and prompts.
func Validate(cfg *Config) error {
	var errs []ValidationError

	if cfg.Defaults.Source != "" {
		if _, ok := dialect.Resolve(cfg.Defaults.Source); !ok {
			errs = append(errs, unknownDialect("defaults.source", cfg.Defaults.Source))
		}
	}
	for _, target := range cfg.Defaults.Targets {
		if _, ok := dialect.Resolve(target); !ok {
			errs = append(errs, unknownDialect("defaults.targets", target))
		}
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func unknownDialect(field, value string) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(dialectNames(), ", ")),
		Value:   value,
		Wrapped: ErrUnknownDialect,
	}
}

func dialectNames() []string {
	ids := dialect.IDs()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
