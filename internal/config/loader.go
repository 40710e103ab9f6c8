package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ruleport/ruleport/internal/defs"
)

// Loader reads the project configuration file.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a Loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{logger: logger}
}

// Load reads .ruleport.yaml below root. A missing file yields defaults
// and a nil error; unreadable or invalid YAML logs a warning and yields
// defaults. A file that parses but references unknown dialects returns
// the validation error, since silently ignoring it would convert into
// the wrong targets.
func (l *Loader) Load(root string) (*Config, error) {
	cfg := NewDefaultConfig()

	loaded, err := loadYAMLFile(filepath.Join(root, defs.ConfigYAML), cfg)
	if err != nil {
		l.logger.Warn("failed to load config, using defaults", "error", err)
		return NewDefaultConfig(), nil
	}
	if !loaded {
		l.logger.Debug("no config file, using defaults", "root", root)
		return cfg, nil
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	l.logger.Debug("loaded config",
		"source", cfg.Defaults.Source,
		"targets", len(cfg.Defaults.Targets),
	)
	return cfg, nil
}

// loadYAMLFile reads a YAML file and unmarshals it into target. Returns
// (true, nil) if the file was found and parsed, (false, nil) if it does
// not exist, or (false, error) on failure.
func loadYAMLFile(path string, target any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w", filepath.Base(path), ErrInvalidYAML)
	}

	return true, nil
}
