package config

// Config is the parsed .ruleport.yaml file with defaults applied.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	UI       UIConfig       `yaml:"ui"`
}

// DefaultsConfig pre-answers the convert command's questions, so a
// project can pin its conversion setup instead of relying on flags or
// prompts.
type DefaultsConfig struct {
	// Source is the dialect converted from when --from is absent.
	// Empty means "use detection, prompt if ambiguous".
	Source string `yaml:"source,omitempty"`

	// Targets are the dialects converted into when --to is absent.
	Targets []string `yaml:"targets,omitempty"`

	// Output is the output root for converted rules. Empty means the
	// project root itself.
	Output string `yaml:"output,omitempty"`
}

// UIConfig tunes terminal behavior for every command.
type UIConfig struct {
	// NoColor disables styled output.
	NoColor bool `yaml:"no_color"`

	// NonInteractive suppresses prompts even on a TTY.
	NonInteractive bool `yaml:"non_interactive"`
}

// NewDefaultConfig returns the configuration used when .ruleport.yaml
// is absent: everything decided at run time.
func NewDefaultConfig() *Config {
	return &Config{}
}
