package defs

// Common file and directory names used across the project.
const (
	// AgentsMD is the shared multiplex rule file used by Codex and
	// other AGENTS.md-compatible assistants.
	AgentsMD = "AGENTS.md"

	// ClaudeMD is the Claude Code narrative memory file.
	ClaudeMD = "CLAUDE.md"

	// ConfigYAML is the ruleport project configuration file.
	ConfigYAML = ".ruleport.yaml"

	// CopilotInstructionsMD is the legacy single-file Copilot location.
	CopilotInstructionsMD = "copilot-instructions.md"
)

// Rule directory names, relative to the project root.
const (
	CursorRulesDir   = ".cursor/rules"
	WindsurfRulesDir = ".windsurf/rules"
	CopilotRulesDir  = ".github/instructions"
	KiroSteeringDir  = ".kiro/steering"
	AugmentRulesDir  = ".augment/rules"
	ClineRulesDir    = ".clinerules"
	RooRulesDir      = ".roo/rules"
)

// Legacy single-file rule locations, relative to the project root.
const (
	CursorRulesFile   = ".cursorrules"
	WindsurfRulesFile = ".windsurfrules"
	RooRulesFile      = ".roorules"
	AugmentRulesFile  = ".augment-guidelines"
)
