// Package cli provides the Cobra command tree and dependency wiring
// for the ruleport CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ruleport/ruleport/pkg/version"
)

// CLI output styles for consistent terminal output.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: "#7D56F4"})
)

func symSuccess() string { return cliSuccess.Render("✓") }
func symError() string   { return cliError.Render("✗") }
func symWarning() string { return cliWarn.Render("!") }

var rootCmd = &cobra.Command{
	Use:   "ruleport",
	Short: "Convert AI assistant rule files between editor dialects",
	Long: `ruleport converts AI coding assistant rule files between the formats
used by Cursor, Windsurf, Cline, Roo Code, GitHub Copilot, Kiro,
Augment, Claude Code, and Codex.

It detects which dialects are present in a project, parses their rules
into a shared canonical form, and re-serializes them for any other
dialect, degrading activation modes the target cannot express.`,
	Version: version.GetVersion(),
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("ruleport %s\n", version.GetVersion()))
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// resolveRoot returns the --root flag when set, the working directory
// otherwise.
func resolveRoot(cmd *cobra.Command) (string, error) {
	if root := getStringFlag(cmd, "root"); root != "" {
		return root, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return cwd, nil
}
