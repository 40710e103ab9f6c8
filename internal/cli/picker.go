package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ruleport/ruleport/internal/dialect"
	"github.com/ruleport/ruleport/internal/ui"
	"github.com/ruleport/ruleport/pkg/models"
)

// ErrCancelled is returned when the user aborts an interactive picker.
var ErrCancelled = errors.New("cli: cancelled by user")

// pickSource asks which detected dialect to convert from. Each question
// runs as its own huh.Form, themed from the shared palette.
func pickSource(theme *ui.Theme, results []models.DetectionResult) (dialect.ID, error) {
	opts := make([]huh.Option[string], 0, len(results))
	for _, res := range results {
		profile, ok := dialect.Get(dialect.ID(res.Dialect))
		if !ok {
			continue
		}
		word := "rules"
		if res.RuleCount() == 1 {
			word = "rule"
		}
		label := fmt.Sprintf("%s - %d %s in %s", profile.Name(), res.RuleCount(), word, res.Location)
		opts = append(opts, huh.NewOption(label, res.Dialect))
	}

	var selected string
	sel := huh.NewSelect[string]().
		Title("Convert from").
		Description("Detected rule dialects").
		Options(opts...).
		Value(&selected)

	form := huh.NewForm(huh.NewGroup(sel)).
		WithTheme(newPickerTheme(theme)).
		WithAccessible(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("source picker: %w", err)
	}
	return dialect.ID(selected), nil
}

// pickTargets asks which dialects to convert into. The source dialect
// is left out; converting a dialect onto itself is still possible via
// the --to flag.
func pickTargets(theme *ui.Theme, source dialect.ID) ([]string, error) {
	var opts []huh.Option[string]
	for _, profile := range dialect.All() {
		if profile.ID == source {
			continue
		}
		opts = append(opts, huh.NewOption(profile.Name(), string(profile.ID)))
	}

	var selected []string
	ms := huh.NewMultiSelect[string]().
		Title("Convert to").
		Description("Space toggles, enter confirms").
		Options(opts...).
		Validate(func(vals []string) error {
			if len(vals) == 0 {
				return errors.New("pick at least one target")
			}
			return nil
		}).
		Value(&selected)

	form := huh.NewForm(huh.NewGroup(ms)).
		WithTheme(newPickerTheme(theme)).
		WithAccessible(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("target picker: %w", err)
	}
	return selected, nil
}

// newPickerTheme maps the shared palette onto a huh theme.
func newPickerTheme(theme *ui.Theme) *huh.Theme {
	t := huh.ThemeBase()
	if theme.NoColor {
		return t
	}

	primary := lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: theme.Colors.Primary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: theme.Colors.Success}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: theme.Colors.Error}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: "#E5E7EB"}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: theme.Colors.Muted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	return t
}
