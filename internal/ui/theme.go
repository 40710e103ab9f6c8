package ui

// ThemeColors is the hex palette used by the animated components and
// the interactive pickers.
type ThemeColors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme carries the palette shared by every terminal surface. NoColor
// switches all of them to plain text.
type Theme struct {
	Colors  ThemeColors
	NoColor bool
}

// NewTheme returns the default palette.
func NewTheme(noColor bool) *Theme {
	return &Theme{
		Colors: ThemeColors{
			Primary:   "#7D56F4",
			Secondary: "#F25D94",
			Success:   "#10B981",
			Warning:   "#F59E0B",
			Error:     "#EF4444",
			Muted:     "#6B7280",
		},
		NoColor: noColor,
	}
}
