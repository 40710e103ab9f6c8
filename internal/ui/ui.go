// Package ui provides the terminal presentation layer: a shared color
// theme, headless-mode detection, and progress reporting that renders
// animated bubbletea views on a TTY and plain log lines everywhere else.
package ui

// Progress builds the spinners and progress bars shown during long
// operations. Implementations pick animated or plain output from the
// headless state and the theme's NoColor flag.
type Progress interface {
	// Start creates a determinate progress bar counting up to total.
	Start(title string, total int) ProgressBar

	// Spinner creates an indeterminate spinner.
	Spinner(title string) Spinner
}

// ProgressBar reports progress toward a known total.
type ProgressBar interface {
	// Increment advances the bar by n steps.
	Increment(n int)

	// SetTitle replaces the text shown next to the bar.
	SetTitle(title string)

	// Done completes the bar. Safe to call more than once.
	Done()
}

// Spinner is an indeterminate activity indicator.
type Spinner interface {
	// SetTitle replaces the text shown next to the spinner.
	SetTitle(title string)

	// Stop halts the spinner. Safe to call more than once.
	Stop()
}
