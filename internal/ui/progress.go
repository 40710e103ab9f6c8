package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// progressImpl implements Progress.
type progressImpl struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress writing to w, or os.Stdout when w is
// nil. Animated components run only when the manager reports a terminal
// and the theme has color.
func NewProgress(theme *Theme, hm *HeadlessManager, w io.Writer) Progress {
	if w == nil {
		w = os.Stdout
	}
	return &progressImpl{theme: theme, headless: hm, writer: w}
}

// Start creates a determinate progress bar with the given total.
func (p *progressImpl) Start(title string, total int) ProgressBar {
	if p.headless.IsHeadless() || p.theme.NoColor {
		return newPlainProgressBar(title, total, p.writer)
	}
	return newAnimatedProgressBar(p.theme, title, total, p.writer)
}

// Spinner creates an indeterminate spinner.
func (p *progressImpl) Spinner(title string) Spinner {
	if p.headless.IsHeadless() || p.theme.NoColor {
		return newPlainSpinner(title, p.writer)
	}
	return newAnimatedSpinner(p.theme, title, p.writer)
}

// --- animated spinner ---

// spinnerTitleMsg replaces the spinner title.
type spinnerTitleMsg string

// spinnerStopMsg quits the spinner program.
type spinnerStopMsg struct{}

// spinnerModel is the bubbletea model behind the animated spinner.
type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTitleMsg:
		m.title = string(msg)
		return m, nil
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// animatedSpinner drives a background bubbletea program and forwards
// updates to it as messages.
type animatedSpinner struct {
	program *tea.Program
	once    sync.Once
}

func newAnimatedSpinner(theme *Theme, title string, w io.Writer) *animatedSpinner {
	p := tea.NewProgram(newSpinnerModel(theme, title), tea.WithOutput(w))
	s := &animatedSpinner{program: p}
	go func() {
		_, _ = p.Run()
	}()
	return s
}

// SetTitle updates the spinner title.
func (s *animatedSpinner) SetTitle(title string) {
	s.program.Send(spinnerTitleMsg(title))
}

// Stop quits the program and waits for it to exit.
func (s *animatedSpinner) Stop() {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{})
		s.program.Wait()
	})
}

// --- animated progress bar ---

// progressIncrMsg advances the bar by its value.
type progressIncrMsg int

// progressTitleMsg replaces the bar title.
type progressTitleMsg string

// progressDoneMsg completes the bar and quits the program.
type progressDoneMsg struct{}

// progressModel is the bubbletea model behind the animated bar.
type progressModel struct {
	bar     progress.Model
	title   string
	current int
	total   int
	done    bool
}

func newProgressModel(theme *Theme, title string, total int) progressModel {
	bar := progress.New(
		progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary),
		progress.WithWidth(40),
	)
	return progressModel{bar: bar, title: title, total: total}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressIncrMsg:
		m.current += int(msg)
		if m.current > m.total {
			m.current = m.total
		}
		return m, nil
	case progressTitleMsg:
		m.title = string(msg)
		return m, nil
	case progressDoneMsg:
		m.current = m.total
		m.done = true
		return m, tea.Quit
	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) percent() float64 {
	if m.total <= 0 {
		return 0
	}
	return float64(m.current) / float64(m.total)
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s [%d/%d] %s\n", m.bar.ViewAs(m.percent()), m.current, m.total, m.title)
}

// animatedProgressBar drives a background bubbletea program and
// forwards updates to it as messages.
type animatedProgressBar struct {
	program *tea.Program
	once    sync.Once
}

func newAnimatedProgressBar(theme *Theme, title string, total int, w io.Writer) *animatedProgressBar {
	p := tea.NewProgram(newProgressModel(theme, title, total), tea.WithOutput(w))
	b := &animatedProgressBar{program: p}
	go func() {
		_, _ = p.Run()
	}()
	return b
}

// Increment advances the progress by n.
func (b *animatedProgressBar) Increment(n int) {
	b.program.Send(progressIncrMsg(n))
}

// SetTitle updates the bar title.
func (b *animatedProgressBar) SetTitle(title string) {
	b.program.Send(progressTitleMsg(title))
}

// Done completes the bar, quits the program, and waits for it to exit.
func (b *animatedProgressBar) Done() {
	b.once.Do(func() {
		b.program.Send(progressDoneMsg{})
		b.program.Wait()
	})
}

// --- plain fallbacks ---

// plainProgressBar logs one line per update so progress stays visible
// in CI logs.
type plainProgressBar struct {
	title   string
	total   int
	current int
	writer  io.Writer
}

func newPlainProgressBar(title string, total int, w io.Writer) *plainProgressBar {
	return &plainProgressBar{title: title, total: total, writer: w}
}

// Increment advances the progress by n and writes a log line.
func (b *plainProgressBar) Increment(n int) {
	b.current += n
	if b.current > b.total {
		b.current = b.total
	}
	_, _ = fmt.Fprintf(b.writer, "[%d/%d] %s\n", b.current, b.total, b.title)
}

// SetTitle updates the title used by subsequent log lines.
func (b *plainProgressBar) SetTitle(title string) {
	b.title = title
}

// Done completes the bar at 100%.
func (b *plainProgressBar) Done() {
	b.current = b.total
	_, _ = fmt.Fprintf(b.writer, "[%d/%d] %s\n", b.current, b.total, b.title)
}

// plainSpinner prints the title whenever it changes.
type plainSpinner struct {
	title  string
	writer io.Writer
}

func newPlainSpinner(title string, w io.Writer) *plainSpinner {
	s := &plainSpinner{title: title, writer: w}
	_, _ = fmt.Fprintf(w, "%s\n", title)
	return s
}

// SetTitle updates the spinner title and prints a log line.
func (s *plainSpinner) SetTitle(title string) {
	s.title = title
	_, _ = fmt.Fprintf(s.writer, "%s\n", title)
}

// Stop is a no-op for the plain spinner.
func (s *plainSpinner) Stop() {}
