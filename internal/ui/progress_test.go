package ui

import (
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// newTestProgram creates a tea.Program that needs no TTY: empty input,
// discarded output, renderer disabled.
func newTestProgram(m tea.Model) *tea.Program {
	return tea.NewProgram(m,
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	)
}

// startTestProgram runs a tea.Program in a goroutine and returns a
// channel closed when it exits.
func startTestProgram(p *tea.Program) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.Run()
	}()
	// Let the program goroutine initialize before messages arrive.
	time.Sleep(10 * time.Millisecond)
	return done
}

func waitForProgram(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Error("tea.Program did not exit within 2 seconds")
	}
}

func TestPlainProgressBarOutput(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	bar := newPlainProgressBar("converting", 3, &buf)

	bar.Increment(1)
	bar.Increment(1)
	bar.SetTitle("writing")
	bar.Increment(5)
	bar.Done()

	want := "[1/3] converting\n[2/3] converting\n[3/3] writing\n[3/3] writing\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPlainSpinnerOutput(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	sp := newPlainSpinner("detecting rule files", &buf)
	sp.SetTitle("parsing rules")
	sp.Stop()

	want := "detecting rule files\nparsing rules\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestProgressPicksPlainWhenHeadless(t *testing.T) {
	t.Parallel()

	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	var buf strings.Builder
	p := NewProgress(NewTheme(false), hm, &buf)

	if _, ok := p.Start("convert", 2).(*plainProgressBar); !ok {
		t.Error("Start in headless mode should return the plain bar")
	}
	if _, ok := p.Spinner("detect").(*plainSpinner); !ok {
		t.Error("Spinner in headless mode should return the plain spinner")
	}
}

func TestProgressPicksPlainWhenNoColor(t *testing.T) {
	t.Parallel()

	hm := NewHeadlessManager()
	hm.ForceHeadless(false)
	var buf strings.Builder
	p := NewProgress(NewTheme(true), hm, &buf)

	if _, ok := p.Start("convert", 2).(*plainProgressBar); !ok {
		t.Error("Start with NoColor should return the plain bar")
	}
	if _, ok := p.Spinner("detect").(*plainSpinner); !ok {
		t.Error("Spinner with NoColor should return the plain spinner")
	}
}

func TestSpinnerModelUpdate(t *testing.T) {
	t.Parallel()

	m := newSpinnerModel(NewTheme(false), "scanning")

	updated, _ := m.Update(spinnerTitleMsg("parsing"))
	m = updated.(spinnerModel)
	if m.title != "parsing" {
		t.Errorf("title = %q, want %q", m.title, "parsing")
	}

	updated, cmd := m.Update(spinnerStopMsg{})
	m = updated.(spinnerModel)
	if !m.done {
		t.Error("stop message should mark the model done")
	}
	if cmd == nil {
		t.Fatal("stop message should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("stop command should produce tea.QuitMsg")
	}
	if got := m.View(); got != "" {
		t.Errorf("View after stop = %q, want empty", got)
	}
}

func TestProgressModelUpdate(t *testing.T) {
	t.Parallel()

	m := newProgressModel(NewTheme(false), "rendering", 4)

	updated, _ := m.Update(progressIncrMsg(9))
	m = updated.(progressModel)
	if m.current != 4 {
		t.Errorf("current = %d, want capped at 4", m.current)
	}
	if got := m.percent(); got != 1.0 {
		t.Errorf("percent = %v, want 1.0", got)
	}

	updated, cmd := m.Update(progressDoneMsg{})
	m = updated.(progressModel)
	if !m.done {
		t.Error("done message should mark the model done")
	}
	if cmd == nil {
		t.Fatal("done message should return a quit command")
	}
	if got := m.View(); got != "" {
		t.Errorf("View after done = %q, want empty", got)
	}
}

func TestProgressModelPercentZeroTotal(t *testing.T) {
	t.Parallel()

	m := newProgressModel(NewTheme(false), "empty", 0)
	if got := m.percent(); got != 0 {
		t.Errorf("percent with zero total = %v, want 0", got)
	}
}

func TestAnimatedSpinnerStopIdempotent(t *testing.T) {
	p := newTestProgram(newSpinnerModel(NewTheme(false), "working"))
	s := &animatedSpinner{program: p, once: sync.Once{}}
	done := startTestProgram(p)

	s.SetTitle("still working")
	s.Stop()
	s.Stop()

	waitForProgram(t, done)
}

func TestAnimatedProgressBarLifecycle(t *testing.T) {
	p := newTestProgram(newProgressModel(NewTheme(false), "step 1", 3))
	b := &animatedProgressBar{program: p, once: sync.Once{}}
	done := startTestProgram(p)

	b.Increment(1)
	b.SetTitle("step 2")
	b.Increment(2)
	b.Done()
	b.Done()

	waitForProgram(t, done)
}
