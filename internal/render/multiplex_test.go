package render

import (
	"testing"

	"github.com/ruleport/ruleport/pkg/models"
)

func TestMergeMultiplexFreshFile(t *testing.T) {
	t.Parallel()

	rules := []models.Rule{
		{Name: "typescript", Body: "Use strict mode."},
		{Name: "testing", Body: "Prefer table tests."},
	}

	got := mergeMultiplex("", rules)
	want := "# Agent instructions\n" +
		"\n---- typescript ----\n\nUse strict mode.\n" +
		"\n---- testing ----\n\nPrefer table tests.\n"
	if got != want {
		t.Errorf("mergeMultiplex fresh = %q, want %q", got, want)
	}
}

func TestMergeMultiplexReplacesInPlace(t *testing.T) {
	t.Parallel()

	existing := "# Agent instructions\n\nShared notes for every agent.\n" +
		"\n---- typescript ----\n\nOld body.\n" +
		"\n---- keep-me ----\n\nUntouched.\n"

	rules := []models.Rule{
		{Name: "typescript", Body: "New body."},
		{Name: "fresh", Body: "Fresh."},
	}

	got := mergeMultiplex(existing, rules)
	want := "# Agent instructions\n\nShared notes for every agent.\n" +
		"\n---- typescript ----\n\nNew body.\n" +
		"\n---- keep-me ----\n\nUntouched.\n" +
		"\n---- fresh ----\n\nFresh.\n"
	if got != want {
		t.Errorf("mergeMultiplex = %q, want %q", got, want)
	}
}

func TestMergeMultiplexIdempotent(t *testing.T) {
	t.Parallel()

	rules := []models.Rule{
		{Name: "typescript", Body: "Use strict mode."},
		{Name: "deploy", Body: "Never deploy on Fridays."},
	}

	once := mergeMultiplex("", rules)
	twice := mergeMultiplex(once, rules)
	if once != twice {
		t.Errorf("second merge changed the file:\nfirst  = %q\nsecond = %q", once, twice)
	}
}

func TestMergeMultiplexEmptyBodySection(t *testing.T) {
	t.Parallel()

	got := mergeMultiplex("", []models.Rule{{Name: "placeholder"}})
	want := "# Agent instructions\n\n---- placeholder ----\n"
	if got != want {
		t.Errorf("mergeMultiplex = %q, want %q", got, want)
	}

	if again := mergeMultiplex(got, []models.Rule{{Name: "placeholder"}}); again != want {
		t.Errorf("second merge = %q, want %q", again, want)
	}
}

func TestNarrativeAppendFreshFile(t *testing.T) {
	t.Parallel()

	got := narrativeAppend("", []models.Rule{
		{Name: "API Conventions", Body: "Use plural nouns."},
	})
	want := "# Project instructions\n\n## API Conventions\n\nUse plural nouns.\n"
	if got != want {
		t.Errorf("narrativeAppend fresh = %q, want %q", got, want)
	}
}

func TestNarrativeAppendKeepsExistingProse(t *testing.T) {
	t.Parallel()

	existing := "# My project\n\nHand-written notes.\n"
	got := narrativeAppend(existing, []models.Rule{
		{Name: "deploy", Body: "Run make deploy."},
	})
	want := "# My project\n\nHand-written notes.\n\n## deploy\n\nRun make deploy.\n"
	if got != want {
		t.Errorf("narrativeAppend = %q, want %q", got, want)
	}
}

func TestSectionName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain name passes through", input: "typescript", want: "typescript"},
		{name: "newlines flatten to spaces", input: "two\nlines", want: "two lines"},
		{name: "edge whitespace trims", input: "  padded  ", want: "padded"},
		{name: "empty falls back", input: "", want: "rule"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := sectionName(tt.input); got != tt.want {
				t.Errorf("sectionName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
