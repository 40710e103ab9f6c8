package render

import "testing"

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple lowercase name",
			input: "testing",
			want:  "testing",
		},
		{
			name:  "spaces become hyphens",
			input: "API Conventions",
			want:  "api-conventions",
		},
		{
			name:  "symbol runs collapse to one hyphen",
			input: "React / TypeScript!!",
			want:  "react-typescript",
		},
		{
			name:  "edge punctuation is stripped",
			input: "  (deploy notes)  ",
			want:  "deploy-notes",
		},
		{
			name:  "digits survive",
			input: "HTTP2 Push",
			want:  "http2-push",
		},
		{
			name:  "dots separate",
			input: "style.guide.v2",
			want:  "style-guide-v2",
		},
		{
			name:  "decomposed accents normalize before filtering",
			input: "Café Rules",
			want:  "caf-rules",
		},
		{
			name:  "nothing usable falls back",
			input: "???",
			want:  "rule",
		},
		{
			name:  "empty falls back",
			input: "",
			want:  "rule",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Slug(tt.input); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
