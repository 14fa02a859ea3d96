package htmlsanitize

import (
	"strings"
	"testing"
)

func TestSVG(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string // Strings that should be in output
		excludes []string // Strings that should NOT be in output
	}{
		{
			name:  "empty string",
			input: "",
		},
		{
			name:  "whitespace only",
			input: "   \n\t",
		},
		{
			name:     "simple path preserved",
			input:    `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor"><path d="M12 2v20"/></svg>`,
			contains: []string{"<svg", "<path", `d="M12 2v20"`, `stroke="currentColor"`},
		},
		{
			name:     "script element removed with content",
			input:    `<svg><script>alert('xss')</script><circle cx="12" cy="12" r="4"/></svg>`,
			contains: []string{"<circle", `r="4"`},
			excludes: []string{"<script", "alert", "xss"},
		},
		{
			name:     "event handler removed",
			input:    `<svg onload="alert(1)"><rect x="1" y="1" width="4" height="4"/></svg>`,
			contains: []string{"<rect", `width="4"`},
			excludes: []string{"onload", "alert"},
		},
		{
			name:     "links removed",
			input:    `<svg><a href="javascript:alert(1)"><path d="M1 1"/></a></svg>`,
			contains: []string{`d="M1 1"`},
			excludes: []string{"<a", "javascript:"},
		},
		{
			name:     "style element removed",
			input:    `<svg><style>*{display:none}</style><line x1="0" y1="0" x2="4" y2="4"/></svg>`,
			contains: []string{"<line", `x2="4"`},
			excludes: []string{"<style", "display:none"},
		},
		{
			name:     "foreignObject removed",
			input:    `<svg><foreignObject><div>html</div></foreignObject><polyline points="1,2 3,4"/></svg>`,
			contains: []string{"<polyline", `points="1,2 3,4"`},
			excludes: []string{"<div", "html<", "foreignobject"},
		},
		{
			name:     "plain html stripped",
			input:    `<p>not an icon</p>`,
			contains: []string{"not an icon"},
			excludes: []string{"<p>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SVG(tt.input)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("SVG(%q) = %q, want to contain %q", tt.input, got, want)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("SVG(%q) = %q, should not contain %q", tt.input, got, bad)
				}
			}
		})
	}
}

func TestHasDrawing(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", false},
		{"text only", "hello", false},
		{"svg without shapes", "<svg></svg>", false},
		{"svg with path", `<svg><path d="M0 0"></path></svg>`, true},
		{"svg with circle", `<svg><circle r="1"></circle></svg>`, true},
		{"shape without svg root", `<path d="M0 0"></path>`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasDrawing(tt.input); got != tt.want {
				t.Errorf("HasDrawing(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
