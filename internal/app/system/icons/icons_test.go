package icons

import (
	"errors"
	"sort"
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		wantOK bool
	}{
		{"dollar", true},
		{"users", true},
		{"alert", true},
		{"  Alert ", true},
		{"DOLLAR", true},
		{"", false},
		{"rocket", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, ok := Lookup(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
			if !ok {
				if !g.IsZero() {
					t.Errorf("Lookup(%q) returned non-zero glyph for unknown name", tt.name)
				}
				return
			}
			if g.Symbol == "" {
				t.Errorf("glyph %q has no symbol", g.Name)
			}
			if !strings.HasPrefix(string(g.SVG), "<svg") {
				t.Errorf("glyph %q SVG = %q, want svg root", g.Name, g.SVG)
			}
			if !strings.Contains(string(g.SVG), "currentColor") {
				t.Errorf("glyph %q should draw with currentColor", g.Name)
			}
		})
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != len(registry) {
		t.Fatalf("Names() returned %d names, want %d", len(names), len(registry))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() = %v, want sorted", names)
	}
	for _, n := range names {
		if !Exists(n) {
			t.Errorf("Exists(%q) = false for a listed name", n)
		}
	}
}

func TestGlyph_IsZero(t *testing.T) {
	if !(Glyph{}).IsZero() {
		t.Error("zero Glyph should report IsZero")
	}
	g, _ := Lookup("check")
	if g.IsZero() {
		t.Error("registered glyph should not report IsZero")
	}
}

func TestCustom(t *testing.T) {
	g, err := Custom(" Rocket ", `<svg viewBox="0 0 24 24" onload="alert(1)"><path d="M4 4l16 16"/></svg>`)
	if err != nil {
		t.Fatalf("Custom() error = %v", err)
	}
	if g.Name != "rocket" {
		t.Errorf("Name = %q, want %q", g.Name, "rocket")
	}
	if strings.Contains(string(g.SVG), "onload") {
		t.Errorf("SVG = %q, event handler should be stripped", g.SVG)
	}
	if !strings.Contains(string(g.SVG), "<path") {
		t.Errorf("SVG = %q, want path kept", g.SVG)
	}
}

func TestCustom_DefaultName(t *testing.T) {
	g, err := Custom("", `<svg><circle cx="1" cy="1" r="1"/></svg>`)
	if err != nil {
		t.Fatalf("Custom() error = %v", err)
	}
	if g.Name != "custom" {
		t.Errorf("Name = %q, want %q", g.Name, "custom")
	}
}

func TestCustom_Empty(t *testing.T) {
	inputs := []string{
		"",
		"<script>alert(1)</script>",
		"<p>text</p>",
		"<svg></svg>",
	}
	for _, in := range inputs {
		if _, err := Custom("x", in); !errors.Is(err, ErrEmptyIcon) {
			t.Errorf("Custom(%q) error = %v, want ErrEmptyIcon", in, err)
		}
	}
}
