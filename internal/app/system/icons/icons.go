// Package icons holds the glyphs a stat card can show in its icon badge.
//
// Built-in glyphs are 24x24 stroke icons drawn with currentColor so the
// badge's tone class colours them. Callers may also supply their own SVG via
// Custom; that markup is sanitized before it becomes a Glyph.
package icons

import (
	"errors"
	"html/template"
	"sort"

	"github.com/dalemusser/stratacard/internal/app/system/htmlsanitize"
	"github.com/dalemusser/stratacard/internal/app/system/normalize"
)

// ErrEmptyIcon is returned by Custom when nothing drawable survives sanitizing.
var ErrEmptyIcon = errors.New("icon markup has no drawable content")

// Glyph is a renderable icon reference.
type Glyph struct {
	Name   string        // registry name, or the caller's label for custom glyphs
	Symbol string        // single-rune fallback for text renderers
	SVG    template.HTML // trusted (built-in) or sanitized (custom) markup
}

// IsZero reports whether g is the empty glyph, meaning "no icon".
func (g Glyph) IsZero() bool {
	return g.Name == "" && g.SVG == "" && g.Symbol == ""
}

const svgOpen = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="20" height="20" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">`

func builtin(name, symbol, body string) Glyph {
	return Glyph{Name: name, Symbol: symbol, SVG: template.HTML(svgOpen + body + `</svg>`)}
}

var registry = map[string]Glyph{
	"activity": builtin("activity", "~", `<polyline points="22 12 18 12 15 21 9 3 6 12 2 12"/>`),
	"alert":    builtin("alert", "!", `<path d="M10.3 3.9 1.8 18a2 2 0 0 0 1.7 3h17a2 2 0 0 0 1.7-3L13.7 3.9a2 2 0 0 0-3.4 0z"/><line x1="12" y1="9" x2="12" y2="13"/><line x1="12" y1="17" x2="12.01" y2="17"/>`),
	"chart":    builtin("chart", "▲", `<line x1="18" y1="20" x2="18" y2="10"/><line x1="12" y1="20" x2="12" y2="4"/><line x1="6" y1="20" x2="6" y2="14"/>`),
	"check":    builtin("check", "✓", `<polyline points="20 6 9 17 4 12"/>`),
	"clock":    builtin("clock", "◷", `<circle cx="12" cy="12" r="10"/><polyline points="12 6 12 12 16 14"/>`),
	"dollar":   builtin("dollar", "$", `<line x1="12" y1="1" x2="12" y2="23"/><path d="M17 5H9.5a3.5 3.5 0 0 0 0 7h5a3.5 3.5 0 0 1 0 7H6"/>`),
	"server":   builtin("server", "≡", `<rect x="2" y="2" width="20" height="8" rx="2" ry="2"/><rect x="2" y="14" width="20" height="8" rx="2" ry="2"/><line x1="6" y1="6" x2="6.01" y2="6"/><line x1="6" y1="18" x2="6.01" y2="18"/>`),
	"users":    builtin("users", "@", `<path d="M17 21v-2a4 4 0 0 0-4-4H5a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M23 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`),
}

// Lookup returns the built-in glyph registered under name.
// Names are matched case-insensitively.
func Lookup(name string) (Glyph, bool) {
	g, ok := registry[normalize.IconName(name)]
	return g, ok
}

// Exists reports whether name is a registered built-in glyph.
func Exists(name string) bool {
	_, ok := Lookup(name)
	return ok
}

// Names returns the registered glyph names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Custom builds a glyph from caller-supplied SVG. The markup is sanitized;
// if no svg root with a shape survives, ErrEmptyIcon is returned.
func Custom(name, svg string) (Glyph, error) {
	clean := htmlsanitize.SVG(svg)
	if !htmlsanitize.HasDrawing(clean) {
		return Glyph{}, ErrEmptyIcon
	}
	name = normalize.IconName(name)
	if name == "" {
		name = "custom"
	}
	return Glyph{Name: name, Symbol: "*", SVG: template.HTML(clean)}, nil
}
