// Package htmlsanitize cleans caller-supplied SVG icon markup before it is
// embedded in a stat card. It uses bluemonday with a policy that only knows
// about inline SVG drawing primitives.
package htmlsanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// policy is the shared bluemonday policy for icon markup.
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// shapeElements are the SVG drawing elements an icon may contain.
var shapeElements = []string{"path", "circle", "ellipse", "rect", "line", "polyline", "polygon"}

// paintAttrs apply to the root and to every shape.
var paintAttrs = []string{
	"fill", "stroke", "stroke-width", "stroke-linecap", "stroke-linejoin",
	"opacity", "fill-rule", "clip-rule", "transform",
}

// getPolicy returns the shared SVG policy, creating it on first use.
func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.NewPolicy()

		policy.AllowElements("svg", "g", "title")
		policy.AllowElements(shapeElements...)

		// Root element. The HTML tokenizer lower-cases attribute names;
		// browsers restore viewBox when parsing inline SVG.
		policy.AllowAttrs("xmlns", "viewbox", "width", "height", "aria-hidden", "focusable", "class").OnElements("svg")
		policy.AllowAttrs(paintAttrs...).OnElements("svg", "g")
		policy.AllowAttrs(paintAttrs...).OnElements(shapeElements...)

		// Geometry
		policy.AllowAttrs("d").OnElements("path")
		policy.AllowAttrs("cx", "cy", "r").OnElements("circle")
		policy.AllowAttrs("cx", "cy", "rx", "ry").OnElements("ellipse")
		policy.AllowAttrs("x", "y", "width", "height", "rx", "ry").OnElements("rect")
		policy.AllowAttrs("x1", "y1", "x2", "y2").OnElements("line")
		policy.AllowAttrs("points").OnElements("polyline", "polygon")

		policy.SkipElementsContent("script", "style", "foreignobject")
	})
	return policy
}

// SVG removes everything from s that is not an inline SVG drawing element
// or attribute: scripts, event handlers, links, styles and embedded HTML.
func SVG(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.TrimSpace(getPolicy().Sanitize(s))
}

// HasDrawing reports whether sanitized markup still contains an svg root
// with at least one shape. Markup that loses everything to the policy is
// not a usable icon.
func HasDrawing(sanitized string) bool {
	if !strings.Contains(sanitized, "<svg") {
		return false
	}
	for _, el := range shapeElements {
		if strings.Contains(sanitized, "<"+el) {
			return true
		}
	}
	return false
}
