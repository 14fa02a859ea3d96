package statcard

import (
	"html/template"
	"strings"

	"github.com/dalemusser/stratacard/internal/app/system/icons"
	"github.com/dalemusser/stratacard/internal/app/system/normalize"
)

// View is the resolved visual tree of one card. Optional blocks are nil
// when absent.
type View struct {
	CardClass  string
	Title      string
	TitleClass string
	Value      string
	ValueClass string
	Tone       Tone

	Trend    *TrendView
	Subtitle *SubtitleView
	Icon     *IconView
}

// TrendView is the arrow and delta shown after the value.
type TrendView struct {
	Glyph string
	Text  string
	Class string
	Tone  Tone
}

// Label is the glyph immediately followed by the trend text.
func (t TrendView) Label() string {
	return t.Glyph + t.Text
}

// SubtitleView is the muted line under the value row.
type SubtitleView struct {
	Text  string
	Class string
}

// IconView is the tinted badge on the right of the header.
type IconView struct {
	Name      string
	Symbol    string
	SVG       template.HTML
	Class     string // badge classes: base, tint and optional glow
	IconClass string
	Glow      bool
	Tone      Tone
}

// Build resolves p into a View.
func Build(p Props) View {
	p = p.Normalize()
	vs := LookupVariant(p.Variant)

	return View{
		CardClass:  CardClass,
		Title:      p.Title,
		TitleClass: TitleClass,
		Value:      p.Value.String(),
		ValueClass: joinClasses(valueBaseClass, vs.ValueClass),
		Tone:       vs.Tone,
		Trend:      BuildTrend(p.Trend, p.TrendValue),
		Subtitle:   BuildSubtitle(p.Subtitle),
		Icon:       BuildIcon(p.Variant, p.Icon),
	}
}

// BuildTrend returns the trend annotation, or nil when trendValue is empty.
// The trend alone never produces output.
func BuildTrend(trend Trend, trendValue string) *TrendView {
	trendValue = normalize.Text(trendValue)
	if trendValue == "" {
		return nil
	}
	ts := LookupTrend(Trend(normalize.Trend(string(trend))))
	return &TrendView{
		Glyph: ts.Glyph,
		Text:  trendValue,
		Class: joinClasses(trendBaseClass, ts.Class),
		Tone:  ts.Tone,
	}
}

// BuildSubtitle returns the subtitle line, or nil when s is empty.
func BuildSubtitle(s string) *SubtitleView {
	s = normalize.Text(s)
	if s == "" {
		return nil
	}
	return &SubtitleView{Text: s, Class: SubtitleClass}
}

// BuildIcon returns the icon badge tinted by variant, or nil when g is the zero glyph.
func BuildIcon(variant Variant, g icons.Glyph) *IconView {
	if g.IsZero() {
		return nil
	}
	vs := LookupVariant(Variant(normalize.Variant(string(variant))))
	return &IconView{
		Name:      g.Name,
		Symbol:    g.Symbol,
		SVG:       g.SVG,
		Class:     joinClasses(badgeBaseClass, vs.BadgeClass, vs.GlowClass),
		IconClass: vs.IconClass,
		Glow:      vs.GlowClass != "",
		Tone:      vs.Tone,
	}
}

func joinClasses(classes ...string) string {
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		if c != "" {
			out = append(out, c)
		}
	}
	return strings.Join(out, " ")
}
