package statcard

// Tone is the semantic colour a style resolves to. HTML output uses the
// class strings below; text renderers map Tone to their own palette.
type Tone string

const (
	TonePrimary     Tone = "primary"
	ToneSuccess     Tone = "success"
	ToneWarning     Tone = "warning"
	ToneDestructive Tone = "destructive"
	ToneMuted       Tone = "muted"
)

// Fixed classes for the parts of the card that do not vary.
const (
	CardClass     = "stat-card"
	TitleClass    = "stat-card__title text-muted"
	SubtitleClass = "stat-card__subtitle text-muted"

	valueBaseClass = "stat-card__value"
	trendBaseClass = "stat-card__trend"
	badgeBaseClass = "stat-card__icon"
)

// VariantStyle is the style descriptor a Variant maps to.
type VariantStyle struct {
	Tone       Tone
	ValueClass string // colour of the metric value
	BadgeClass string // background tint of the icon badge
	IconClass  string // colour of the icon inside the badge
	GlowClass  string // empty when the variant has no glow
}

// TrendStyle is the style descriptor a Trend maps to.
type TrendStyle struct {
	Tone  Tone
	Glyph string // arrow placed immediately before the trend value
	Class string
}

var variantStyles = map[Variant]VariantStyle{
	VariantDefault: {
		Tone:       TonePrimary,
		ValueClass: "text-primary",
		BadgeClass: "bg-primary-soft",
		IconClass:  "text-primary",
		GlowClass:  "glow-primary",
	},
	VariantSuccess: {
		Tone:       ToneSuccess,
		ValueClass: "text-success",
		BadgeClass: "bg-success-soft",
		IconClass:  "text-success",
		GlowClass:  "glow-success",
	},
	VariantWarning: {
		Tone:       ToneWarning,
		ValueClass: "text-warning",
		BadgeClass: "bg-warning-soft",
		IconClass:  "text-warning",
	},
	VariantDestructive: {
		Tone:       ToneDestructive,
		ValueClass: "text-destructive",
		BadgeClass: "bg-destructive-soft",
		IconClass:  "text-destructive",
	},
}

var trendStyles = map[Trend]TrendStyle{
	TrendUp:      {Tone: ToneSuccess, Glyph: "↑", Class: "text-success"},
	TrendDown:    {Tone: ToneDestructive, Glyph: "↓", Class: "text-destructive"},
	TrendNeutral: {Tone: ToneMuted, Glyph: "", Class: "text-muted"},
}

// LookupVariant returns the style for v. Unknown variants, including the
// empty one, resolve to the default style.
func LookupVariant(v Variant) VariantStyle {
	if s, ok := variantStyles[v]; ok {
		return s
	}
	return variantStyles[VariantDefault]
}

// LookupTrend returns the style for t. Unknown trends, including the empty
// one, resolve to the neutral style.
func LookupTrend(t Trend) TrendStyle {
	if s, ok := trendStyles[t]; ok {
		return s
	}
	return trendStyles[TrendNeutral]
}

// Valid reports whether v is empty or one of the declared variants.
func (v Variant) Valid() bool {
	if v == "" {
		return true
	}
	_, ok := variantStyles[v]
	return ok
}

// Valid reports whether t is empty or one of the declared trends.
func (t Trend) Valid() bool {
	if t == "" {
		return true
	}
	_, ok := trendStyles[t]
	return ok
}

// Variants lists the declared variants in display order.
func Variants() []Variant {
	return []Variant{VariantDefault, VariantSuccess, VariantWarning, VariantDestructive}
}

// Trends lists the declared trends in display order.
func Trends() []Trend {
	return []Trend{TrendUp, TrendDown, TrendNeutral}
}
