package inputval

import (
	"errors"
	"fmt"

	"github.com/dalemusser/stratacard/internal/app/system/htmlsanitize"
	"github.com/dalemusser/stratacard/internal/app/system/icons"
	"github.com/dalemusser/stratacard/internal/app/system/normalize"
	"github.com/dalemusser/stratacard/internal/app/system/statcard"
	"github.com/dalemusser/stratacard/internal/domain/models"
)

// ErrCustomIconsDisabled is returned when input carries icon markup but the
// caller does not accept custom icons.
var ErrCustomIconsDisabled = errors.New("custom icon markup is not enabled")

// CardInput is a card definition as it arrives from a form, the JSON API or
// a card file. Value is always text here; numbers are formatted by the
// boundary that decoded them.
type CardInput struct {
	Title      string `json:"title" yaml:"title" validate:"required,max=80" label:"Title"`
	Value      string `json:"value" yaml:"value" validate:"required,max=40" label:"Value"`
	Subtitle   string `json:"subtitle,omitempty" yaml:"subtitle,omitempty" validate:"max=160" label:"Subtitle"`
	Icon       string `json:"icon,omitempty" yaml:"icon,omitempty" validate:"icon" label:"Icon"`
	IconSVG    string `json:"icon_svg,omitempty" yaml:"icon_svg,omitempty" validate:"max=8000" label:"Icon SVG"`
	Trend      string `json:"trend,omitempty" yaml:"trend,omitempty" validate:"trend" label:"Trend"`
	TrendValue string `json:"trend_value,omitempty" yaml:"trend_value,omitempty" validate:"max=24" label:"Trend value"`
	Variant    string `json:"variant,omitempty" yaml:"variant,omitempty" validate:"variant" label:"Variant"`
}

// Normalize trims display text and lower-cases the enum and icon fields.
func (c CardInput) Normalize() CardInput {
	c.Title = normalize.Text(c.Title)
	c.Value = normalize.Text(c.Value)
	c.Subtitle = normalize.Text(c.Subtitle)
	c.Icon = normalize.IconName(c.Icon)
	c.IconSVG = normalize.Text(c.IconSVG)
	c.Trend = normalize.Trend(c.Trend)
	c.TrendValue = normalize.Text(c.TrendValue)
	c.Variant = normalize.Variant(c.Variant)
	return c
}

// Props converts validated input into renderer props. IconSVG takes
// precedence over Icon and is only accepted when allowCustomIcons is set;
// custom glyphs are always named "custom".
func (c CardInput) Props(allowCustomIcons bool) (statcard.Props, error) {
	c = c.Normalize()

	p := statcard.Props{
		Title:      c.Title,
		Value:      statcard.Text(c.Value),
		Subtitle:   c.Subtitle,
		Trend:      statcard.Trend(c.Trend),
		TrendValue: c.TrendValue,
		Variant:    statcard.Variant(c.Variant),
	}

	switch {
	case c.IconSVG != "":
		if !allowCustomIcons {
			return statcard.Props{}, ErrCustomIconsDisabled
		}
		g, err := icons.Custom("custom", c.IconSVG)
		if err != nil {
			return statcard.Props{}, fmt.Errorf("icon svg: %w", err)
		}
		p.Icon = g
	case c.Icon != "":
		g, ok := icons.Lookup(c.Icon)
		if !ok {
			return statcard.Props{}, fmt.Errorf("unknown icon %q", c.Icon)
		}
		p.Icon = g
	}

	return p, nil
}

// ValidateCard normalizes c, validates it and, when valid, converts it to props.
// The Result is never nil; err is set only for icon problems found during conversion.
func ValidateCard(c CardInput, allowCustomIcons bool) (statcard.Props, *Result, error) {
	c = c.Normalize()
	res := Validate(c)
	if res.HasErrors() {
		return statcard.Props{}, res, nil
	}
	p, err := c.Props(allowCustomIcons)
	if err != nil {
		return statcard.Props{}, res, err
	}
	return p, res, nil
}

// FromStatCard returns the input that would recreate a saved card.
func FromStatCard(m models.StatCard) CardInput {
	return CardInput{
		Title:      m.Title,
		Value:      m.Value,
		Subtitle:   m.Subtitle,
		Icon:       m.Icon,
		IconSVG:    m.IconSVG,
		Trend:      m.Trend,
		TrendValue: m.TrendValue,
		Variant:    m.Variant,
	}
}

// StatCard converts normalized input into a storable card. Custom icon
// markup is stored sanitized; Key, Position and timestamps are left to the store.
func (c CardInput) StatCard() models.StatCard {
	c = c.Normalize()
	m := models.StatCard{
		Title:      c.Title,
		Value:      c.Value,
		Subtitle:   c.Subtitle,
		Icon:       c.Icon,
		Trend:      c.Trend,
		TrendValue: c.TrendValue,
		Variant:    c.Variant,
	}
	if c.IconSVG != "" {
		m.Icon = ""
		m.IconSVG = htmlsanitize.SVG(c.IconSVG)
	}
	return m
}
