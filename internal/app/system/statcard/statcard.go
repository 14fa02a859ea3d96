// Package statcard renders the dashboard stat card: a labeled metric value
// with an optional trend annotation, subtitle and icon badge.
//
// Rendering is a pure function of Props. Style classes come from the lookup
// tables in styles.go; each optional block (trend, subtitle, icon) is built
// by its own function in view.go and omitted when its input is absent.
package statcard

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/dalemusser/stratacard/internal/app/system/icons"
	"github.com/dalemusser/stratacard/internal/app/system/normalize"
)

// Variant selects the accent colour and glow treatment of the value and icon badge.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantSuccess     Variant = "success"
	VariantWarning     Variant = "warning"
	VariantDestructive Variant = "destructive"
)

// Trend is the direction shown next to the trend value.
// The empty Trend means "not given" and renders like TrendNeutral.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// Value is the metric a card displays. It holds either text or the
// formatted form of a number.
type Value string

// Text returns a text value.
func Text(s string) Value { return Value(s) }

// Int returns the decimal form of n, without grouping separators.
func Int(n int64) Value { return Value(strconv.FormatInt(n, 10)) }

// Float returns the shortest decimal form of f.
func Float(f float64) Value { return Value(strconv.FormatFloat(f, 'f', -1, 64)) }

func (v Value) String() string { return string(v) }

// UnmarshalJSON accepts a JSON string or a JSON number. Numbers keep the
// literal text they were sent with, so 1.50 stays "1.50".
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("value must be a string or a number")
	}
	*v = Value(n.String())
	return nil
}

// Props is the input of a single render.
type Props struct {
	Title      string
	Value      Value
	Subtitle   string
	Icon       icons.Glyph
	Trend      Trend
	TrendValue string
	Variant    Variant
}

// Normalize returns a copy of p with display text trimmed and the enum
// fields lower-cased. An empty variant becomes VariantDefault.
func (p Props) Normalize() Props {
	p.Title = normalize.Text(p.Title)
	p.Value = Value(normalize.Text(string(p.Value)))
	p.Subtitle = normalize.Text(p.Subtitle)
	p.TrendValue = normalize.Text(p.TrendValue)
	p.Trend = Trend(normalize.Trend(string(p.Trend)))
	p.Variant = Variant(normalize.Variant(string(p.Variant)))
	if p.Variant == "" {
		p.Variant = VariantDefault
	}
	return p
}
