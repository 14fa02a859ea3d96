package statcards

import (
	"github.com/dalemusser/stratacard/internal/app/system/cardrender"
	"github.com/dalemusser/stratacard/internal/app/system/icons"
	"github.com/dalemusser/stratacard/internal/app/system/inputval"
	"github.com/dalemusser/stratacard/internal/app/system/statcard"
	"github.com/dalemusser/stratacard/internal/app/system/viewdata"
)

// Config carries the runtime options the handlers need from app config.
type Config struct {
	AllowCustomIcons bool
	MaxBodyBytes     int64
}

// ListVM is the view model for the builder page.
type ListVM struct {
	viewdata.BaseVM
	Cards   []cardrender.Item
	Form    inputval.CardInput
	EditKey string // set when the form edits a saved card
	Options formOptions
	Success string
	Error   string
}

type formOptions struct {
	Variants         []string
	Trends           []string
	Icons            []string
	AllowCustomIcons bool
}

func newFormOptions(allowCustom bool) formOptions {
	return formOptions{
		Variants:         inputval.VariantNames(),
		Trends:           inputval.TrendNames(),
		Icons:            icons.Names(),
		AllowCustomIcons: allowCustom,
	}
}

// previewErrorVM is the fragment shown in place of the preview when the
// builder form is invalid.
type previewErrorVM struct {
	Message string
}

// apiCardRequest is the body of POST /api/statcards/render. Value accepts a
// JSON string or number.
type apiCardRequest struct {
	Title      string         `json:"title"`
	Value      statcard.Value `json:"value"`
	Subtitle   string         `json:"subtitle"`
	Icon       string         `json:"icon"`
	IconSVG    string         `json:"icon_svg"`
	Trend      string         `json:"trend"`
	TrendValue string         `json:"trend_value"`
	Variant    string         `json:"variant"`
}

func (a apiCardRequest) input() inputval.CardInput {
	return inputval.CardInput{
		Title:      a.Title,
		Value:      a.Value.String(),
		Subtitle:   a.Subtitle,
		Icon:       a.Icon,
		IconSVG:    a.IconSVG,
		Trend:      a.Trend,
		TrendValue: a.TrendValue,
		Variant:    a.Variant,
	}
}

type apiRenderResponse struct {
	HTML string `json:"html"`
}

type apiListResponse struct {
	Cards []apiCard `json:"cards"`
	Page  int64     `json:"page,omitempty"`
	Limit int64     `json:"limit,omitempty"`
}

type apiCard struct {
	Key        string `json:"key"`
	Title      string `json:"title"`
	Value      string `json:"value"`
	Subtitle   string `json:"subtitle,omitempty"`
	Icon       string `json:"icon,omitempty"`
	Trend      string `json:"trend,omitempty"`
	TrendValue string `json:"trend_value,omitempty"`
	Variant    string `json:"variant,omitempty"`
	Position   int    `json:"position"`
	HTML       string `json:"html,omitempty"`
}
