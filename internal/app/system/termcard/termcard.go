// Package termcard renders a stat card as a bordered block of styled
// terminal text. It draws the same View the HTML renderer uses, so the
// optional-block rules and colour tables are shared.
package termcard

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dalemusser/stratacard/internal/app/system/statcard"
)

// Palette maps each semantic tone to a terminal colour.
type Palette map[statcard.Tone]lipgloss.Color

// DefaultPalette is used when Render is called without a palette.
var DefaultPalette = Palette{
	statcard.TonePrimary:     lipgloss.Color("#8BC34A"),
	statcard.ToneSuccess:     lipgloss.Color("#4CAF50"),
	statcard.ToneWarning:     lipgloss.Color("#FFC107"),
	statcard.ToneDestructive: lipgloss.Color("#E53935"),
	statcard.ToneMuted:       lipgloss.Color("#8A94A6"),
}

// Border colour of the card frame.
var borderColor = lipgloss.Color("#2A3850")

// MinWidth is the narrowest card Render will draw.
const MinWidth = 16

// Render draws p at the given outer width using DefaultPalette.
func Render(p statcard.Props, width int) string {
	return RenderWith(DefaultPalette, statcard.Build(p), width)
}

// RenderWith draws an already built view with a custom palette.
func RenderWith(pal Palette, v statcard.View, width int) string {
	if width < MinWidth {
		width = MinWidth
	}

	muted := lipgloss.NewStyle().Foreground(pal.color(statcard.ToneMuted))

	title := muted.Render(v.Title)

	row := lipgloss.NewStyle().Bold(true).Foreground(pal.color(v.Tone)).Render(v.Value)
	if v.Trend != nil {
		trend := lipgloss.NewStyle().Foreground(pal.color(v.Trend.Tone)).Render(v.Trend.Label())
		row = lipgloss.JoinHorizontal(lipgloss.Bottom, row, " ", trend)
	}

	lines := []string{title, row}
	if v.Subtitle != nil {
		lines = append(lines, muted.Faint(true).Render(v.Subtitle.Text))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, lines...)

	if v.Icon != nil {
		badge := badgeStyle(pal, v.Icon).Render(v.Icon.Symbol)
		// frame border (2) + padding (2) + badge (3) + gap (1)
		contentWidth := width - 8
		if contentWidth < 1 {
			contentWidth = 1
		}
		content = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(contentWidth).Render(content),
			" ",
			badge,
		)
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(width - 2)

	return frame.Render(content)
}

func badgeStyle(pal Palette, icon *statcard.IconView) lipgloss.Style {
	s := lipgloss.NewStyle().
		Bold(true).
		Width(3).
		Align(lipgloss.Center).
		Foreground(pal.color(icon.Tone))
	if icon.Glow {
		s = s.Underline(true)
	}
	return s
}

func (p Palette) color(t statcard.Tone) lipgloss.Color {
	if c, ok := p[t]; ok {
		return c
	}
	return DefaultPalette[t]
}
