package termcard

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/dalemusser/stratacard/internal/app/system/icons"
	"github.com/dalemusser/stratacard/internal/app/system/statcard"
)

func TestRender_RevenueScenario(t *testing.T) {
	out := Render(statcard.Props{
		Title:      "Revenue",
		Value:      statcard.Int(1200),
		Trend:      statcard.TrendUp,
		TrendValue: "8%",
	}, 32)

	for _, want := range []string{"Revenue", "1200", "↑8%", "╭", "╯"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestRender_NoTrendWithoutTrendValue(t *testing.T) {
	out := Render(statcard.Props{Title: "Revenue", Value: "1", Trend: statcard.TrendDown}, 32)
	if strings.Contains(out, "↓") {
		t.Errorf("arrow rendered without trend value\n%s", out)
	}
}

func TestRender_NeutralHasNoArrow(t *testing.T) {
	out := Render(statcard.Props{Title: "Revenue", Value: "1", Trend: statcard.TrendNeutral, TrendValue: "0%"}, 32)
	if !strings.Contains(out, "0%") {
		t.Errorf("trend value missing\n%s", out)
	}
	if strings.Contains(out, "↑") || strings.Contains(out, "↓") {
		t.Errorf("neutral trend should have no arrow\n%s", out)
	}
}

func TestRender_Subtitle(t *testing.T) {
	without := Render(statcard.Props{Title: "Uptime", Value: "99.9%"}, 32)
	with := Render(statcard.Props{Title: "Uptime", Value: "99.9%", Subtitle: "last 30 days"}, 32)

	if strings.Contains(without, "last 30 days") {
		t.Error("subtitle rendered without being set")
	}
	if !strings.Contains(with, "last 30 days") {
		t.Errorf("subtitle missing\n%s", with)
	}
	if lipgloss.Height(with) != lipgloss.Height(without)+1 {
		t.Errorf("subtitle should add exactly one line: %d vs %d", lipgloss.Height(with), lipgloss.Height(without))
	}
}

func TestRender_IconBadge(t *testing.T) {
	alert, _ := icons.Lookup("alert")
	out := Render(statcard.Props{Title: "Errors", Value: "3", Variant: statcard.VariantDestructive, Icon: alert}, 32)
	if !strings.Contains(out, alert.Symbol) {
		t.Errorf("icon symbol %q missing\n%s", alert.Symbol, out)
	}

	plain := Render(statcard.Props{Title: "Errors", Value: "3"}, 32)
	if strings.Contains(plain, alert.Symbol) {
		t.Errorf("icon symbol rendered without an icon\n%s", plain)
	}
}

func TestRender_Width(t *testing.T) {
	out := Render(statcard.Props{Title: "Revenue", Value: "1200"}, 40)
	if w := lipgloss.Width(out); w != 40 {
		t.Errorf("width = %d, want 40", w)
	}

	narrow := Render(statcard.Props{Title: "Revenue", Value: "1200"}, 2)
	if w := lipgloss.Width(narrow); w < MinWidth {
		t.Errorf("width = %d, want at least %d", w, MinWidth)
	}
}

func TestPalette_Fallback(t *testing.T) {
	p := Palette{statcard.TonePrimary: lipgloss.Color("#000000")}
	if got := p.color(statcard.TonePrimary); got != lipgloss.Color("#000000") {
		t.Errorf("color(primary) = %q, want override", got)
	}
	if got := p.color(statcard.ToneMuted); got != DefaultPalette[statcard.ToneMuted] {
		t.Errorf("color(muted) = %q, want default", got)
	}
}
