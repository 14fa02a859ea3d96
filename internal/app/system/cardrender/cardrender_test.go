package cardrender

import (
	"strings"
	"testing"

	"github.com/dalemusser/stratacard/internal/domain/models"
	"go.uber.org/zap"
)

func TestSaved(t *testing.T) {
	html, err := Saved(models.StatCard{Key: "k1", Title: "Revenue", Value: "1200", Trend: "up", TrendValue: "8%"})
	if err != nil {
		t.Fatalf("Saved() error = %v", err)
	}
	s := string(html)
	for _, want := range []string{"Revenue", "1200", "↑8%", "text-success"} {
		if !strings.Contains(s, want) {
			t.Errorf("Saved() missing %q in %s", want, s)
		}
	}
}

func TestSaved_CustomIcon(t *testing.T) {
	html, err := Saved(models.StatCard{Key: "k1", Title: "T", Value: "1", IconSVG: `<svg><circle r="4"></circle></svg>`})
	if err != nil {
		t.Fatalf("Saved() error = %v", err)
	}
	if !strings.Contains(string(html), `data-icon="custom"`) {
		t.Errorf("custom icon badge missing: %s", html)
	}
}

func TestSaved_UnknownIcon(t *testing.T) {
	if _, err := Saved(models.StatCard{Key: "k1", Title: "T", Value: "1", Icon: "retired-glyph"}); err == nil {
		t.Error("Saved() should fail for an icon missing from the registry")
	}
}

func TestItems_SkipsBrokenCards(t *testing.T) {
	cards := []models.StatCard{
		{Key: "a", Title: "A", Value: "1"},
		{Key: "b", Title: "B", Value: "2", Icon: "retired-glyph"},
		{Key: "c", Title: "C", Value: "3"},
	}

	items := Items(cards, zap.NewNop())
	if len(items) != 2 {
		t.Fatalf("Items() returned %d, want 2", len(items))
	}
	if items[0].Key != "a" || items[1].Key != "c" {
		t.Errorf("Items() keys = %s, %s; want a, c", items[0].Key, items[1].Key)
	}
	if !strings.Contains(string(items[1].HTML), ">3<") {
		t.Errorf("item c html = %s", items[1].HTML)
	}
}
