// Package cardrender turns saved cards into rendered HTML for pages that
// list them.
package cardrender

import (
	"fmt"
	"html/template"

	"github.com/dalemusser/stratacard/internal/app/system/inputval"
	"github.com/dalemusser/stratacard/internal/app/system/statcard"
	"github.com/dalemusser/stratacard/internal/domain/models"
	"go.uber.org/zap"
)

// Item is one rendered card in a grid.
type Item struct {
	Key   string
	Title string
	HTML  template.HTML
}

// Saved renders a stored card. Stored custom markup was sanitized on save
// and is always accepted here.
func Saved(m models.StatCard) (template.HTML, error) {
	p, err := inputval.FromStatCard(m).Props(true)
	if err != nil {
		return "", fmt.Errorf("card %s: %w", m.Key, err)
	}
	return statcard.HTML(p)
}

// Items renders cards in order. A card that no longer renders (for example
// its icon was removed from the registry) is logged and skipped.
func Items(cards []models.StatCard, logger *zap.Logger) []Item {
	out := make([]Item, 0, len(cards))
	for _, c := range cards {
		html, err := Saved(c)
		if err != nil {
			logger.Warn("skipping card that does not render",
				zap.String("key", c.Key), zap.Error(err))
			continue
		}
		out = append(out, Item{Key: c.Key, Title: c.Title, HTML: html})
	}
	return out
}
