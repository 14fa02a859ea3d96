// internal/app/system/seeding/seeding.go
package seeding

import (
	"context"
	"fmt"

	"github.com/dalemusser/stratacard/internal/domain/models"
	"go.uber.org/zap"
)

// CardStore is the part of the stat card store seeding needs.
type CardStore interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, card models.StatCard) (models.StatCard, error)
}

// DemoCards is the set inserted into an empty dashboard.
func DemoCards() []models.StatCard {
	return []models.StatCard{
		{Title: "Revenue", Value: "$48,200", Icon: "dollar", Trend: "up", TrendValue: "12%", Subtitle: "vs last month"},
		{Title: "Active users", Value: "1,284", Icon: "users", Trend: "up", TrendValue: "3.1%", Variant: "success"},
		{Title: "Errors", Value: "3", Icon: "alert", Trend: "down", TrendValue: "40%", Variant: "destructive", Subtitle: "last 24 hours"},
		{Title: "p95 latency", Value: "182ms", Icon: "clock", Trend: "neutral", TrendValue: "0%", Variant: "warning"},
		{Title: "Uptime", Value: "99.95%", Icon: "server", Subtitle: "rolling 30 days"},
	}
}

// SeedDemoCards inserts DemoCards when the collection has no cards.
// It reports how many cards were inserted.
func SeedDemoCards(ctx context.Context, store CardStore, logger *zap.Logger) (int, error) {
	n, err := store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count stat cards: %w", err)
	}
	if n > 0 {
		logger.Debug("stat cards present, skipping demo seed", zap.Int64("count", n))
		return 0, nil
	}

	inserted := 0
	for _, card := range DemoCards() {
		if _, err := store.Create(ctx, card); err != nil {
			return inserted, fmt.Errorf("seed %q: %w", card.Title, err)
		}
		inserted++
	}
	logger.Info("seeded demo stat cards", zap.Int("count", inserted))
	return inserted, nil
}
