// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/stratacard/internal/app/resources"
	statcardstore "github.com/dalemusser/stratacard/internal/app/store/statcards"
	"github.com/dalemusser/stratacard/internal/app/system/seeding"
	"github.com/dalemusser/stratacard/internal/app/system/timeouts"
	"github.com/dalemusser/stratacard/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs once after the schema is in place and before the handler
// is built. A returned error aborts startup.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	viewdata.Init(appCfg.SiteName)
	timeouts.Configure(timeouts.Config{Query: appCfg.QueryTimeout})

	if appCfg.SeedDemoCards {
		if _, err := seeding.SeedDemoCards(ctx, statcardstore.New(deps.MongoDatabase), logger); err != nil {
			logger.Error("failed to seed demo cards", zap.Error(err))
			return err
		}
	}

	return nil
}
