package misc

import (
	"context"

	"github.com/vlatan/block-site/internal/config"
	"github.com/vlatan/block-site/internal/ui"
)

// HealthChecker reports the status of a dependency
type HealthChecker interface {
	Health(ctx context.Context) map[string]any
}

type Service struct {
	config *config.Config
	cms    HealthChecker
	rdb    HealthChecker
	ui     ui.Service
}

// New creates the misc handlers, rdb is nil when caching is off
func New(config *config.Config, cms, rdb HealthChecker, ui ui.Service) *Service {
	return &Service{
		config: config,
		cms:    cms,
		rdb:    rdb,
		ui:     ui,
	}
}
