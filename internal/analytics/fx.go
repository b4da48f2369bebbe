package analytics

import (
	"go.uber.org/fx"

	"github.com/featureblastlabs/featureblast/internal/analytics/service"
)

var Module = fx.Module("analytics",
	fx.Provide(service.New),
)
