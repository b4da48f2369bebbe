package announcement

import (
	"go.uber.org/fx"

	"github.com/featureblastlabs/featureblast/internal/announcement/service"
)

var Module = fx.Module("announcement",
	fx.Provide(service.New),
)
