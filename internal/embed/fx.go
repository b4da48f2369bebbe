package embed

import (
	"go.uber.org/fx"

	"github.com/featureblastlabs/featureblast/internal/embed/service"
)

var Module = fx.Module("embed",
	fx.Provide(service.New),
)
