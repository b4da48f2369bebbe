package settings

import (
	"go.uber.org/fx"

	"github.com/featureblastlabs/featureblast/internal/settings/repository"
	"github.com/featureblastlabs/featureblast/internal/settings/service"
)

var Module = fx.Module("settings",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
