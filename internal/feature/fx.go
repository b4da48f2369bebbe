package feature

import (
	"go.uber.org/fx"

	"github.com/featureblastlabs/featureblast/internal/feature/repository"
	"github.com/featureblastlabs/featureblast/internal/feature/service"
)

var Module = fx.Module("feature",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
