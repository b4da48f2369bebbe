package team

import (
	"go.uber.org/fx"

	"github.com/featureblastlabs/featureblast/internal/team/repository"
	"github.com/featureblastlabs/featureblast/internal/team/service"
)

var Module = fx.Module("team",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
