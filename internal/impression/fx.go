package impression

import (
	"go.uber.org/fx"

	"github.com/featureblastlabs/featureblast/internal/impression/repository"
	"github.com/featureblastlabs/featureblast/internal/impression/service"
)

var Module = fx.Module("impression",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
