package auth

import (
	"go.uber.org/fx"

	"github.com/featureblastlabs/featureblast/internal/auth/repository"
	"github.com/featureblastlabs/featureblast/internal/auth/service"
	"github.com/featureblastlabs/featureblast/internal/auth/session"
)

var Module = fx.Module("auth",
	fx.Provide(repository.New),
	fx.Provide(service.New),
	fx.Provide(session.NewManager),
)
