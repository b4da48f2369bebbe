package ai

import (
	"go.uber.org/fx"

	"github.com/featureblastlabs/featureblast/internal/config"
)

var Module = fx.Module("ai",
	fx.Provide(func(cfg config.Config) Provider {
		return NewOpenAIProvider(cfg.AI)
	}),
)
