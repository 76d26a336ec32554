package bootstrap

import (
	"offer-console/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.APIConfig { return cfg.API },
		func(cfg config.Config) config.SessionConfig { return cfg.Session },
		func(cfg config.Config) config.ListConfig { return cfg.List },
		func(cfg config.Config) config.LogConfig { return cfg.Log },
	),
)
