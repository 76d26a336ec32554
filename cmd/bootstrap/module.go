package bootstrap

import (
	"offer-console/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	SessionModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.ConsoleModule,
)
