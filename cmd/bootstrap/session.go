package bootstrap

import (
	"offer-console/internal/pkg/clock"
	"offer-console/internal/pkg/config"
	"offer-console/internal/pkg/session"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		clock.NewRealClock,
		NewCredentialsProvider,
	),
)

func NewCredentialsProvider(cfg config.SessionConfig, clk clock.Clock) session.CredentialsProvider {
	return session.NewStaticProvider(cfg.Token, clk)
}
