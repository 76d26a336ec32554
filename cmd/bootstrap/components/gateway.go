package components

import (
	"offer-console/internal/infra/api"
	"offer-console/internal/usecase/commands"
	"offer-console/internal/usecase/queries"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		api.NewClient,
		func(c *api.Client) queries.OfferListGateway { return c },
		func(c *api.Client) queries.UserSearchGateway { return c },
		func(c *api.Client) queries.DashboardGateway { return c },
		func(c *api.Client) commands.OffersGateway { return c },
	),
)
