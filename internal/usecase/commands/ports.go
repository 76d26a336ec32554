package commands

import (
	"context"

	"offer-console/internal/infra/api"
)

// OffersGateway is the create side of the remote offers collection.
type OffersGateway interface {
	CreateOffer(ctx context.Context, req api.CreateOfferRequest) (*api.CreateOfferResponse, error)
}
