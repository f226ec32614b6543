package repository

import (
	"context"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/pkg/utils"
)

// PriceRepository fetches latest flight prices from the external
// provider, one query per destination code per scanned month.
type PriceRepository interface {
	GetLatest(ctx context.Context, destinations []string, months []utils.Month) ([]entity.Flight, error)
}
