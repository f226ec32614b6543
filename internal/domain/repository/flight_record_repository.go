package repository

import (
	"context"

	"flightwatch-service/internal/domain/entity"
)

// FlightRecordRepository defines the interface for the flight history
// store. Records expire on a rolling window; identity is the
// (destination, price, departure, arrival) compound key.
type FlightRecordRepository interface {
	// FilterNew persists the given flights and returns only those not
	// seen before. Flights colliding with an existing record are
	// dropped from the result.
	FilterNew(ctx context.Context, flights []entity.FormattedFlight) ([]entity.FormattedFlight, error)
}
