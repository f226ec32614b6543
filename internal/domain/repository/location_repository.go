package repository

import (
	"context"

	"flightwatch-service/internal/domain/entity"
)

// LocationRepository defines the interface for IATA location lookups
type LocationRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Location, error)
	GetAll(ctx context.Context) ([]*entity.Location, error)
}
