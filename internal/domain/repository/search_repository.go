package repository

import (
	"context"

	"flightwatch-service/internal/domain/entity"
)

// SearchRepository defines the interface for saved-search operations
type SearchRepository interface {
	FindActive(ctx context.Context) ([]*entity.Search, error)
	FindByName(ctx context.Context, name string) (*entity.Search, error)
	Insert(ctx context.Context, search *entity.Search) error
	Delete(ctx context.Context, name string) error
}
