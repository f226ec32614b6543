package repository

import (
	"context"

	"flightwatch-service/internal/domain/entity"
)

// Notifier delivers the flights found for one search to a channel
// (Telegram chat, VK wall, email digest). Implementations render the
// flights into a single bulk message.
type Notifier interface {
	Name() string
	Post(ctx context.Context, searchName string, flights []entity.FormattedFlight) error
}
