package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository"
	"flightwatch-service/pkg/logger"
	"flightwatch-service/pkg/utils"
)

const latestPricesURL = "http://api.travelpayouts.com/v2/prices/latest"

// TravelpayoutsRepository fetches latest prices from the Travelpayouts
// API, one request per destination per scanned month.
type TravelpayoutsRepository struct {
	logger logger.Logger
	client *http.Client
	token  string
	origin string
}

// NewTravelpayoutsRepository creates a new Travelpayouts price repository
func NewTravelpayoutsRepository(token, origin string, log logger.Logger) repository.PriceRepository {
	return &TravelpayoutsRepository{
		logger: log,
		client: &http.Client{Timeout: 30 * time.Second},
		token:  token,
		origin: origin,
	}
}

// GetLatest returns prices found by the provider over the last 48
// hours for the given destinations and months. The per-request data
// arrays are concatenated in request order.
func (r *TravelpayoutsRepository) GetLatest(ctx context.Context, destinations []string, months []utils.Month) ([]entity.Flight, error) {
	var found []entity.Flight

	for _, month := range months {
		for _, destination := range destinations {
			r.logger.Debug("Searching for flights",
				"origin", r.origin,
				"destination", destination,
				"month", month.Name)

			flights, err := r.fetchMonth(ctx, destination, month)
			if err != nil {
				return nil, err
			}
			found = append(found, flights...)
		}
	}

	r.logger.Info("Fetched latest flights", "count", len(found))
	return found, nil
}

func (r *TravelpayoutsRepository) fetchMonth(ctx context.Context, destination string, month utils.Month) ([]entity.Flight, error) {
	params := url.Values{}
	params.Set("token", r.token)
	params.Set("origin", r.origin)
	params.Set("destination", destination)
	params.Set("beginning_of_period", month.FirstDay.Format(entity.DateLayout))
	params.Set("period_type", "month")
	params.Set("limit", "1000")
	params.Set("show_to_affiliates", "false")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, latestPricesURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query prices: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("price API returned status %d", resp.StatusCode)
	}

	var response struct {
		Success bool            `json:"success"`
		Data    []entity.Flight `json:"data"`
		Error   string          `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if !response.Success && response.Error != "" {
		return nil, fmt.Errorf("price API error: %s", response.Error)
	}

	return response.Data, nil
}
