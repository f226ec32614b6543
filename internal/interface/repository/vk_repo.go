package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository"
	"flightwatch-service/pkg/logger"
	"flightwatch-service/templates"
)

const vkWallPostURL = "https://api.vk.com/method/wall.post"

// vkAPIVersion is pinned; wall.post behavior differs across versions.
const vkAPIVersion = "5.52"

// VKRepository posts flight digests to a VK group wall
type VKRepository struct {
	logger  logger.Logger
	client  *http.Client
	token   string
	ownerID string
}

// NewVKRepository creates a new VK wall notifier
func NewVKRepository(token, ownerID string, log logger.Logger) repository.Notifier {
	return &VKRepository{
		logger:  log,
		client:  &http.Client{Timeout: 30 * time.Second},
		token:   token,
		ownerID: ownerID,
	}
}

// Name identifies the channel in logs and metrics
func (r *VKRepository) Name() string {
	return "vk"
}

// Post publishes one wall post about all given flights
func (r *VKRepository) Post(ctx context.Context, searchName string, flights []entity.FormattedFlight) error {
	message := templates.RenderDigest(searchName, flights)
	if message == "" {
		return nil
	}

	r.logger.Info("Posting digest to VK", "search", searchName, "flights", len(flights))

	form := url.Values{}
	form.Set("access_token", r.token)
	form.Set("owner_id", r.ownerID)
	form.Set("from_group", "1")
	form.Set("message", message)
	form.Set("signed", "0")
	form.Set("v", vkAPIVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, vkWallPostURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post to VK: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("VK API returned status %d", resp.StatusCode)
	}

	var response struct {
		Error *struct {
			ErrorCode int    `json:"error_code"`
			ErrorMsg  string `json:"error_msg"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if response.Error != nil {
		return fmt.Errorf("VK API error %d: %s", response.Error.ErrorCode, response.Error.ErrorMsg)
	}

	return nil
}
