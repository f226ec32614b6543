package repository

import (
	"context"
	"encoding/base64"
	"fmt"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository"
	"flightwatch-service/pkg/logger"
	"flightwatch-service/templates"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailRepository delivers flight digests by email through the Gmail API
type GmailRepository struct {
	logger  logger.Logger
	service *gmail.Service
	from    string
	to      string
}

// NewGmailRepository creates a new Gmail notifier
func NewGmailRepository(ctx context.Context, tokenSource oauth2.TokenSource, from, to string, log logger.Logger) (repository.Notifier, error) {
	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return &GmailRepository{
		logger:  log,
		service: service,
		from:    from,
		to:      to,
	}, nil
}

// Name identifies the channel in logs and metrics
func (r *GmailRepository) Name() string {
	return "gmail"
}

// Post sends one digest email about all given flights
func (r *GmailRepository) Post(ctx context.Context, searchName string, flights []entity.FormattedFlight) error {
	body := templates.RenderDigest(searchName, flights)
	if body == "" {
		return nil
	}

	r.logger.Info("Sending digest email", "search", searchName, "flights", len(flights))

	raw := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Flights found for %q search\r\n\r\n%s",
		r.from, r.to, searchName, body)

	message := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(raw)),
	}

	_, err := r.service.Users.Messages.Send("me", message).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to send digest email: %w", err)
	}

	return nil
}
