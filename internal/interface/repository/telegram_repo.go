package repository

import (
	"context"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository"
	"flightwatch-service/pkg/logger"
	"flightwatch-service/templates"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramRepository posts flight digests to a Telegram chat
type TelegramRepository struct {
	logger logger.Logger
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramRepository creates a new Telegram notifier
func NewTelegramRepository(token string, chatID int64, log logger.Logger) (repository.Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &TelegramRepository{
		logger: log,
		bot:    bot,
		chatID: chatID,
	}, nil
}

// Name identifies the channel in logs and metrics
func (r *TelegramRepository) Name() string {
	return "telegram"
}

// Post sends one bulk message about all given flights
func (r *TelegramRepository) Post(ctx context.Context, searchName string, flights []entity.FormattedFlight) error {
	message := templates.RenderDigest(searchName, flights)
	if message == "" {
		return nil
	}

	r.logger.Info("Posting digest to Telegram", "search", searchName, "flights", len(flights))

	_, err := r.bot.Send(tgbotapi.NewMessage(r.chatID, message))
	return err
}
