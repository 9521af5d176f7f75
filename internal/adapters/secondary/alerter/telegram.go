package alerter

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/admin/tg-bots/resume-bot/internal/adapters/secondary/telegram"
)

//согл, что чистота нарушена, но тут выбор в пользу делегирования ответственности другому адаптеру

// Client клиент для отправки алертов через Telegram
type Client struct {
	telegramClient  *telegram.Client
	chatID          int64
	messageThreadID *int64
	log             *slog.Logger
}

// NewClient создаёт новый клиент для отправки алертов
func NewClient(cfg *Config, log *slog.Logger) *Client {
	return NewClientWithTelegram(telegram.NewClient(cfg.BotToken, log), cfg, log)
}

// NewClientWithTelegram алерты через уже созданный telegram клиент
func NewClientWithTelegram(tgClient *telegram.Client, cfg *Config, log *slog.Logger) *Client {
	return &Client{
		telegramClient:  tgClient,
		chatID:          cfg.ChatID,
		messageThreadID: cfg.MessageThreadID,
		log:             log,
	}
}

// SendAlert отправляет алерт в Telegram группу (или топик форума)
func (c *Client) SendAlert(ctx context.Context, message string) error {
	if c == nil || c.telegramClient == nil {
		return fmt.Errorf("alerter client is not initialized")
	}

	req := telegram.SendMessageRequest{
		ChatID:          c.chatID,
		Text:            message,
		MessageThreadID: c.messageThreadID,
	}

	if _, err := c.telegramClient.SendMessageWithRequest(ctx, req); err != nil {
		c.log.Warn("failed to send alert",
			"error", err,
			"chat_id", c.chatID,
			"message_thread_id", c.messageThreadID,
		)
		return fmt.Errorf("failed to send alert: %w", err)
	}

	c.log.Debug("alert sent successfully",
		"chat_id", c.chatID,
		"message_thread_id", c.messageThreadID,
	)

	return nil
}
