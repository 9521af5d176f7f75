package gate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
)

// ErrChannelNotConfigured не задан канал для проверки подписки
var ErrChannelNotConfigured = errors.New("subscription channel is not configured")

// ChatMemberGetter часть Telegram клиента, нужная для проверки подписки
type ChatMemberGetter interface {
	GetChatMember(ctx context.Context, chatID string, userID int64) (domain.ChatMemberStatus, error)
}

// ChannelChecker проверяет подписку через getChatMember
type ChannelChecker struct {
	client  ChatMemberGetter
	channel string
	log     *slog.Logger
}

func NewChannelChecker(client ChatMemberGetter, channel string, log *slog.Logger) *ChannelChecker {
	return &ChannelChecker{
		client:  client,
		channel: NormalizeChannel(channel),
		log:     log,
	}
}

// IsSubscribed creator, administrator и member считаются подписчиками
func (c *ChannelChecker) IsSubscribed(ctx context.Context, userID domain.UserID) (bool, error) {
	if c.channel == "" {
		c.log.Error("subscription channel is not configured", "user_id", userID)
		return false, ErrChannelNotConfigured
	}

	status, err := c.client.GetChatMember(ctx, c.channel, int64(userID))
	if err != nil {
		return false, fmt.Errorf("failed to get chat member: %w", err)
	}

	return status.IsSubscribed(), nil
}

// NormalizeChannel приводит username канала к виду @name, числовой id оставляет как есть
func NormalizeChannel(channel string) string {
	channel = strings.TrimSpace(channel)
	channel = strings.TrimPrefix(channel, "https://t.me/")
	if channel == "" || strings.HasPrefix(channel, "@") || strings.HasPrefix(channel, "-") {
		return channel
	}
	return "@" + channel
}
