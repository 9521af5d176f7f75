package telegram

import (
	"context"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
)

// ChatMember участник чата из getChatMember
type ChatMember struct {
	Status domain.ChatMemberStatus `json:"status"`
	User   *domain.TelegramUser    `json:"user,omitempty"`
}

// GetChatMember возвращает статус пользователя в чате или канале (@username или id)
func (c *Client) GetChatMember(ctx context.Context, chatID string, userID int64) (domain.ChatMemberStatus, error) {
	reqBody := struct {
		ChatID string `json:"chat_id"`
		UserID int64  `json:"user_id"`
	}{
		ChatID: chatID,
		UserID: userID,
	}

	var member ChatMember
	if err := c.call(ctx, "getChatMember", reqBody, &member); err != nil {
		c.log.Warn("failed to get chat member",
			"error", err,
			"chat", chatID,
			"user_id", userID,
		)
		return "", err
	}

	c.log.Debug("chat member retrieved",
		"chat", chatID,
		"user_id", userID,
		"status", member.Status,
	)
	return member.Status, nil
}
