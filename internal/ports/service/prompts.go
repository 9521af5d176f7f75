package service

import (
	"context"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
)

// IPromptStore промпты пользователей с откатом на промпт по умолчанию
type IPromptStore interface {
	GetPrompt(ctx context.Context, userID domain.UserID) string
	SetPrompt(ctx context.Context, userID domain.UserID, text string) error
	ResetPrompt(ctx context.Context, userID domain.UserID) error
}
