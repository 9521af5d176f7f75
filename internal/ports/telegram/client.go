package telegram

import (
	"context"
	"io"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
)

// IClient интерфейс для клиента Telegram API
type IClient interface {
	// replyTo - id сообщения пользователя, 0 для обычной отправки
	SendMessage(ctx context.Context, chatID int64, replyTo int64, text string) error
	SendMessageWithKeyboard(ctx context.Context, chatID int64, replyTo int64, text string, keyboard map[string]interface{}) error
	AnswerCallbackQuery(ctx context.Context, callbackID string, text string, showAlert bool) error
	SendMediaGroup(ctx context.Context, chatID int64, photos []domain.InputPhoto) error
	GetFile(ctx context.Context, fileID string) (*domain.File, error)
	DownloadFile(ctx context.Context, filePath string, dst io.Writer) error
	GetChatMember(ctx context.Context, chatID string, userID int64) (domain.ChatMemberStatus, error)
}
