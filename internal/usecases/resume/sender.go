package resume

import (
	"context"
	"fmt"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
)

// replyTarget на сообщения пользователя отвечаем реплаем, на нажатия кнопок обычным сообщением
func replyTarget(event *domain.Event) int64 {
	if event.IsCallback() {
		return 0
	}
	return event.MessageID
}

// sendMessage отправляет сообщение пользователю через Telegram Client
func (s *Service) sendMessage(ctx context.Context, event *domain.Event, text string) error {
	if err := s.TelegramClient.SendMessage(ctx, event.ChatID, replyTarget(event), text); err != nil {
		s.Log.Error("failed to send message",
			"error", err,
			"chat_id", event.ChatID,
		)
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

// sendMessageWithKeyboard отправляет сообщение с клавиатурой
func (s *Service) sendMessageWithKeyboard(ctx context.Context, event *domain.Event, text string, keyboard map[string]interface{}) error {
	if err := s.TelegramClient.SendMessageWithKeyboard(ctx, event.ChatID, replyTarget(event), text, keyboard); err != nil {
		s.Log.Error("failed to send message with keyboard",
			"error", err,
			"chat_id", event.ChatID,
		)
		return fmt.Errorf("failed to send message with keyboard: %w", err)
	}

	return nil
}

// sendChunks отправляет заголовок и текст кусками по MaxMessageLength
func (s *Service) sendChunks(ctx context.Context, event *domain.Event, header, text string) error {
	if err := s.sendMessage(ctx, event, header); err != nil {
		return err
	}

	for i, chunk := range SplitChunks(text, MaxMessageLength) {
		if err := s.sendMessage(ctx, event, chunk); err != nil {
			return fmt.Errorf("chunk %d: %w", i, err)
		}
	}

	return nil
}

// answerCallback отвечает на callback query, ошибка только логируется
func (s *Service) answerCallback(ctx context.Context, callbackID, text string, showAlert bool) {
	if callbackID == "" {
		return
	}
	if err := s.TelegramClient.AnswerCallbackQuery(ctx, callbackID, text, showAlert); err != nil {
		s.Log.Warn("failed to answer callback query",
			"error", err,
			"callback_id", callbackID,
		)
	}
}

// alert сообщение оператору, без алертера ничего не делает
func (s *Service) alert(ctx context.Context, message string) {
	if s.Alerter == nil {
		return
	}
	if err := s.Alerter.SendAlert(ctx, message); err != nil {
		s.Log.Warn("failed to send alert", "error", err)
	}
}
