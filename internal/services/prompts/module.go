package prompts

import (
	"context"
	"log/slog"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
	"github.com/admin/tg-bots/resume-bot/internal/ports/service"
	"github.com/admin/tg-bots/resume-bot/internal/ports/session"
)

// Store промпты пользователей поверх хранилища сессий
type Store struct {
	sessions      session.IStore
	defaultPrompt string
	log           *slog.Logger
}

var _ service.IPromptStore = (*Store)(nil)

func New(sessions session.IStore, defaultPrompt string, log *slog.Logger) *Store {
	return &Store{
		sessions:      sessions,
		defaultPrompt: defaultPrompt,
		log:           log,
	}
}

// GetPrompt возвращает промпт пользователя или промпт по умолчанию
func (s *Store) GetPrompt(ctx context.Context, userID domain.UserID) string {
	sess, err := s.sessions.Get(ctx, userID)
	if err != nil {
		s.log.Warn("failed to get session, using default prompt",
			"error", err,
			"user_id", userID,
		)
		return s.defaultPrompt
	}

	if sess.PromptOverride == nil {
		return s.defaultPrompt
	}
	return *sess.PromptOverride
}

// SetPrompt сохраняет текст как есть, пустая строка тоже валидный промпт
func (s *Store) SetPrompt(ctx context.Context, userID domain.UserID, text string) error {
	_, err := s.sessions.Update(ctx, userID, func(sess *domain.Session) error {
		sess.PromptOverride = &text
		return nil
	})
	return err
}

// ResetPrompt удаляет пользовательский промпт
func (s *Store) ResetPrompt(ctx context.Context, userID domain.UserID) error {
	_, err := s.sessions.Update(ctx, userID, func(sess *domain.Session) error {
		sess.PromptOverride = nil
		return nil
	})
	return err
}
