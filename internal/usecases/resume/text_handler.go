package resume

import (
	"context"
	"fmt"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
	"github.com/admin/tg-bots/resume-bot/internal/usecases/resume/texts"
)

func (s *Service) HandleText(ctx context.Context, event *domain.Event) error {
	sess, err := s.Sessions.Get(ctx, event.UserID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	if sess.State == domain.StateAwaitingNewPrompt {
		return s.savePrompt(ctx, event)
	}

	switch event.Text {
	case domain.ButtonEditPrompt:
		return s.HandleEditPrompt(ctx, event)
	case domain.ButtonResetPrompt:
		return s.HandleResetPrompt(ctx, event)
	case domain.ButtonInstructions:
		return s.sendMessageWithKeyboard(ctx, event, texts.ChoosePlatform, platformKeyboard())
	}

	if s.Config.SelectionRequired() && s.Config.HasModel(event.Text) {
		return s.HandleSelectModel(ctx, event)
	}

	s.Log.Debug("ignoring text message",
		"user_id", event.UserID,
		"text_length", len(event.Text),
	)
	return nil
}

// HandleEditPrompt показывает текущий промпт и ждёт новый
func (s *Service) HandleEditPrompt(ctx context.Context, event *domain.Event) error {
	current := s.Prompts.GetPrompt(ctx, event.UserID)

	if err := s.setState(ctx, event.UserID, domain.StateAwaitingNewPrompt); err != nil {
		return err
	}

	return s.sendMessageWithKeyboard(ctx, event, texts.FormatEditPrompt(current), removeKeyboard())
}

// HandleResetPrompt возвращает промпт по умолчанию
func (s *Service) HandleResetPrompt(ctx context.Context, event *domain.Event) error {
	if err := s.Prompts.ResetPrompt(ctx, event.UserID); err != nil {
		s.Log.Error("failed to reset prompt",
			"error", err,
			"user_id", event.UserID,
		)
		return fmt.Errorf("failed to reset prompt: %w", err)
	}

	return s.sendMessageWithKeyboard(ctx, event, texts.PromptReset, s.mainKeyboard())
}

// HandleSelectModel запоминает выбранную модель
func (s *Service) HandleSelectModel(ctx context.Context, event *domain.Event) error {
	_, err := s.Sessions.Update(ctx, event.UserID, func(sess *domain.Session) error {
		sess.Model = event.Text
		return nil
	})
	if err != nil {
		s.Log.Error("failed to save model selection",
			"error", err,
			"user_id", event.UserID,
			"model", event.Text,
		)
		return fmt.Errorf("failed to save model selection: %w", err)
	}

	return s.sendMessageWithKeyboard(ctx, event, texts.ModelSelected, s.mainKeyboard())
}

// savePrompt сохраняет текст как есть и возвращает диалог в Idle
func (s *Service) savePrompt(ctx context.Context, event *domain.Event) error {
	if err := s.Prompts.SetPrompt(ctx, event.UserID, event.Text); err != nil {
		s.Log.Error("failed to save prompt",
			"error", err,
			"user_id", event.UserID,
		)
		return fmt.Errorf("failed to save prompt: %w", err)
	}

	if err := s.setState(ctx, event.UserID, domain.StateIdle); err != nil {
		return err
	}

	return s.sendMessageWithKeyboard(ctx, event, texts.PromptSaved, s.mainKeyboard())
}
