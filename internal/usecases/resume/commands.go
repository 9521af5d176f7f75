package resume

import (
	"context"
	"fmt"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
	"github.com/admin/tg-bots/resume-bot/internal/usecases/resume/texts"
)

func (s *Service) HandleCommand(ctx context.Context, event *domain.Event) error {
	switch event.Kind {
	case domain.EventStart:
		return s.HandleStart(ctx, event)
	case domain.EventCancel:
		return s.HandleCancel(ctx, event)
	}

	// в режиме ввода промпта любая строка, включая команды, становится промптом
	sess, err := s.Sessions.Get(ctx, event.UserID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	if sess.State == domain.StateAwaitingNewPrompt {
		return s.savePrompt(ctx, event)
	}

	return s.sendMessage(ctx, event, texts.FormatUnknownCommand(event.Command))
}

// HandleStart приветствие, сбрасывает диалог в Idle
func (s *Service) HandleStart(ctx context.Context, event *domain.Event) error {
	if err := s.setState(ctx, event.UserID, domain.StateIdle); err != nil {
		return err
	}
	return s.sendMessageWithKeyboard(ctx, event, texts.FormatWelcome(s.Config.BotName), s.mainKeyboard())
}

// HandleCancel выходит из ввода промпта, промпт не меняется
func (s *Service) HandleCancel(ctx context.Context, event *domain.Event) error {
	if err := s.setState(ctx, event.UserID, domain.StateIdle); err != nil {
		return err
	}
	return s.sendMessageWithKeyboard(ctx, event, texts.PromptCancelled, s.mainKeyboard())
}

func (s *Service) setState(ctx context.Context, userID domain.UserID, state domain.ConversationState) error {
	_, err := s.Sessions.Update(ctx, userID, func(sess *domain.Session) error {
		sess.State = state
		return nil
	})
	if err != nil {
		s.Log.Error("failed to update conversation state",
			"error", err,
			"user_id", userID,
			"state", state.String(),
		)
		return fmt.Errorf("failed to set state %s: %w", state, err)
	}
	return nil
}
