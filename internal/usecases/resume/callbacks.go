package resume

import (
	"context"
	"errors"
	"strings"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
	"github.com/admin/tg-bots/resume-bot/internal/usecases/resume/texts"
)

func (s *Service) HandleCallback(ctx context.Context, event *domain.Event) error {
	switch {
	case event.CallbackData == domain.CallbackCheckSubscription:
		return s.HandleCheckSubscription(ctx, event)
	case strings.HasPrefix(event.CallbackData, domain.CallbackInstructionPrefix):
		return s.HandleInstruction(ctx, event)
	default:
		s.Log.Debug("unknown callback",
			"user_id", event.UserID,
			"data", event.CallbackData,
		)
		s.answerCallback(ctx, event.CallbackID, "", false)
		return nil
	}
}

// HandleCheckSubscription повторная проверка подписки по кнопке
func (s *Service) HandleCheckSubscription(ctx context.Context, event *domain.Event) error {
	subscribed, err := s.Subscription.IsSubscribed(ctx, event.UserID)
	if err != nil {
		s.Log.Warn("subscription check failed",
			"error", err,
			"user_id", event.UserID,
		)
		subscribed = false
	}

	if !subscribed {
		s.answerCallback(ctx, event.CallbackID, texts.NotSubscribedAlert, true)
		return nil
	}

	s.answerCallback(ctx, event.CallbackID, texts.SubscriptionConfirmedAlert, true)
	return s.sendMessageWithKeyboard(ctx, event, texts.SubscriptionThanks, s.mainKeyboard())
}

// HandleInstruction текст и картинки инструкции для платформы
func (s *Service) HandleInstruction(ctx context.Context, event *domain.Event) error {
	defer s.answerCallback(ctx, event.CallbackID, "", false)

	platform := domain.Platform(strings.TrimPrefix(event.CallbackData, domain.CallbackInstructionPrefix))
	if !platform.IsValid() {
		s.Log.Warn("unknown instruction platform",
			"user_id", event.UserID,
			"platform", platform,
		)
		return nil
	}

	if err := s.sendMessage(ctx, event, texts.PlatformInstruction(platform)); err != nil {
		return err
	}

	photos := s.loadInstructionImages(ctx, platform)
	if len(photos) == 0 {
		return nil
	}

	if err := s.TelegramClient.SendMediaGroup(ctx, event.ChatID, photos); err != nil {
		s.Log.Error("failed to send instruction images",
			"error", err,
			"user_id", event.UserID,
			"platform", platform,
		)
		return s.sendMessage(ctx, event, texts.ImagesUnavailable)
	}

	return nil
}

// loadInstructionImages пропускает отсутствующие и битые картинки
func (s *Service) loadInstructionImages(ctx context.Context, platform domain.Platform) []domain.InputPhoto {
	names := platform.ImageNames()
	photos := make([]domain.InputPhoto, 0, len(names))

	for _, name := range names {
		data, err := s.Images.Get(ctx, name)
		if err != nil {
			if !errors.Is(err, domain.ErrImageNotFound) {
				s.Log.Warn("failed to prepare instruction image",
					"error", err,
					"image", name,
				)
			}
			continue
		}
		photos = append(photos, domain.InputPhoto{Filename: name, Data: data})
	}

	return photos
}

// HandleDenied предлагает подписаться и проверить подписку
func (s *Service) HandleDenied(ctx context.Context, event *domain.Event, decision domain.GateDecision) error {
	if event.IsCallback() {
		s.answerCallback(ctx, event.CallbackID, texts.SubscriptionRequiredAlert, true)
	}

	return s.sendMessageWithKeyboard(ctx, event, texts.SubscriptionRequired, s.subscribeKeyboard())
}
