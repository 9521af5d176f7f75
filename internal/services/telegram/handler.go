package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
)

const chatTypePrivate = "private"

// Dispatch обрабатывает апдейт в отдельной горутине
func (s *Service) Dispatch(update *domain.Update) {
	if update == nil {
		return
	}
	if s.ctx.Err() != nil {
		s.log.Warn("dropping update after shutdown", "update_id", update.UpdateID)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("panic while handling update",
					"panic", r,
					"update_id", update.UpdateID,
				)
			}
		}()

		if err := s.HandleUpdate(s.ctx, update); err != nil {
			s.logHandleError(err, update.UpdateID)
		}
	}()
}

func (s *Service) logHandleError(err error, updateID int64) {
	// уже залогировано и показано пользователю
	if domain.IsBusinessError(err) {
		s.log.Debug("update handled with business error",
			"error", err,
			"update_id", updateID,
		)
		return
	}
	s.log.Error("failed to handle update",
		"error", err,
		"update_id", updateID,
	)
}

// HandleUpdate Основной метод для обработки всех типов обновлений
func (s *Service) HandleUpdate(ctx context.Context, update *domain.Update) error {
	if update == nil {
		return fmt.Errorf("update is nil")
	}

	event := s.classify(update)
	if event == nil {
		return nil
	}

	decision := s.gate.Allow(ctx, event.UserID, event.Kind)
	if !decision.Allowed {
		s.log.Info("event denied by gate",
			"user_id", event.UserID,
			"event", event.Kind.String(),
			"reason", decision.Reason,
			"update_id", event.UpdateID,
		)
		return s.bot.HandleDenied(ctx, event, decision)
	}

	return s.route(ctx, event)
}

// route передаёт событие в usecase по его виду
func (s *Service) route(ctx context.Context, event *domain.Event) error {
	switch event.Kind {
	case domain.EventStart, domain.EventCancel, domain.EventCommand:
		return s.bot.HandleCommand(ctx, event)
	case domain.EventDocument:
		return s.bot.HandleDocument(ctx, event)
	case domain.EventCheckSubscription, domain.EventCallback:
		return s.bot.HandleCallback(ctx, event)
	default:
		return s.bot.HandleText(ctx, event)
	}
}

// classify превращает апдейт в событие, nil - апдейт игнорируется
func (s *Service) classify(update *domain.Update) *domain.Event {
	switch {
	case update.Message != nil:
		return s.classifyMessage(update.Message, update.UpdateID)
	case update.CallbackQuery != nil:
		return s.classifyCallback(update.CallbackQuery, update.UpdateID)
	default:
		s.log.Debug("ignoring unsupported update", "update_id", update.UpdateID)
		return nil
	}
}

func (s *Service) classifyMessage(message *domain.Message, updateID int64) *domain.Event {
	if message.From == nil || message.From.IsBot {
		s.log.Debug("ignoring message from bot", "update_id", updateID)
		return nil
	}

	if message.Chat == nil || message.Chat.Type != chatTypePrivate {
		chatType := ""
		if message.Chat != nil {
			chatType = message.Chat.Type
		}
		s.log.Warn("ignoring message from group/chat",
			"update_id", updateID,
			"chat_type", chatType,
		)
		return nil
	}

	event := &domain.Event{
		UpdateID:  updateID,
		UserID:    domain.UserID(message.From.ID),
		ChatID:    message.Chat.ID,
		MessageID: message.MessageID,
	}

	if message.Document != nil {
		event.Kind = domain.EventDocument
		event.Document = message.Document
		return event
	}

	if message.Text == nil {
		s.log.Debug("ignoring message without text", "update_id", updateID)
		return nil
	}

	event.Text = *message.Text
	if IsCommand(event.Text) {
		event.Command = ParseCommand(event.Text)
		switch event.Command {
		case "start":
			event.Kind = domain.EventStart
		case "cancel":
			event.Kind = domain.EventCancel
		default:
			event.Kind = domain.EventCommand
		}
		return event
	}

	if event.Text == domain.ButtonInstructions {
		event.Kind = domain.EventInstructions
	} else {
		event.Kind = domain.EventText
	}
	return event
}

func (s *Service) classifyCallback(query *domain.CallbackQuery, updateID int64) *domain.Event {
	if query.From == nil || query.From.IsBot {
		s.log.Debug("ignoring callback from bot", "update_id", updateID)
		return nil
	}

	chatID := query.From.ID
	var messageID int64
	if query.Message != nil && query.Message.Chat != nil {
		if query.Message.Chat.Type != chatTypePrivate {
			s.log.Warn("ignoring callback from group/chat",
				"update_id", updateID,
				"chat_type", query.Message.Chat.Type,
			)
			return nil
		}
		chatID = query.Message.Chat.ID
		messageID = query.Message.MessageID
	}

	event := &domain.Event{
		Kind:       domain.EventCallback,
		UpdateID:   updateID,
		UserID:     domain.UserID(query.From.ID),
		ChatID:     chatID,
		MessageID:  messageID,
		CallbackID: query.ID,
	}
	if query.Data != nil {
		event.CallbackData = *query.Data
	}
	if event.CallbackData == domain.CallbackCheckSubscription {
		event.Kind = domain.EventCheckSubscription
	}
	return event
}

func ParseCommand(text string) string {
	text = strings.TrimPrefix(text, "/")

	if idx := strings.Index(text, "@"); idx != -1 {
		text = text[:idx]
	}

	if idx := strings.Index(text, " "); idx != -1 {
		text = text[:idx]
	}

	return text
}

func IsCommand(text string) bool {
	return len(text) > 0 && text[0] == '/'
}
