package service

import (
	"context"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
)

// IBotService интерфейс для бизнес-логики бота
type IBotService interface {
	HandleCommand(ctx context.Context, event *domain.Event) error
	HandleText(ctx context.Context, event *domain.Event) error
	HandleDocument(ctx context.Context, event *domain.Event) error
	HandleCallback(ctx context.Context, event *domain.Event) error
	// HandleDenied показывает пользователю, как снять ограничение гейта
	HandleDenied(ctx context.Context, event *domain.Event, decision domain.GateDecision) error
}
