package service

import (
	"context"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
)

// IGateService решает, пропускать ли событие пользователя
type IGateService interface {
	Allow(ctx context.Context, userID domain.UserID, kind domain.EventKind) domain.GateDecision
}

// ISubscriptionChecker проверяет подписку пользователя на канал
type ISubscriptionChecker interface {
	IsSubscribed(ctx context.Context, userID domain.UserID) (bool, error)
}
