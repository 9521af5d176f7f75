package session

import (
	"context"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
)

// UpdateFunc меняет сессию на месте; ошибка отменяет изменение
type UpdateFunc func(s *domain.Session) error

// IStore хранилище сессий пользователей
type IStore interface {
	// Get возвращает копию сессии, для неизвестного пользователя - нулевую
	Get(ctx context.Context, userID domain.UserID) (domain.Session, error)
	// Update атомарно выполняет read-modify-write и возвращает новую сессию
	Update(ctx context.Context, userID domain.UserID, fn UpdateFunc) (domain.Session, error)
}
