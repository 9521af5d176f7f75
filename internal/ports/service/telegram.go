package service

import (
	"github.com/admin/tg-bots/resume-bot/internal/domain"
)

// IUpdateDispatcher принимает апдейты Telegram в обработку
type IUpdateDispatcher interface {
	// Dispatch ставит апдейт в обработку и сразу возвращает управление
	Dispatch(update *domain.Update)
}
