package repository

import (
	"context"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
)

type IAnalysisRepo interface {
	Create(ctx context.Context, record *domain.AnalysisRecord) error
	ListByUser(ctx context.Context, telegramUserID int64, limit int) ([]*domain.AnalysisRecord, error)
}
