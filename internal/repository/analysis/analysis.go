package analysisRepo

import (
	"context"
	"fmt"
	"strings"

	"log/slog"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
	"github.com/admin/tg-bots/resume-bot/internal/ports/persistence"
	ports "github.com/admin/tg-bots/resume-bot/internal/ports/repository"
)

const defaultListLimit = 20

type analysisColumns struct {
	TableName      string
	ID             string
	TelegramUserID string
	Model          string
	Status         string
	TextLength     string
	ResultLength   string
	Edited         string
	ErrorMessage   string
	DurationMillis string
	CreatedAt      string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns analysisColumns
}

// New создаёт репозиторий журнала анализов
func New(db persistence.Persistence, log *slog.Logger) ports.IAnalysisRepo {
	cols := analysisColumns{
		TableName:      "analyses",
		ID:             "id",
		TelegramUserID: "telegram_user_id",
		Model:          "model",
		Status:         "status",
		TextLength:     "text_length",
		ResultLength:   "result_length",
		Edited:         "edited",
		ErrorMessage:   "error_message",
		DurationMillis: "duration_ms",
		CreatedAt:      "created_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

func (r *Repository) columnList() []string {
	return []string{
		r.columns.ID,
		r.columns.TelegramUserID,
		r.columns.Model,
		r.columns.Status,
		r.columns.TextLength,
		r.columns.ResultLength,
		r.columns.Edited,
		r.columns.ErrorMessage,
		r.columns.DurationMillis,
		r.columns.CreatedAt,
	}
}

// allColumns возвращает строку со всеми колонками
func (r *Repository) allColumns() string {
	return strings.Join(r.columnList(), ", ")
}

// Create сохраняет запись о прогоне анализа
func (r *Repository) Create(ctx context.Context, record *domain.AnalysisRecord) error {
	cols := r.columnList()
	named := make([]string, len(cols))
	for i, c := range cols {
		named[i] = ":" + c
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		r.columns.TableName,
		r.allColumns(),
		strings.Join(named, ", "))

	if err := r.db.NamedExec(ctx, query, record); err != nil {
		r.Log.Error("failed to create analysis record",
			"error", err,
			"analysis_id", record.ID,
			"telegram_user_id", record.TelegramUserID)
		return fmt.Errorf("failed to create analysis record: %w", err)
	}

	r.Log.Debug("analysis record created",
		"analysis_id", record.ID,
		"telegram_user_id", record.TelegramUserID,
		"status", record.Status)
	return nil
}

// ListByUser последние записи пользователя, новые первыми
func (r *Repository) ListByUser(ctx context.Context, telegramUserID int64, limit int) ([]*domain.AnalysisRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	var records []*domain.AnalysisRecord
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC LIMIT $2`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.TelegramUserID,
		r.columns.CreatedAt)

	if err := r.db.Select(ctx, &records, query, telegramUserID, limit); err != nil {
		r.Log.Error("failed to list analyses by user",
			"error", err,
			"telegram_user_id", telegramUserID)
		return nil, fmt.Errorf("failed to list analyses by user: %w", err)
	}

	r.Log.Debug("analyses retrieved successfully",
		"telegram_user_id", telegramUserID,
		"count", len(records))
	return records, nil
}
