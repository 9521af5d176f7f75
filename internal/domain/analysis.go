package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisStatus итог прогона пайплайна
type AnalysisStatus string

const (
	AnalysisCompleted      AnalysisStatus = "completed"
	AnalysisExtractFailed  AnalysisStatus = "extract_failed"
	AnalysisProviderFailed AnalysisStatus = "provider_failed"
	AnalysisDownloadFailed AnalysisStatus = "download_failed"
	AnalysisReplyFailed    AnalysisStatus = "reply_failed"
)

// AnalysisRecord запись журнала анализов
type AnalysisRecord struct {
	ID             uuid.UUID      `json:"id" db:"id"`
	TelegramUserID int64          `json:"telegram_user_id" db:"telegram_user_id"`
	Model          string         `json:"model" db:"model"`
	Status         AnalysisStatus `json:"status" db:"status"`
	TextLength     int            `json:"text_length" db:"text_length"`     // длина извлечённого текста
	ResultLength   int            `json:"result_length" db:"result_length"` // длина ответа модели
	Edited         bool           `json:"edited" db:"edited"`               // был ли шаг редактирования
	ErrorMessage   *string        `json:"error_message,omitempty" db:"error_message"`
	DurationMillis int64          `json:"duration_ms" db:"duration_ms"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
}
