package jobs

import (
	"context"
	"time"
)

// Job фоновая задача планировщика (сейчас только уборка временных файлов)
type Job interface {
	// Name имя для логов и алертов
	Name() string
	// NextRun момент следующего запуска после now
	NextRun(now time.Time) time.Time
	// Run один прогон; ошибка запускает повторы с задержкой
	Run(ctx context.Context) error
}
