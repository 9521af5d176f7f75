package kafka

import (
	"context"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
)

// IKafkaProducer интерфейс для отправки сообщений в Kafka
type IKafkaProducer interface {
	// PublishAnalysis отправляет событие о прогоне анализа
	PublishAnalysis(ctx context.Context, record *domain.AnalysisRecord) error
	// Send отправляет произвольное сообщение
	Send(ctx context.Context, key string, value []byte) error
	// Close закрывает producer
	Close() error
}
