package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"log/slog"

	"github.com/IBM/sarama"
	"github.com/admin/tg-bots/resume-bot/internal/domain"
)

const eventResumeAnalysis = "resume_analysis"

// Producer реализация Kafka producer
type Producer struct {
	producer sarama.SyncProducer
	cfg      *Config
	log      *slog.Logger
}

// NewProducer создаёт новый Kafka producer
func NewProducer(cfg *Config, log *slog.Logger) (*Producer, error) {
	producer, err := sarama.NewSyncProducer(cfg.GetBrokers(), newSaramaConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.Info("kafka producer created",
		"brokers", cfg.Brokers,
		"topic", cfg.Topic,
	)

	return newProducer(producer, cfg, log), nil
}

func newProducer(producer sarama.SyncProducer, cfg *Config, log *slog.Logger) *Producer {
	return &Producer{
		producer: producer,
		cfg:      cfg,
		log:      log,
	}
}

func newSaramaConfig(cfg *Config) *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	// Настройка безопасности (если указано)
	if cfg.SecurityProtocol == "SASL_SSL" || cfg.SecurityProtocol == "SASL_PLAINTEXT" {
		config.Net.SASL.Enable = true
		config.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		if cfg.SASLMechanism == "SCRAM-SHA-256" {
			config.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA256
		}
		config.Net.SASL.User = cfg.SASLUsername
		config.Net.SASL.Password = cfg.SASLPassword
		// TLS только для SASL_SSL
		if cfg.SecurityProtocol == "SASL_SSL" {
			config.Net.TLS.Enable = true
		}
	}

	return config
}

// PublishAnalysis отправляет запись анализа, ключ - telegram user id (порядок событий пользователя сохраняется)
func (p *Producer) PublishAnalysis(ctx context.Context, record *domain.AnalysisRecord) error {
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis record: %w", err)
	}

	key := strconv.FormatInt(record.TelegramUserID, 10)
	headers := []sarama.RecordHeader{
		{
			Key:   []byte("event"),
			Value: []byte(eventResumeAnalysis),
		},
		{
			Key:   []byte("analysis_id"),
			Value: []byte(record.ID.String()),
		},
		{
			Key:   []byte("status"),
			Value: []byte(record.Status),
		},
	}

	return p.send(key, value, headers)
}

// Send отправляет произвольное сообщение
func (p *Producer) Send(ctx context.Context, key string, value []byte) error {
	return p.send(key, value, nil)
}

func (p *Producer) send(key string, value []byte, headers []sarama.RecordHeader) error {
	msg := &sarama.ProducerMessage{
		Topic:   p.cfg.Topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(value),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		// Debug для технических деталей
		p.log.Debug("kafka send failed",
			"error", err,
			"topic", p.cfg.Topic,
			"key", key,
		)
		return fmt.Errorf("kafka send failed [topic=%s, key=%s]: %w",
			p.cfg.Topic, key, err)
	}

	p.log.Debug("message sent to kafka",
		"topic", p.cfg.Topic,
		"partition", partition,
		"offset", offset,
		"key", key,
	)

	return nil
}

// Close закрывает producer
func (p *Producer) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	p.log.Info("kafka producer closed")
	return nil
}
