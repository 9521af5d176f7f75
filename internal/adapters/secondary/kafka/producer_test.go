package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/admin/tg-bots/resume-bot/internal/domain"
	"github.com/google/uuid"
)

func TestPublishAnalysis(t *testing.T) {
	cfg := &Config{Brokers: "localhost:9092", Topic: "resume-bot.analyses"}
	mock := mocks.NewSyncProducer(t, newSaramaConfig(cfg))
	producer := newProducer(mock, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	record := &domain.AnalysisRecord{
		ID:             uuid.New(),
		TelegramUserID: 42,
		Model:          "gpt-4o-mini",
		Status:         domain.AnalysisCompleted,
	}

	mock.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "resume-bot.analyses" {
			return errors.New("wrong topic " + msg.Topic)
		}
		key, _ := msg.Key.Encode()
		if string(key) != "42" {
			return errors.New("wrong key " + string(key))
		}
		value, _ := msg.Value.Encode()
		var got domain.AnalysisRecord
		if err := json.Unmarshal(value, &got); err != nil {
			return err
		}
		if got.ID != record.ID || got.Status != domain.AnalysisCompleted {
			return errors.New("wrong payload")
		}
		if len(msg.Headers) != 3 || string(msg.Headers[0].Value) != "resume_analysis" {
			return errors.New("wrong headers")
		}
		return nil
	})

	if err := producer.PublishAnalysis(context.Background(), record); err != nil {
		t.Fatalf("PublishAnalysis: %v", err)
	}
	if err := producer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestSendError(t *testing.T) {
	cfg := &Config{Brokers: "localhost:9092", Topic: "t"}
	mock := mocks.NewSyncProducer(t, newSaramaConfig(cfg))
	producer := newProducer(mock, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	mock.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	err := producer.Send(context.Background(), "k", []byte("v"))
	if !errors.Is(err, sarama.ErrOutOfBrokers) {
		t.Fatalf("expected ErrOutOfBrokers, got %v", err)
	}
	_ = producer.Close()
}

func TestConfigBrokers(t *testing.T) {
	cfg := &Config{Brokers: "a:9092, b:9092,"}
	got := cfg.GetBrokers()
	if len(got) != 2 || got[0] != "a:9092" || got[1] != "b:9092" {
		t.Errorf("unexpected brokers %v", got)
	}

	if (&Config{}).Enabled() {
		t.Error("empty config must be disabled")
	}
}
