package app

import (
	"fmt"

	server "github.com/admin/tg-bots/resume-bot/internal/adapters/primary/http"
	alerterAdapter "github.com/admin/tg-bots/resume-bot/internal/adapters/secondary/alerter"
	kafkaAdapter "github.com/admin/tg-bots/resume-bot/internal/adapters/secondary/kafka"
	openaiAdapter "github.com/admin/tg-bots/resume-bot/internal/adapters/secondary/openai"
	"github.com/admin/tg-bots/resume-bot/internal/adapters/secondary/storage/pg"
	s3Adapter "github.com/admin/tg-bots/resume-bot/internal/adapters/secondary/storage/s3"
	"github.com/admin/tg-bots/resume-bot/internal/adapters/secondary/telegram"
	"github.com/admin/tg-bots/resume-bot/internal/pkg/logger"
	"github.com/admin/tg-bots/resume-bot/internal/usecases/resume"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Log      *logger.Config         `envconfig:"LOG"`
	Server   *server.Config         `envconfig:"APISERVER"`
	Telegram *telegram.Config       `envconfig:"TELEGRAM"`
	Resume   *resume.Config         `envconfig:"RESUME"`
	OpenAI   *openaiAdapter.Config  `envconfig:"OPENAI"`
	Postgres *pg.Config             `envconfig:"POSTGRES"`
	S3       *s3Adapter.Config      `envconfig:"S3"`
	Kafka    *kafkaAdapter.Config   `envconfig:"KAFKA"`
	Alerter  *alerterAdapter.Config `envconfig:"ALERTER"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверки, которые envconfig не умеет
func (c *Config) Validate() error {
	if c.Resume == nil {
		return fmt.Errorf("resume config is missing")
	}
	if err := c.Resume.Validate(); err != nil {
		return err
	}

	if c.Telegram == nil {
		return fmt.Errorf("telegram config is missing")
	}
	if c.Telegram.IsWebhookEnabled() && c.Telegram.WebhookURL == "" {
		return fmt.Errorf("webhook_url is required when use_webhook is true")
	}

	return nil
}
