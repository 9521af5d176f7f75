package openai

import "time"

type Config struct {
	APIKey     string        `envconfig:"API_KEY" required:"true"`
	BaseURL    string        `envconfig:"BASE_URL"` // совместимый прокси, по умолчанию api.openai.com
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"120s"`
	MaxRetries int           `envconfig:"MAX_RETRIES" default:"0"`
}
