package kafka

import (
	"strings"
)

// Config конфигурация Kafka producer
type Config struct {
	Brokers          string `envconfig:"BROKERS"`                             // "broker1:9092,broker2:9092", пусто - события не отправляются
	Topic            string `envconfig:"TOPIC" default:"resume-bot.analyses"` // топик событий анализа
	SecurityProtocol string `envconfig:"SECURITY_PROTOCOL"`                   // "SASL_SSL", "SASL_PLAINTEXT", "PLAINTEXT"
	SASLMechanism    string `envconfig:"SASL_MECHANISM"`                      // "PLAIN", "SCRAM-SHA-256"
	SASLUsername     string `envconfig:"SASL_USERNAME"`
	SASLPassword     string `envconfig:"SASL_PASSWORD"`
}

// Enabled настроена ли Kafka
func (c *Config) Enabled() bool {
	return c != nil && c.Brokers != ""
}

// GetBrokers возвращает список брокеров из строки
func (c *Config) GetBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
