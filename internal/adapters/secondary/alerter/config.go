package alerter

type Config struct {
	BotToken        string `envconfig:"BOT_TOKEN"` // пусто - алерты только в лог
	ChatID          int64  `envconfig:"CHAT_ID"`
	MessageThreadID *int64 `envconfig:"MESSAGE_THREAD_ID"`
}

// Enabled настроен ли канал алертов
func (c *Config) Enabled() bool {
	return c != nil && c.BotToken != "" && c.ChatID != 0
}
