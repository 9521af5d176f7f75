package resume

import (
	"fmt"
	"strings"
)

// Config настройки бота, секция RESUME
type Config struct {
	BotName             string   `envconfig:"BOT_NAME" default:"Resume Bot"`
	ChannelUsername     string   `envconfig:"CHANNEL_USERNAME"`
	ChannelLink         string   `envconfig:"CHANNEL_LINK"`
	Models              []string `envconfig:"MODELS" default:"gpt-4o-mini"`
	DefaultPrompt       string   `envconfig:"DEFAULT_PROMPT"`
	AnalyzeInstructions string   `envconfig:"ANALYZE_INSTRUCTIONS"`
	EditInstructions    string   `envconfig:"EDIT_INSTRUCTIONS"`
	EditEnabled         bool     `envconfig:"EDIT_ENABLED" default:"false"`
	TempDir             string   `envconfig:"TEMP_DIR"`
	ImagesDir           string   `envconfig:"IMAGES_DIR" default:"instructions"`
}

// Validate чистит список моделей и проверяет, что он не пуст
func (c *Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Models))
	models := make([]string, 0, len(c.Models))
	for _, m := range c.Models {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		models = append(models, m)
	}
	if len(models) == 0 {
		return fmt.Errorf("resume config: at least one model is required")
	}
	c.Models = models

	return nil
}

// SelectionRequired нужно ли пользователю явно выбирать модель
func (c *Config) SelectionRequired() bool {
	return len(c.Models) > 1
}

// HasModel входит ли модель в настроенный список
func (c *Config) HasModel(model string) bool {
	for _, m := range c.Models {
		if m == model {
			return true
		}
	}
	return false
}

// SubscribeLink ссылка для кнопки "Подписаться"
func (c *Config) SubscribeLink() string {
	if c.ChannelLink != "" {
		return c.ChannelLink
	}
	return "https://t.me/" + strings.TrimPrefix(strings.TrimSpace(c.ChannelUsername), "@")
}
