package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ErrEmptyCompletion провайдер вернул ответ без вариантов
var ErrEmptyCompletion = errors.New("completion has no choices")

// Client клиент chat completions
type Client struct {
	client openai.Client
	log    *slog.Logger
}

// NewClient создаёт клиент OpenAI
func NewClient(cfg *Config, log *slog.Logger) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	return &Client{
		client: openai.NewClient(opts...),
		log:    log,
	}
}

// Complete отправляет prompt одним user сообщением и возвращает текст первого варианта
func (c *Client) Complete(ctx context.Context, model string, prompt string) (string, error) {
	start := time.Now()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		c.log.Error("chat completion failed",
			"error", err,
			"model", model,
			"duration", time.Since(start),
		)
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		c.log.Error("chat completion returned no choices", "model", model)
		return "", ErrEmptyCompletion
	}

	c.log.Debug("chat completion received",
		"model", model,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"duration", time.Since(start),
	)

	return resp.Choices[0].Message.Content, nil
}
