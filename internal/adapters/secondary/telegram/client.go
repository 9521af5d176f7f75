package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
)

const (
	telegramAPIURL = "https://api.telegram.org"
	apiTimeout     = 30 * time.Second
)

// Client клиент для работы с Telegram Bot API
type Client struct {
	httpClient *http.Client
	baseURL    string // {apiURL}/bot{token}
	fileURL    string // {apiURL}/file/bot{token}
	token      string
	log        *slog.Logger
}

// NewClient создаёт новый клиент для Telegram Bot API
func NewClient(token string, log *slog.Logger) *Client {
	return NewClientWithURL(telegramAPIURL, token, log)
}

// NewClientWithURL создаёт клиент для собственного Bot API сервера
func NewClientWithURL(apiURL string, token string, log *slog.Logger) *Client {
	if apiURL == "" {
		apiURL = telegramAPIURL
	}
	apiURL = strings.TrimSuffix(apiURL, "/")

	return &Client{
		httpClient: &http.Client{
			Timeout: apiTimeout,
		},
		baseURL: apiURL + "/bot" + token,
		fileURL: apiURL + "/file/bot" + token,
		token:   token,
		log:     log,
	}
}

// SendMessageRequest запрос на отправку сообщения
type SendMessageRequest struct {
	ChatID           int64                  `json:"chat_id"`
	Text             string                 `json:"text"`
	ParseMode        string                 `json:"parse_mode,omitempty"` // "HTML", "Markdown", "MarkdownV2"
	MessageThreadID  *int64                 `json:"message_thread_id,omitempty"`
	ReplyToMessageID int64                  `json:"reply_to_message_id,omitempty"` // 0 - обычное сообщение, не ответ
	ReplyMarkup      map[string]interface{} `json:"reply_markup,omitempty"`
}

// SendMessageResult результат отправки сообщения
type SendMessageResult struct {
	MessageID int64    `json:"message_id"`
	Chat      ChatInfo `json:"chat"`
	Text      string   `json:"text"`
	Date      int64    `json:"date"`
}

// SendMessage отправляет текстовое сообщение без форматирования,
// при replyTo != 0 как ответ на сообщение пользователя
func (c *Client) SendMessage(ctx context.Context, chatID int64, replyTo int64, text string) error {
	req := SendMessageRequest{
		ChatID:           chatID,
		Text:             text,
		ReplyToMessageID: replyTo,
	}

	_, err := c.SendMessageWithRequest(ctx, req)
	return err
}

// SendMessageWithKeyboard отправляет сообщение с клавиатурой
func (c *Client) SendMessageWithKeyboard(ctx context.Context, chatID int64, replyTo int64, text string, keyboard map[string]interface{}) error {
	req := SendMessageRequest{
		ChatID:           chatID,
		Text:             text,
		ReplyToMessageID: replyTo,
		ReplyMarkup:      keyboard,
	}

	_, err := c.SendMessageWithRequest(ctx, req)
	return err
}

// SendMessageWithRequest отправляет сообщение с произвольными параметрами
func (c *Client) SendMessageWithRequest(ctx context.Context, req SendMessageRequest) (*SendMessageResult, error) {
	var result SendMessageResult
	if err := c.call(ctx, "sendMessage", req, &result); err != nil {
		c.log.Error("failed to send message",
			"error", err,
			"chat_id", req.ChatID,
		)
		return nil, err
	}

	c.log.Debug("message sent successfully",
		"chat_id", req.ChatID,
		"message_id", result.MessageID,
	)

	return &result, nil
}

// GetMe получает информацию о боте
func (c *Client) GetMe(ctx context.Context) (*domain.TelegramUser, error) {
	var me domain.TelegramUser
	if err := c.call(ctx, "getMe", nil, &me); err != nil {
		return nil, err
	}

	c.log.Debug("bot info retrieved", "bot_id", me.ID)
	return &me, nil
}

// BotCommand представляет команду бота
type BotCommand struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}

// SetMyCommands регистрирует команды бота в меню
func (c *Client) SetMyCommands(ctx context.Context, commands []BotCommand) error {
	reqBody := struct {
		Commands []BotCommand `json:"commands"`
	}{
		Commands: commands,
	}

	if err := c.call(ctx, "setMyCommands", reqBody, nil); err != nil {
		return err
	}

	c.log.Info("bot commands registered successfully", "commands_count", len(commands))
	return nil
}

// call выполняет JSON запрос к методу Bot API и раскладывает result в out
func (c *Client) call(ctx context.Context, method string, payload interface{}, out interface{}) error {
	url := c.baseURL + "/" + method

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	return c.do(httpReq, method, out)
}

// do отправляет подготовленный запрос и разбирает ответ Bot API
func (c *Client) do(httpReq *http.Request, method string, out interface{}) error {
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request to telegram: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		c.log.Error("failed to unmarshal response",
			"error", err,
			"method", method,
			"status_code", resp.StatusCode,
			"body_preview", truncateString(string(body), 200),
		)
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if !apiResp.OK {
		c.log.Debug("telegram API returned error",
			"method", method,
			"error_code", apiResp.ErrorCode,
			"description", apiResp.Description,
			"status_code", resp.StatusCode,
		)
		return &APIError{Method: method, Code: apiResp.ErrorCode, Description: apiResp.Description}
	}

	if out != nil && len(apiResp.Result) > 0 {
		if err := json.Unmarshal(apiResp.Result, out); err != nil {
			return fmt.Errorf("failed to unmarshal %s result: %w", method, err)
		}
	}

	return nil
}
