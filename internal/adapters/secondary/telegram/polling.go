package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"log/slog"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
)

const (
	defaultPollingTimeout = 30
	pollingRetryDelay     = 5 * time.Second
)

// UpdateHandler функция для обработки обновлений от Telegram
type UpdateHandler func(ctx context.Context, update *domain.Update) error

// Poller реализует long polling для получения обновлений от Telegram
type Poller struct {
	client       *Client
	timeout      int
	handler      UpdateHandler
	lastUpdateID int64
	retryDelay   time.Duration
	log          *slog.Logger
	httpClient   *http.Client // отдельный HTTP клиент с увеличенным таймаутом для polling
}

func NewPoller(client *Client, config *Config, handler UpdateHandler, log *slog.Logger) *Poller {
	pollingTimeout := config.PollingTimeout
	if pollingTimeout <= 0 {
		pollingTimeout = defaultPollingTimeout
	}
	// HTTP таймаут = polling timeout + запас (10 секунд)
	httpTimeout := time.Duration(pollingTimeout+10) * time.Second

	return &Poller{
		client:     client,
		timeout:    pollingTimeout,
		handler:    handler,
		retryDelay: pollingRetryDelay,
		log:        log,
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
	}
}

// Start крутит long polling до отмены контекста
func (p *Poller) Start(ctx context.Context) error {
	p.log.Info("starting telegram polling", "timeout", p.timeout)

	for {
		select {
		case <-ctx.Done():
			p.log.Info("polling stopped")
			return nil
		default:
		}

		updates, err := p.getUpdates(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				continue
			}
			p.log.Error("failed to get updates", "error", err)
			// Ждём перед повтором
			select {
			case <-ctx.Done():
			case <-time.After(p.retryDelay):
			}
			continue
		}

		for i := range updates {
			update := &updates[i]

			if update.UpdateID >= p.lastUpdateID {
				p.lastUpdateID = update.UpdateID + 1
			}

			if err := p.handler(ctx, update); err != nil {
				p.log.Error("failed to handle update",
					"error", err,
					"update_id", update.UpdateID,
				)
				// Продолжаем обработку следующих обновлений
			}
		}
	}
}

// getUpdates получает обновления от Telegram API
func (p *Poller) getUpdates(ctx context.Context) ([]domain.Update, error) {
	url := fmt.Sprintf("%s/getUpdates?offset=%d&timeout=%d", p.client.baseURL, p.lastUpdateID, p.timeout)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		p.log.Error("failed to unmarshal response",
			"error", err,
			"status_code", resp.StatusCode,
			"body_preview", truncateString(string(body), 200),
		)
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if !apiResp.OK {
		// Ошибка 409 - конфликт (другой экземпляр бота или webhook активен)
		if apiResp.ErrorCode == http.StatusConflict {
			p.log.Warn("telegram API conflict - another bot instance or webhook is active",
				"error_code", apiResp.ErrorCode,
				"description", apiResp.Description,
			)
			return nil, &APIError{Method: "getUpdates", Code: apiResp.ErrorCode, Description: apiResp.Description}
		}

		p.log.Error("telegram API returned error",
			"error_code", apiResp.ErrorCode,
			"description", apiResp.Description,
			"status_code", resp.StatusCode,
		)
		return nil, &APIError{Method: "getUpdates", Code: apiResp.ErrorCode, Description: apiResp.Description}
	}

	var updates []domain.Update
	if len(apiResp.Result) > 0 {
		if err := json.Unmarshal(apiResp.Result, &updates); err != nil {
			return nil, fmt.Errorf("failed to unmarshal updates: %w", err)
		}
	}

	return updates, nil
}
