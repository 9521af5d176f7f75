package telegram

import (
	"encoding/json"
	"fmt"
)

// APIResponse базовая структура ответа от Telegram API
type APIResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description,omitempty"`
	ErrorCode   int             `json:"error_code,omitempty"`
	Result      json.RawMessage `json:"result,omitempty"`
}

// APIError ответ Bot API с ok=false
type APIError struct {
	Method      string
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram API error: %s (code: %d, method: %s)", e.Description, e.Code, e.Method)
}

// ChatInfo чат в ответах на отправку
type ChatInfo struct {
	ID int64 `json:"id"`
}

func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
