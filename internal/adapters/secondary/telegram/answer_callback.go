package telegram

import (
	"context"
)

// AnswerCallbackQueryRequest запрос на ответ callback query
type AnswerCallbackQueryRequest struct {
	CallbackQueryID string `json:"callback_query_id"`
	Text            string `json:"text,omitempty"`
	ShowAlert       bool   `json:"show_alert,omitempty"`
}

// AnswerCallbackQuery отправляет ответ на callback query
func (c *Client) AnswerCallbackQuery(ctx context.Context, callbackID string, text string, showAlert bool) error {
	reqBody := AnswerCallbackQueryRequest{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       showAlert,
	}

	if err := c.call(ctx, "answerCallbackQuery", reqBody, nil); err != nil {
		c.log.Error("failed to answer callback query",
			"error", err,
			"callback_id", callbackID,
		)
		return err
	}

	c.log.Debug("callback query answered successfully", "callback_id", callbackID)
	return nil
}
