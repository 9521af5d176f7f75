package telegram

import (
	"context"
)

// SetWebhookRequest запрос на установку webhook
type SetWebhookRequest struct {
	URL                string   `json:"url"`
	SecretToken        string   `json:"secret_token,omitempty"`
	AllowedUpdates     []string `json:"allowed_updates,omitempty"`
	DropPendingUpdates bool     `json:"drop_pending_updates,omitempty"`
}

// SetWebhook устанавливает webhook, Telegram будет присылать secretToken в заголовке
func (c *Client) SetWebhook(ctx context.Context, url string, secretToken string) error {
	req := SetWebhookRequest{
		URL:            url,
		SecretToken:    secretToken,
		AllowedUpdates: []string{"message", "callback_query"},
	}

	if err := c.call(ctx, "setWebhook", req, nil); err != nil {
		c.log.Error("failed to set webhook",
			"error", err,
			"webhook_url", url,
		)
		return err
	}

	c.log.Info("webhook set successfully", "webhook_url", url)
	return nil
}

// DeleteWebhook удаляет webhook (нужно вызывать отдельно перед запуском polling)
func (c *Client) DeleteWebhook(ctx context.Context) error {
	req := struct {
		DropPendingUpdates bool `json:"drop_pending_updates"`
	}{
		DropPendingUpdates: true,
	}

	if err := c.call(ctx, "deleteWebhook", req, nil); err != nil {
		c.log.Warn("deleteWebhook failed", "error", err)
		return err
	}

	c.log.Info("webhook deleted successfully")
	return nil
}
