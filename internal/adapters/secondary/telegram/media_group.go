package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
)

// maxMediaGroupSize ограничение Bot API на размер альбома
const maxMediaGroupSize = 10

// InputMediaPhoto элемент media в sendMediaGroup
type InputMediaPhoto struct {
	Type  string `json:"type"`
	Media string `json:"media"` // attach://<имя поля multipart>
}

// SendMediaGroup отправляет фото одним альбомом, загружая их через multipart/form-data
func (c *Client) SendMediaGroup(ctx context.Context, chatID int64, photos []domain.InputPhoto) error {
	if len(photos) == 0 {
		return fmt.Errorf("media group is empty")
	}
	if len(photos) > maxMediaGroupSize {
		return fmt.Errorf("media group too large: %d > %d", len(photos), maxMediaGroupSize)
	}

	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)

	if err := writer.WriteField("chat_id", fmt.Sprintf("%d", chatID)); err != nil {
		return fmt.Errorf("failed to write chat_id: %w", err)
	}

	media := make([]InputMediaPhoto, 0, len(photos))
	for i := range photos {
		media = append(media, InputMediaPhoto{
			Type:  "photo",
			Media: fmt.Sprintf("attach://photo%d", i),
		})
	}

	mediaJSON, err := json.Marshal(media)
	if err != nil {
		return fmt.Errorf("failed to marshal media: %w", err)
	}
	if err := writer.WriteField("media", string(mediaJSON)); err != nil {
		return fmt.Errorf("failed to write media: %w", err)
	}

	for i, photo := range photos {
		part, err := writer.CreateFormFile(fmt.Sprintf("photo%d", i), photo.Filename)
		if err != nil {
			c.log.Error("failed to create photo form file",
				"error", err,
				"filename", photo.Filename)
			return fmt.Errorf("failed to create photo form file: %w", err)
		}
		if _, err := part.Write(photo.Data); err != nil {
			return fmt.Errorf("failed to write photo data: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close multipart writer: %w", err)
	}

	url := c.baseURL + "/sendMediaGroup"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &requestBody)
	if err != nil {
		return fmt.Errorf("telegram create request failed [chat_id=%d]: %w", chatID, err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	c.log.Debug("sending media group to Telegram",
		"chat_id", chatID,
		"photos_count", len(photos),
	)

	var messages []SendMessageResult
	if err := c.do(httpReq, "sendMediaGroup", &messages); err != nil {
		c.log.Error("failed to send media group",
			"error", err,
			"chat_id", chatID,
		)
		return err
	}

	c.log.Debug("media group sent successfully",
		"chat_id", chatID,
		"messages_count", len(messages),
	)
	return nil
}
