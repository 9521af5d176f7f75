package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
)

// GetFile получает путь файла для скачивания
func (c *Client) GetFile(ctx context.Context, fileID string) (*domain.File, error) {
	reqBody := struct {
		FileID string `json:"file_id"`
	}{
		FileID: fileID,
	}

	var file domain.File
	if err := c.call(ctx, "getFile", reqBody, &file); err != nil {
		c.log.Error("failed to get file",
			"error", err,
			"file_id", fileID,
		)
		return nil, err
	}

	if file.FilePath == nil || *file.FilePath == "" {
		return nil, fmt.Errorf("telegram returned empty file_path for file %s", fileID)
	}

	return &file, nil
}

// DownloadFile скачивает файл по file_path из getFile в dst
func (c *Client) DownloadFile(ctx context.Context, filePath string, dst io.Writer) error {
	url := c.fileURL + "/" + filePath

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error("failed to download file",
			"error", err,
			"file_path", filePath,
		)
		return fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Error("file download failed",
			"status_code", resp.StatusCode,
			"file_path", filePath,
			"body", string(body),
		)
		return fmt.Errorf("file download failed with status %d", resp.StatusCode)
	}

	written, err := io.Copy(dst, resp.Body)
	if err != nil {
		return fmt.Errorf("failed to write downloaded file: %w", err)
	}

	c.log.Debug("file downloaded successfully",
		"file_path", filePath,
		"size", written,
	)
	return nil
}
