package s3

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"

	"log/slog"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
	"github.com/minio/minio-go/v7"
)

// Client обёртка над minio.Client, отдаёт картинки инструкций из bucket
type Client struct {
	client *minio.Client
	bucket string
	prefix string
	log    *slog.Logger
}

// NewClient создаёт новый S3 источник картинок
func NewClient(client *minio.Client, bucket string, prefix string, log *slog.Logger) *Client {
	return &Client{
		client: client,
		bucket: bucket,
		prefix: prefix,
		log:    log,
	}
}

// Get получает картинку по имени внутри префикса
func (c *Client) Get(ctx context.Context, name string) ([]byte, error) {
	key := path.Join(c.prefix, name)

	object, err := c.client.GetObject(ctx, c.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("object %s: %w", key, domain.ErrImageNotFound)
		}
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}

	c.log.Debug("image loaded from s3",
		"bucket", c.bucket,
		"key", key,
		"size", len(data),
	)
	return data, nil
}

func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound
}
