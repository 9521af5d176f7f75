package storage

import "context"

// IImageSource источник картинок инструкции
type IImageSource interface {
	// Get возвращает содержимое картинки или domain.ErrImageNotFound
	Get(ctx context.Context, name string) ([]byte, error)
}
