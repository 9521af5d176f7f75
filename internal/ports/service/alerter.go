package service

import "context"

// IAlerterService алерты операторам: сбои скачивания, ответа провайдера, джоб
type IAlerterService interface {
	SendAlert(ctx context.Context, message string) error
}
