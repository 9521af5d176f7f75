package alerter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/admin/tg-bots/resume-bot/internal/adapters/secondary/alerter"
	"github.com/admin/tg-bots/resume-bot/internal/ports/service"
)

// Service реализует IAlerterService для отправки алертов
type Service struct {
	client  *alerter.Client
	appName string
	log     *slog.Logger
}

// New создаёт сервис алертов; без клиента алерты только пишутся в лог
func New(client *alerter.Client, appName string, log *slog.Logger) service.IAlerterService {
	return &Service{
		client:  client,
		appName: appName,
		log:     log,
	}
}

// SendAlert отправляет алерт с именем приложения в заголовке
func (s *Service) SendAlert(ctx context.Context, message string) error {
	if s.client == nil {
		s.log.Warn("alert (alerter disabled)", "message", message)
		return nil
	}

	return s.client.SendAlert(ctx, fmt.Sprintf("[%s]\n%s", s.appName, message))
}
