package telegram

import (
	"context"
	"sync"

	"log/slog"

	"github.com/admin/tg-bots/resume-bot/internal/ports/service"
)

// Service роутер апдейтов: классификация, гейт и передача в usecase
type Service struct {
	bot  service.IBotService
	gate service.IGateService
	log  *slog.Logger

	// контекст приложения для обработки апдейтов, не зависит от входящего запроса
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

var _ service.IUpdateDispatcher = (*Service)(nil)

func New(bot service.IBotService, gate service.IGateService, log *slog.Logger) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		bot:    bot,
		gate:   gate,
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Wait ждёт завершения апдейтов, которые уже в обработке
func (s *Service) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop отменяет контекст обработки, незавершённые вызовы внешних API прерываются
func (s *Service) Stop() {
	s.cancel()
}
