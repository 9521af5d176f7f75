package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout      = 5 * time.Second
	inFlightTimeout      = 30 * time.Second
	deleteWebhookTimeout = 10 * time.Second
)

func (a *App) runServices(ctx context.Context, deps *Dependencies) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("starting http server",
			"host", a.Cfg.Server.Host,
			"port", a.Cfg.Server.Port)

		err := deps.HTTPServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})

	// Telegram Updates: либо Webhook (prod), либо Polling (local dev)
	if a.Cfg.Telegram.IsWebhookEnabled() {
		a.Log.Info("telegram updates mode: webhook (production)",
			"webhook_url", a.Cfg.Telegram.WebhookURL)
	} else {
		g.Go(func() error {
			return a.runPolling(gCtx, deps)
		})
	}

	// Запускаем планировщик джоб (запускает горутины внутри, сам не блокирует)
	if deps.JobScheduler != nil {
		if err := deps.JobScheduler.Start(gCtx); err != nil {
			a.Log.Error("failed to start job scheduler", "error", err)
		}
	}

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.Log.Info("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := deps.HTTPServer.Shutdown(shutdownCtx); err != nil {
			a.Log.Error("failed to shutdown http server", "error", err)
		}

		// даём досчитать анализы, которые уже идут
		waitCtx, waitCancel := context.WithTimeout(context.Background(), inFlightTimeout)
		defer waitCancel()
		if err := deps.TelegramService.Wait(waitCtx); err != nil {
			a.Log.Warn("in-flight updates did not finish in time", "error", err)
		}
		deps.TelegramService.Stop()

		if deps.DB != nil {
			if err := deps.DB.Close(); err != nil {
				a.Log.Error("failed to close database", "error", err)
			}
		}

		if deps.KafkaProducer != nil {
			if err := deps.KafkaProducer.Close(); err != nil {
				a.Log.Error("failed to close kafka producer", "error", err)
			}
		}

		a.Log.Info("application shutdown completed")
		return nil
	})

	if err := g.Wait(); err != nil {
		a.Log.Error("application error", "error", err)
		return err
	}

	return nil
}

// runPolling запускает polling для локальной разработки
func (a *App) runPolling(ctx context.Context, deps *Dependencies) error {
	if deps.TelegramPoller == nil {
		return fmt.Errorf("telegram poller is not initialized")
	}

	// Удаляем webhook перед запуском polling
	deleteCtx, cancel := context.WithTimeout(ctx, deleteWebhookTimeout)
	defer cancel()

	if err := deps.TelegramClient.DeleteWebhook(deleteCtx); err != nil {
		a.Log.Warn("failed to delete webhook, continuing anyway", "error", err)
	} else {
		a.Log.Info("webhook deleted successfully, starting polling")
	}

	return deps.TelegramPoller.Start(ctx)
}
