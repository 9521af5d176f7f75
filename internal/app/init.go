package app

import (
	"context"
	"fmt"
	"net/http"

	server "github.com/admin/tg-bots/resume-bot/internal/adapters/primary/http"
	adminController "github.com/admin/tg-bots/resume-bot/internal/adapters/primary/http/controllers/admin"
	healthcheckController "github.com/admin/tg-bots/resume-bot/internal/adapters/primary/http/controllers/healthcheck"
	telegramController "github.com/admin/tg-bots/resume-bot/internal/adapters/primary/http/controllers/telegram"
	alerterAdapter "github.com/admin/tg-bots/resume-bot/internal/adapters/secondary/alerter"
	kafkaAdapter "github.com/admin/tg-bots/resume-bot/internal/adapters/secondary/kafka"
	openaiAdapter "github.com/admin/tg-bots/resume-bot/internal/adapters/secondary/openai"
	pdfAdapter "github.com/admin/tg-bots/resume-bot/internal/adapters/secondary/pdf"
	"github.com/admin/tg-bots/resume-bot/internal/adapters/secondary/storage/inmemory"
	"github.com/admin/tg-bots/resume-bot/internal/adapters/secondary/storage/local"
	"github.com/admin/tg-bots/resume-bot/internal/adapters/secondary/storage/pg"
	s3Adapter "github.com/admin/tg-bots/resume-bot/internal/adapters/secondary/storage/s3"
	tgAdapter "github.com/admin/tg-bots/resume-bot/internal/adapters/secondary/telegram"
	"github.com/admin/tg-bots/resume-bot/internal/domain"
	"github.com/admin/tg-bots/resume-bot/internal/ports/repository"
	"github.com/admin/tg-bots/resume-bot/internal/ports/service"
	"github.com/admin/tg-bots/resume-bot/internal/ports/storage"
	analysisRepo "github.com/admin/tg-bots/resume-bot/internal/repository/analysis"
	alerterService "github.com/admin/tg-bots/resume-bot/internal/services/alerter"
	gateService "github.com/admin/tg-bots/resume-bot/internal/services/gate"
	jobScheduler "github.com/admin/tg-bots/resume-bot/internal/services/jobs"
	promptsService "github.com/admin/tg-bots/resume-bot/internal/services/prompts"
	telegramService "github.com/admin/tg-bots/resume-bot/internal/services/telegram"
	resumeUsecase "github.com/admin/tg-bots/resume-bot/internal/usecases/resume"
	"github.com/admin/tg-bots/resume-bot/internal/usecases/resume/texts"
)

type Dependencies struct {
	DB              *pg.DB // nil - Postgres не настроен
	HTTPServer      *http.Server
	TelegramService *telegramService.Service
	TelegramClient  *tgAdapter.Client
	TelegramPoller  *tgAdapter.Poller // nil в webhook режиме
	KafkaProducer   *kafkaAdapter.Producer
	JobScheduler    *jobScheduler.Scheduler
}

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	tgClient := tgAdapter.NewClientWithURL(a.Cfg.Telegram.APIURL, a.Cfg.Telegram.BotToken, a.Log)
	if err := a.checkBotIdentity(ctx, tgClient); err != nil {
		return nil, err
	}
	if err := a.registerBotCommands(ctx, tgClient); err != nil {
		a.Log.Warn("failed to register bot commands", "error", err)
	}

	db, err := a.initPostgres(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	alerter := a.initAlerter(tgClient)
	producer := a.initKafka()

	images, err := a.initImageSource()
	if err != nil {
		return nil, fmt.Errorf("failed to init image source: %w", err)
	}

	sessions := inmemory.NewSessionStore()
	defaultPrompt := a.Cfg.Resume.DefaultPrompt
	if defaultPrompt == "" {
		defaultPrompt = texts.DefaultPrompt
	}
	prompts := promptsService.New(sessions, defaultPrompt, a.Log)

	if a.Cfg.Resume.ChannelUsername == "" {
		a.Log.Warn("subscription channel is not configured, only the free analysis will be available")
	}
	checker := gateService.NewChannelChecker(tgClient, a.Cfg.Resume.ChannelUsername, a.Log)
	gate := gateService.New(sessions, checker, a.Log)

	llm := openaiAdapter.NewClient(a.Cfg.OpenAI, a.Log)
	analyzer := resumeUsecase.NewAnalyzer(llm, prompts, a.Cfg.Resume, a.Log)

	resumeService := resumeUsecase.New(
		tgClient,
		sessions,
		prompts,
		analyzer,
		pdfAdapter.NewExtractor(a.Log),
		images,
		checker,
		a.Cfg.Resume,
		a.Log,
	)
	// опциональные зависимости, typed nil в интерфейс не кладём
	var analyses repository.IAnalysisRepo
	if db != nil {
		analyses = analysisRepo.New(db, a.Log)
		resumeService.AnalysisRepo = analyses
	}
	if producer != nil {
		resumeService.KafkaProducer = producer
	}
	resumeService.Alerter = alerter

	tgService := telegramService.New(resumeService, gate, a.Log)

	httpServer := a.initHTTP(db, analyses, tgService)
	poller, err := a.initTelegramMode(ctx, tgService, tgClient)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram mode: %w", err)
	}

	return &Dependencies{
		DB:              db,
		HTTPServer:      httpServer,
		TelegramService: tgService,
		TelegramClient:  tgClient,
		TelegramPoller:  poller,
		KafkaProducer:   producer,
		JobScheduler:    a.initJobScheduler(alerter),
	}, nil
}

// initPostgres подключение и миграции, без POSTGRES_HOST журнал выключен
func (a *App) initPostgres(ctx context.Context) (*pg.DB, error) {
	if !a.Cfg.Postgres.Enabled() {
		a.Log.Info("postgres is not configured, analysis journal disabled")
		return nil, nil
	}

	conn, err := a.Cfg.Postgres.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	a.Log.Info("postgres connected successfully")

	if err := pg.RunMigrations(ctx, conn, a.Log); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return pg.NewDB(conn), nil
}

// initAlerter алерты в отдельный чат, без настроек только в лог
func (a *App) initAlerter(tgClient *tgAdapter.Client) service.IAlerterService {
	if !a.Cfg.Alerter.Enabled() {
		a.Log.Info("alerter is not configured, alerts go to log only")
		return alerterService.New(nil, a.Name, a.Log)
	}

	var client *alerterAdapter.Client
	if a.Cfg.Alerter.BotToken == a.Cfg.Telegram.BotToken {
		client = alerterAdapter.NewClientWithTelegram(tgClient, a.Cfg.Alerter, a.Log)
	} else {
		client = alerterAdapter.NewClient(a.Cfg.Alerter, a.Log)
	}

	return alerterService.New(client, a.Name, a.Log)
}

// initKafka producer событий анализа, nil если брокеры не заданы
func (a *App) initKafka() *kafkaAdapter.Producer {
	if !a.Cfg.Kafka.Enabled() {
		a.Log.Info("kafka is not configured, analysis events disabled")
		return nil
	}

	producer, err := kafkaAdapter.NewProducer(a.Cfg.Kafka, a.Log)
	if err != nil {
		a.Log.Warn("failed to create kafka producer, continuing without events", "error", err)
		return nil
	}

	a.Log.Info("kafka producer created", "topic", a.Cfg.Kafka.Topic)
	return producer
}

// initImageSource картинки инструкций из S3, иначе из локальной папки
func (a *App) initImageSource() (storage.IImageSource, error) {
	if !a.Cfg.S3.Enabled() {
		a.Log.Info("instruction images from local directory", "dir", a.Cfg.Resume.ImagesDir)
		return local.NewImageSource(a.Cfg.Resume.ImagesDir, a.Log), nil
	}

	minioClient, err := a.Cfg.S3.NewClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}

	a.Log.Info("instruction images from s3",
		"bucket", a.Cfg.S3.Bucket,
		"prefix", a.Cfg.S3.Prefix,
	)
	return s3Adapter.NewClient(minioClient, a.Cfg.S3.Bucket, a.Cfg.S3.Prefix, a.Log), nil
}

// initHTTP инициализирует HTTP сервер и контроллеры
func (a *App) initHTTP(db *pg.DB, analyses repository.IAnalysisRepo, tgService *telegramService.Service) *http.Server {
	var pinger healthcheckController.Pinger
	if db != nil {
		pinger = db
	}

	controllers := []server.Controller{
		healthcheckController.New(a.Name, pinger, a.Log),
	}

	// журнал для операторов, только с БД и токеном
	if analyses != nil && a.Cfg.Server.AdminToken != "" {
		controllers = append(controllers, adminController.New(analyses, a.Cfg.Server.AdminToken, a.Log))
	}

	if a.Cfg.Telegram.IsWebhookEnabled() {
		controllers = append(controllers, telegramController.New(tgService, a.Cfg.Telegram.WebhookSecret, a.Log))
	}

	return server.NewHTTPServer(a.Cfg.Server, a.Log, controllers...)
}

// initTelegramMode инициализирует режим работы Telegram (webhook или polling)
func (a *App) initTelegramMode(
	ctx context.Context,
	tgService *telegramService.Service,
	tgClient *tgAdapter.Client,
) (*tgAdapter.Poller, error) {
	a.Log.Info("telegram configuration",
		"use_webhook", a.Cfg.Telegram.IsWebhookEnabled(),
		"webhook_url", a.Cfg.Telegram.WebhookURL,
	)

	if a.Cfg.Telegram.IsWebhookEnabled() {
		webhookURL := fmt.Sprintf("%s/webhook", a.Cfg.Telegram.WebhookURL)
		if err := tgClient.SetWebhook(ctx, webhookURL, a.Cfg.Telegram.WebhookSecret); err != nil {
			a.Log.Error("failed to set webhook", "error", err, "webhook_url", webhookURL)
			return nil, fmt.Errorf("failed to set webhook: %w", err)
		}
		a.Log.Info("webhook set successfully", "webhook_url", webhookURL)
		return nil, nil // webhook режим, poller не нужен
	}

	a.Log.Warn("polling mode enabled - this should only be used for local development")

	handler := func(_ context.Context, update *domain.Update) error {
		tgService.Dispatch(update)
		return nil
	}
	return tgAdapter.NewPoller(tgClient, a.Cfg.Telegram, handler, a.Log), nil
}

// initJobScheduler инициализирует планировщик джоб
func (a *App) initJobScheduler(alerter service.IAlerterService) *jobScheduler.Scheduler {
	scheduler := jobScheduler.NewScheduler(a.Log, alerter)
	scheduler.Register(jobScheduler.NewTempJanitor(a.Cfg.Resume.TempDir, a.Log))
	return scheduler
}

// checkBotIdentity getMe на старте: битый токен роняет запуск сразу
func (a *App) checkBotIdentity(ctx context.Context, client *tgAdapter.Client) error {
	me, err := client.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("failed to get bot identity, check telegram bot token: %w", err)
	}
	if !me.IsBot {
		return fmt.Errorf("telegram token belongs to user %d, not a bot", me.ID)
	}

	username := ""
	if me.Username != nil {
		username = *me.Username
	}
	a.Log.Info("telegram bot identified",
		"bot_id", me.ID,
		"bot_username", username,
	)
	return nil
}

// registerBotCommands регистрирует команды бота в Telegram
func (a *App) registerBotCommands(ctx context.Context, client *tgAdapter.Client) error {
	commands := []tgAdapter.BotCommand{
		{Command: "start", Description: "Начать работу с ботом"},
		{Command: "cancel", Description: "Отменить изменение промпта"},
	}

	return client.SetMyCommands(ctx, commands)
}
