package resume

import (
	"log/slog"

	"github.com/admin/tg-bots/resume-bot/internal/ports/kafka"
	"github.com/admin/tg-bots/resume-bot/internal/ports/repository"
	"github.com/admin/tg-bots/resume-bot/internal/ports/service"
	"github.com/admin/tg-bots/resume-bot/internal/ports/session"
	"github.com/admin/tg-bots/resume-bot/internal/ports/storage"
	"github.com/admin/tg-bots/resume-bot/internal/ports/telegram"
)

// Service бизнес-логика бота анализа резюме
type Service struct {
	TelegramClient telegram.IClient
	Sessions       session.IStore
	Prompts        service.IPromptStore
	Analyzer       *Analyzer
	Extractor      service.IExtractor
	Images         storage.IImageSource
	Subscription   service.ISubscriptionChecker
	AnalysisRepo   repository.IAnalysisRepo // nil - журнал выключен
	KafkaProducer  kafka.IKafkaProducer     // nil - события выключены
	Alerter        service.IAlerterService  // nil - алерты выключены
	Config         *Config
	Log            *slog.Logger
}

var _ service.IBotService = (*Service)(nil)

// New создаёт сервис, опциональные зависимости задаются полями после создания
func New(
	telegramClient telegram.IClient,
	sessions session.IStore,
	prompts service.IPromptStore,
	analyzer *Analyzer,
	extractor service.IExtractor,
	images storage.IImageSource,
	subscription service.ISubscriptionChecker,
	cfg *Config,
	log *slog.Logger,
) *Service {
	return &Service{
		TelegramClient: telegramClient,
		Sessions:       sessions,
		Prompts:        prompts,
		Analyzer:       analyzer,
		Extractor:      extractor,
		Images:         images,
		Subscription:   subscription,
		Config:         cfg,
		Log:            log,
	}
}
