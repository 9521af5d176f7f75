package gate

import (
	"context"
	"log/slog"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
	"github.com/admin/tg-bots/resume-bot/internal/ports/service"
	"github.com/admin/tg-bots/resume-bot/internal/ports/session"
)

// Service гейт использования: первый анализ бесплатный, дальше нужна подписка на канал
type Service struct {
	sessions session.IStore
	checker  service.ISubscriptionChecker
	log      *slog.Logger
}

var _ service.IGateService = (*Service)(nil)

func New(sessions session.IStore, checker service.ISubscriptionChecker, log *slog.Logger) *Service {
	return &Service{
		sessions: sessions,
		checker:  checker,
		log:      log,
	}
}

// Allow решение по событию пользователя
func (s *Service) Allow(ctx context.Context, userID domain.UserID, kind domain.EventKind) domain.GateDecision {
	if isAlwaysAllowed(kind) {
		return domain.Allow()
	}

	sess, err := s.sessions.Get(ctx, userID)
	if err != nil {
		s.log.Error("failed to get session in gate",
			"error", err,
			"user_id", userID,
		)
	}
	if sess.AnalysisCount == 0 {
		return domain.Allow()
	}

	subscribed, err := s.checker.IsSubscribed(ctx, userID)
	if err != nil {
		s.log.Warn("subscription check failed, treating as not subscribed",
			"error", err,
			"user_id", userID,
		)
		subscribed = false
	}

	if !subscribed {
		s.log.Debug("gate denied",
			"user_id", userID,
			"event", kind.String(),
			"analysis_count", sess.AnalysisCount,
		)
		return domain.Deny(domain.DenyNotSubscribed)
	}

	return domain.Allow()
}

// isAlwaysAllowed события, которые нельзя блокировать, иначе пользователю не выбраться
func isAlwaysAllowed(kind domain.EventKind) bool {
	switch kind {
	case domain.EventStart, domain.EventCheckSubscription, domain.EventInstructions:
		return true
	default:
		return false
	}
}
