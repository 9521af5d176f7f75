package inmemory

import (
	"context"
	"sync"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
	"github.com/admin/tg-bots/resume-bot/internal/ports/session"
)

// SessionStore in-memory хранилище сессий, данные теряются при рестарте
type SessionStore struct {
	mu       sync.Mutex
	sessions map[domain.UserID]*domain.Session
}

// NewSessionStore создаёт пустое хранилище сессий
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[domain.UserID]*domain.Session),
	}
}

var _ session.IStore = (*SessionStore)(nil)

// Get возвращает копию сессии пользователя
func (s *SessionStore) Get(ctx context.Context, userID domain.UserID) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return domain.Session{}, nil
	}
	return sess.Clone(), nil
}

// Update выполняет fn под блокировкой; при ошибке fn сессия не меняется
func (s *SessionStore) Update(ctx context.Context, userID domain.UserID, fn session.UpdateFunc) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var draft domain.Session
	if current, ok := s.sessions[userID]; ok {
		draft = current.Clone()
	}

	if err := fn(&draft); err != nil {
		return domain.Session{}, err
	}

	stored := draft.Clone()
	s.sessions[userID] = &stored
	return draft.Clone(), nil
}

// Len количество пользователей с сессией
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
