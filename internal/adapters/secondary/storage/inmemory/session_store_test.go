package inmemory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
)

func TestGetUnknownUserReturnsZeroSession(t *testing.T) {
	store := NewSessionStore()

	sess, err := store.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sess.State != domain.StateIdle || sess.PromptOverride != nil || sess.Model != "" || sess.AnalysisCount != 0 {
		t.Errorf("expected zero session, got %+v", sess)
	}
	if store.Len() != 0 {
		t.Errorf("Get must not create sessions")
	}
}

func TestUpdateErrorLeavesSessionUntouched(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	_, _ = store.Update(ctx, 1, func(s *domain.Session) error {
		s.AnalysisCount = 3
		return nil
	})

	boom := errors.New("boom")
	_, err := store.Update(ctx, 1, func(s *domain.Session) error {
		s.AnalysisCount = 100
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	sess, _ := store.Get(ctx, 1)
	if sess.AnalysisCount != 3 {
		t.Errorf("AnalysisCount = %d, want 3", sess.AnalysisCount)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	prompt := "original"
	_, _ = store.Update(ctx, 1, func(s *domain.Session) error {
		s.PromptOverride = &prompt
		return nil
	})
	prompt = "mutated outside"

	sess, _ := store.Get(ctx, 1)
	*sess.PromptOverride = "mutated copy"

	again, _ := store.Get(ctx, 1)
	if *again.PromptOverride != "original" {
		t.Errorf("stored prompt leaked: %q", *again.PromptOverride)
	}
}

func TestConcurrentIncrementsAreNotLost(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	const workers = 64
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _ = store.Update(ctx, 7, func(s *domain.Session) error {
				s.AnalysisCount++
				return nil
			})
		}()
	}
	wg.Wait()

	sess, _ := store.Get(ctx, 7)
	if sess.AnalysisCount != workers {
		t.Errorf("AnalysisCount = %d, want %d", sess.AnalysisCount, workers)
	}
}

func TestUpdateCanceledContext(t *testing.T) {
	store := NewSessionStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.Update(ctx, 1, func(s *domain.Session) error { return nil }); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
