package prompts

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/admin/tg-bots/resume-bot/internal/adapters/secondary/storage/inmemory"
	"github.com/admin/tg-bots/resume-bot/internal/domain"
)

const defaultPrompt = "Проанализируй резюме"

func newTestStore() *Store {
	return New(inmemory.NewSessionStore(), defaultPrompt, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGetPromptDefaultsForUnknownUser(t *testing.T) {
	store := newTestStore()
	for _, userID := range []int64{1, 2, 999999} {
		if got := store.GetPrompt(context.Background(), domain.UserID(userID)); got != defaultPrompt {
			t.Errorf("user %d: got %q", userID, got)
		}
	}
}

func TestSetPromptLastWriteWins(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	for _, text := range []string{"first", "", "third"} {
		if err := store.SetPrompt(ctx, 1, text); err != nil {
			t.Fatalf("SetPrompt: %v", err)
		}
		if got := store.GetPrompt(ctx, 1); got != text {
			t.Errorf("got %q, want %q", got, text)
		}
	}

	if got := store.GetPrompt(ctx, 2); got != defaultPrompt {
		t.Errorf("other user affected: %q", got)
	}
}

func TestResetPromptRestoresDefault(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	_ = store.SetPrompt(ctx, 1, "custom")
	if err := store.ResetPrompt(ctx, 1); err != nil {
		t.Fatalf("ResetPrompt: %v", err)
	}
	if got := store.GetPrompt(ctx, 1); got != defaultPrompt {
		t.Errorf("got %q after reset", got)
	}

	// сброс без пользовательского промпта тоже допустим
	if err := store.ResetPrompt(ctx, 3); err != nil {
		t.Fatalf("ResetPrompt: %v", err)
	}
}
