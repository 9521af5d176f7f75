package resume

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/admin/tg-bots/resume-bot/internal/adapters/secondary/storage/inmemory"
	"github.com/admin/tg-bots/resume-bot/internal/domain"
	"github.com/admin/tg-bots/resume-bot/internal/services/prompts"
	"github.com/admin/tg-bots/resume-bot/internal/usecases/resume/texts"
)

type sentMessage struct {
	chatID   int64
	replyTo  int64
	text     string
	keyboard map[string]interface{}
}

type answeredCallback struct {
	id        string
	text      string
	showAlert bool
}

type fakeTelegram struct {
	mu          sync.Mutex
	messages    []sentMessage
	callbacks   []answeredCallback
	mediaGroups [][]domain.InputPhoto

	downloadErr error
	mediaErr    error
	// sendErr возвращает ошибку для конкретного текста
	sendErr func(text string) error
}

func (f *fakeTelegram) SendMessage(ctx context.Context, chatID int64, replyTo int64, text string) error {
	return f.SendMessageWithKeyboard(ctx, chatID, replyTo, text, nil)
}

func (f *fakeTelegram) SendMessageWithKeyboard(ctx context.Context, chatID int64, replyTo int64, text string, keyboard map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		if err := f.sendErr(text); err != nil {
			return err
		}
	}
	f.messages = append(f.messages, sentMessage{chatID: chatID, replyTo: replyTo, text: text, keyboard: keyboard})
	return nil
}

func (f *fakeTelegram) AnswerCallbackQuery(ctx context.Context, callbackID string, text string, showAlert bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.callbacks = append(f.callbacks, answeredCallback{id: callbackID, text: text, showAlert: showAlert})
	return nil
}

func (f *fakeTelegram) SendMediaGroup(ctx context.Context, chatID int64, photos []domain.InputPhoto) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mediaErr != nil {
		return f.mediaErr
	}
	f.mediaGroups = append(f.mediaGroups, photos)
	return nil
}

func (f *fakeTelegram) GetFile(ctx context.Context, fileID string) (*domain.File, error) {
	path := "documents/" + fileID + ".pdf"
	return &domain.File{FileID: fileID, FilePath: &path}, nil
}

func (f *fakeTelegram) DownloadFile(ctx context.Context, filePath string, dst io.Writer) error {
	if f.downloadErr != nil {
		_, _ = dst.Write([]byte("%PD"))
		return f.downloadErr
	}
	_, err := dst.Write([]byte("%PDF-1.4 fake"))
	return err
}

func (f *fakeTelegram) GetChatMember(ctx context.Context, chatID string, userID int64) (domain.ChatMemberStatus, error) {
	return domain.ChatMemberLeft, nil
}

func (f *fakeTelegram) sentTexts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.messages))
	for _, m := range f.messages {
		out = append(out, m.text)
	}
	return out
}

func (f *fakeTelegram) last() sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.messages) == 0 {
		return sentMessage{}
	}
	return f.messages[len(f.messages)-1]
}

type fakeExtractor struct {
	text      string
	calls     int
	fileSeen  bool
	seenPaths []string
}

func (f *fakeExtractor) Extract(ctx context.Context, path string) string {
	f.calls++
	f.seenPaths = append(f.seenPaths, path)
	if _, err := os.Stat(path); err == nil {
		f.fileSeen = true
	}
	return f.text
}

type fakeCompleter struct {
	mu      sync.Mutex
	result  string
	err     error
	prompts []string
	models  []string
}

func (f *fakeCompleter) Complete(ctx context.Context, model string, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	f.models = append(f.models, model)
	if f.err != nil {
		return "", f.err
	}
	return f.result, nil
}

type fakeImages struct {
	images map[string][]byte
	errs   map[string]error
}

func (f *fakeImages) Get(ctx context.Context, name string) ([]byte, error) {
	if err, ok := f.errs[name]; ok {
		return nil, err
	}
	data, ok := f.images[name]
	if !ok {
		return nil, domain.ErrImageNotFound
	}
	return data, nil
}

type fakeSubscription struct {
	subscribed bool
	err        error
}

func (f *fakeSubscription) IsSubscribed(ctx context.Context, userID domain.UserID) (bool, error) {
	return f.subscribed, f.err
}

type fakeRepo struct {
	mu      sync.Mutex
	records []*domain.AnalysisRecord
}

func (f *fakeRepo) Create(ctx context.Context, record *domain.AnalysisRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, record)
	return nil
}

func (f *fakeRepo) ListByUser(ctx context.Context, telegramUserID int64, limit int) ([]*domain.AnalysisRecord, error) {
	return nil, errors.New("not implemented")
}

type fakeAlerter struct {
	mu       sync.Mutex
	messages []string
}

func (f *fakeAlerter) SendAlert(ctx context.Context, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, message)
	return nil
}

type testEnv struct {
	svc       *Service
	tg        *fakeTelegram
	sessions  *inmemory.SessionStore
	extractor *fakeExtractor
	completer *fakeCompleter
	images    *fakeImages
	sub       *fakeSubscription
	repo      *fakeRepo
	alerter   *fakeAlerter
	cfg       *Config
}

func newTestEnv(t *testing.T, models ...string) *testEnv {
	t.Helper()
	if len(models) == 0 {
		models = []string{"gpt-4o-mini"}
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &Config{
		BotName:         "Resume Bot",
		ChannelUsername: "@resume_channel",
		Models:          models,
		TempDir:         t.TempDir(),
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	env := &testEnv{
		tg:        &fakeTelegram{},
		sessions:  inmemory.NewSessionStore(),
		extractor: &fakeExtractor{},
		completer: &fakeCompleter{result: "ok"},
		images:    &fakeImages{images: map[string][]byte{}},
		sub:       &fakeSubscription{},
		repo:      &fakeRepo{},
		alerter:   &fakeAlerter{},
		cfg:       cfg,
	}

	promptStore := prompts.New(env.sessions, texts.DefaultPrompt, log)
	analyzer := NewAnalyzer(env.completer, promptStore, cfg, log)
	env.svc = New(env.tg, env.sessions, promptStore, analyzer, env.extractor, env.images, env.sub, cfg, log)
	env.svc.AnalysisRepo = env.repo
	env.svc.Alerter = env.alerter

	return env
}

func (e *testEnv) session(t *testing.T, userID domain.UserID) domain.Session {
	t.Helper()
	sess, err := e.sessions.Get(context.Background(), userID)
	if err != nil {
		t.Fatal(err)
	}
	return sess
}

func strPtr(s string) *string { return &s }

func textEvent(text string) *domain.Event {
	return &domain.Event{Kind: domain.EventText, UserID: 1, ChatID: 1, MessageID: 100, Text: text}
}

func pdfEvent() *domain.Event {
	return &domain.Event{
		Kind:      domain.EventDocument,
		UserID:    1,
		ChatID:    1,
		MessageID: 200,
		Document: &domain.Document{
			FileID:   "F1",
			MimeType: strPtr(domain.MimeTypePDF),
		},
	}
}
