package resume

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
	"github.com/admin/tg-bots/resume-bot/internal/usecases/resume/texts"
)

func leftoverTempFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "resume_*.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	return matches
}

func TestNonPDFDocument(t *testing.T) {
	env := newTestEnv(t)
	event := pdfEvent()
	event.Document.MimeType = strPtr("image/png")

	if err := env.svc.HandleDocument(context.Background(), event); err != nil {
		t.Fatal(err)
	}
	if got := env.tg.sentTexts(); len(got) != 1 || got[0] != texts.SendPDF {
		t.Errorf("texts = %v", got)
	}
	if env.extractor.calls != 0 || len(env.repo.records) != 0 {
		t.Error("pipeline must not start for non-PDF")
	}
}

func TestPipelineEndToEnd(t *testing.T) {
	env := newTestEnv(t)
	env.extractor.text = strings.Repeat("A", 5000)
	env.completer.result = strings.Repeat("A", 5000)

	if err := env.svc.HandleDocument(context.Background(), pdfEvent()); err != nil {
		t.Fatalf("HandleDocument: %v", err)
	}

	got := env.tg.sentTexts()
	if len(got) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(got))
	}
	if got[0] != texts.Analyzing || got[1] != texts.AnalysisHeader {
		t.Errorf("unexpected first messages %q, %q", got[0], got[1])
	}
	if len(got[2]) != 4096 || len(got[3]) != 904 {
		t.Errorf("chunks %d and %d, want 4096 and 904", len(got[2]), len(got[3]))
	}
	env.tg.mu.Lock()
	for i, m := range env.tg.messages {
		if m.replyTo != 200 {
			t.Errorf("message %d reply_to = %d, want 200", i, m.replyTo)
		}
	}
	env.tg.mu.Unlock()
	if len(env.completer.prompts) != 1 {
		t.Errorf("analyzer called %d times", len(env.completer.prompts))
	}
	if env.session(t, 1).AnalysisCount != 1 {
		t.Errorf("count = %d", env.session(t, 1).AnalysisCount)
	}
	if !env.extractor.fileSeen {
		t.Error("extractor must receive downloaded file")
	}
	if left := leftoverTempFiles(t, env.cfg.TempDir); len(left) != 0 {
		t.Errorf("temp files left: %v", left)
	}

	if len(env.repo.records) != 1 {
		t.Fatalf("records = %d", len(env.repo.records))
	}
	rec := env.repo.records[0]
	if rec.Status != domain.AnalysisCompleted || rec.TextLength != 5000 || rec.ResultLength != 5000 || rec.ErrorMessage != nil {
		t.Errorf("unexpected record %+v", rec)
	}
}

func TestPipelineWithEditing(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.EditEnabled = true
	env.extractor.text = "resume"
	env.completer.result = "**done**"

	if err := env.svc.HandleDocument(context.Background(), pdfEvent()); err != nil {
		t.Fatal(err)
	}

	got := env.tg.sentTexts()
	want := []string{texts.Analyzing, texts.AnalysisHeader, "done", texts.EditedHeader, "done"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("texts = %v", got)
	}
	if len(env.completer.prompts) != 2 {
		t.Errorf("expected analyze and edit requests, got %d", len(env.completer.prompts))
	}
}

func TestEmptyExtraction(t *testing.T) {
	env := newTestEnv(t)
	env.extractor.text = ""

	err := env.svc.HandleDocument(context.Background(), pdfEvent())
	if !domain.IsBusinessError(err) {
		t.Fatalf("expected business error, got %v", err)
	}

	if env.tg.last().text != texts.ExtractFailed {
		t.Errorf("last reply = %q", env.tg.last().text)
	}
	if len(env.completer.prompts) != 0 {
		t.Error("analyzer must not be called")
	}
	if env.session(t, 1).AnalysisCount != 0 {
		t.Error("count must stay 0")
	}
	if !env.extractor.fileSeen {
		t.Error("temp file must exist during extraction")
	}
	if left := leftoverTempFiles(t, env.cfg.TempDir); len(left) != 0 {
		t.Errorf("temp files left: %v", left)
	}
	if env.repo.records[0].Status != domain.AnalysisExtractFailed {
		t.Errorf("status = %s", env.repo.records[0].Status)
	}
}

func TestDownloadFailure(t *testing.T) {
	env := newTestEnv(t)
	env.tg.downloadErr = errors.New("connection reset")

	err := env.svc.HandleDocument(context.Background(), pdfEvent())
	if !domain.IsBusinessError(err) {
		t.Fatalf("expected business error, got %v", err)
	}

	if env.tg.last().text != texts.DownloadFailed {
		t.Errorf("last reply = %q", env.tg.last().text)
	}
	if env.extractor.calls != 0 {
		t.Error("extractor must not be called")
	}
	if left := leftoverTempFiles(t, env.cfg.TempDir); len(left) != 0 {
		t.Errorf("temp files left: %v", left)
	}
	if len(env.alerter.messages) != 1 {
		t.Errorf("alerts = %d", len(env.alerter.messages))
	}
	if env.repo.records[0].Status != domain.AnalysisDownloadFailed {
		t.Errorf("status = %s", env.repo.records[0].Status)
	}
}

func TestProviderErrorDoesNotIncrement(t *testing.T) {
	env := newTestEnv(t)
	env.extractor.text = "resume"
	env.completer.err = errors.New("timeout")

	err := env.svc.HandleDocument(context.Background(), pdfEvent())
	var providerErr *domain.ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}

	got := env.tg.sentTexts()
	if len(got) != 2 || got[0] != texts.Analyzing || got[1] != texts.FormatAnalyzeFailed("timeout") {
		t.Errorf("texts = %q", got)
	}
	for _, text := range got {
		if strings.HasPrefix(text, texts.AnalysisHeader) {
			t.Errorf("analysis header must not be sent on provider error: %q", text)
		}
	}
	if env.session(t, 1).AnalysisCount != 0 {
		t.Error("count must not increment on provider error")
	}
	rec := env.repo.records[0]
	if rec.Status != domain.AnalysisProviderFailed || rec.ErrorMessage == nil {
		t.Errorf("unexpected record %+v", rec)
	}
}

func TestReplyFailureDoesNotIncrement(t *testing.T) {
	env := newTestEnv(t)
	env.extractor.text = "resume"
	env.tg.sendErr = func(text string) error {
		if text == texts.AnalysisHeader {
			return errors.New("flood wait")
		}
		return nil
	}

	err := env.svc.HandleDocument(context.Background(), pdfEvent())
	if !domain.IsBusinessError(err) {
		t.Fatalf("expected business error, got %v", err)
	}
	if env.tg.last().text != texts.ProcessingFailed {
		t.Errorf("last reply = %q", env.tg.last().text)
	}
	if env.session(t, 1).AnalysisCount != 0 {
		t.Error("count must not increment on reply failure")
	}
}

func TestModelSelectionRequiredBeforeDocument(t *testing.T) {
	env := newTestEnv(t, "gpt-4o-mini", "gpt-4o")
	env.extractor.text = "resume"

	if err := env.svc.HandleDocument(context.Background(), pdfEvent()); err != nil {
		t.Fatal(err)
	}
	if got := env.tg.sentTexts(); len(got) != 1 || got[0] != texts.ChooseModel {
		t.Fatalf("texts = %v", got)
	}

	_ = env.svc.HandleText(context.Background(), textEvent("gpt-4o"))
	if err := env.svc.HandleDocument(context.Background(), pdfEvent()); err != nil {
		t.Fatal(err)
	}
	if len(env.completer.models) != 1 || env.completer.models[0] != "gpt-4o" {
		t.Errorf("models = %v", env.completer.models)
	}
}

func TestDocumentKeepsConversationState(t *testing.T) {
	env := newTestEnv(t)
	env.extractor.text = "resume"
	_ = env.svc.HandleText(context.Background(), textEvent(domain.ButtonEditPrompt))

	if err := env.svc.HandleDocument(context.Background(), pdfEvent()); err != nil {
		t.Fatal(err)
	}
	if env.session(t, 1).State != domain.StateAwaitingNewPrompt {
		t.Error("document must not change state")
	}
}

func TestConcurrentIncrementAnalysisCount(t *testing.T) {
	env := newTestEnv(t)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := env.svc.IncrementAnalysisCount(context.Background(), 7); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if got := env.session(t, 7).AnalysisCount; got != 100 {
		t.Errorf("count = %d, want 100", got)
	}
}
