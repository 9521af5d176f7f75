package resume

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
	"github.com/admin/tg-bots/resume-bot/internal/usecases/resume/texts"
)

const journalTimeout = 5 * time.Second

var (
	errNoFilePath = errors.New("telegram returned file without path")
	errEmptyText  = errors.New("no text extracted from pdf")
)

// HandleDocument принимает PDF и запускает анализ, состояние диалога не меняет
func (s *Service) HandleDocument(ctx context.Context, event *domain.Event) error {
	doc := event.Document
	if doc == nil || doc.MimeType == nil || *doc.MimeType != domain.MimeTypePDF {
		return s.sendMessage(ctx, event, texts.SendPDF)
	}

	model, ok, err := s.resolveModel(ctx, event.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return s.sendMessageWithKeyboard(ctx, event, texts.ChooseModel, s.modelKeyboard())
	}

	record := &domain.AnalysisRecord{
		ID:             uuid.New(),
		TelegramUserID: int64(event.UserID),
		Model:          model,
		Edited:         s.Config.EditEnabled,
		CreatedAt:      time.Now().UTC(),
	}

	err = s.processResume(ctx, event, model, record)

	record.DurationMillis = time.Since(record.CreatedAt).Milliseconds()
	if err != nil {
		msg := err.Error()
		record.ErrorMessage = &msg
	}
	s.recordAnalysis(ctx, record)

	return err
}

// resolveModel при одной модели выбор не нужен
func (s *Service) resolveModel(ctx context.Context, userID domain.UserID) (string, bool, error) {
	if !s.Config.SelectionRequired() {
		return s.Config.Models[0], true, nil
	}

	sess, err := s.Sessions.Get(ctx, userID)
	if err != nil {
		return "", false, fmt.Errorf("failed to get session: %w", err)
	}
	if sess.Model == "" {
		return "", false, nil
	}
	return sess.Model, true, nil
}

// processResume скачивание, извлечение текста, анализ, ответ и счётчик
func (s *Service) processResume(ctx context.Context, event *domain.Event, model string, record *domain.AnalysisRecord) error {
	if err := s.sendMessage(ctx, event, texts.Analyzing); err != nil {
		record.Status = domain.AnalysisReplyFailed
		return err
	}

	path := s.tempFilePath(event.UserID)
	defer s.removeTempFile(path)

	if err := s.downloadDocument(ctx, event.Document.FileID, path); err != nil {
		record.Status = domain.AnalysisDownloadFailed
		s.Log.Error("failed to download document",
			"error", err,
			"user_id", event.UserID,
			"file_id", event.Document.FileID,
		)
		_ = s.sendMessage(ctx, event, texts.DownloadFailed)
		s.alert(ctx, fmt.Sprintf(texts.AlertDownloadFailed, event.UserID, event.Document.FileID, err))
		return domain.WrapBusinessError(err)
	}

	text := s.Extractor.Extract(ctx, path)
	if text == "" {
		record.Status = domain.AnalysisExtractFailed
		s.Log.Info("no text extracted from document",
			"user_id", event.UserID,
			"file_id", event.Document.FileID,
		)
		_ = s.sendMessage(ctx, event, texts.ExtractFailed)
		return domain.WrapBusinessError(errEmptyText)
	}
	record.TextLength = utf8.RuneCountInString(text)

	analysis, err := s.Analyzer.Analyze(ctx, text, model, event.UserID)
	if err != nil {
		record.Status = domain.AnalysisProviderFailed
		return s.reportAnalyzerError(ctx, event, model, err)
	}
	analysis = StripMarkdown(analysis)
	record.ResultLength = utf8.RuneCountInString(analysis)

	if err := s.sendChunks(ctx, event, texts.AnalysisHeader, analysis); err != nil {
		record.Status = domain.AnalysisReplyFailed
		return s.reportReplyError(ctx, event, err)
	}

	if s.Config.EditEnabled {
		edited, err := s.Analyzer.Edit(ctx, text, model, event.UserID)
		if err != nil {
			record.Status = domain.AnalysisProviderFailed
			return s.reportAnalyzerError(ctx, event, model, err)
		}
		edited = StripMarkdown(edited)
		record.ResultLength += utf8.RuneCountInString(edited)

		if err := s.sendChunks(ctx, event, texts.EditedHeader, edited); err != nil {
			record.Status = domain.AnalysisReplyFailed
			return s.reportReplyError(ctx, event, err)
		}
	}

	count, err := s.IncrementAnalysisCount(ctx, event.UserID)
	if err != nil {
		s.Log.Error("failed to increment analysis count",
			"error", err,
			"user_id", event.UserID,
		)
	}
	record.Status = domain.AnalysisCompleted

	s.Log.Info("resume analyzed",
		"user_id", event.UserID,
		"model", model,
		"text_length", record.TextLength,
		"result_length", record.ResultLength,
		"analysis_count", count,
	)

	return nil
}

// IncrementAnalysisCount +1 к числу завершённых анализов, возвращает новое значение
func (s *Service) IncrementAnalysisCount(ctx context.Context, userID domain.UserID) (int, error) {
	sess, err := s.Sessions.Update(ctx, userID, func(sess *domain.Session) error {
		sess.AnalysisCount++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to increment analysis count: %w", err)
	}
	return sess.AnalysisCount, nil
}

// reportAnalyzerError показывает ошибку модели или провайдера, счётчик не растёт
func (s *Service) reportAnalyzerError(ctx context.Context, event *domain.Event, model string, err error) error {
	var unknownModel *domain.UnknownModelError
	var providerErr *domain.ProviderError

	switch {
	case errors.As(err, &unknownModel):
		s.Log.Warn("unknown model requested",
			"user_id", event.UserID,
			"model", unknownModel.Model,
		)
		_ = s.sendMessage(ctx, event, texts.FormatUnknownModel(unknownModel.Model))
	case errors.As(err, &providerErr):
		s.Log.Error("llm provider failed",
			"error", providerErr.Err,
			"op", providerErr.Op,
			"user_id", event.UserID,
			"model", model,
		)
		if providerErr.Op == domain.ProviderOpEdit {
			_ = s.sendMessage(ctx, event, texts.FormatEditFailed(providerErr.Err.Error()))
		} else {
			_ = s.sendMessage(ctx, event, texts.FormatAnalyzeFailed(providerErr.Err.Error()))
		}
		s.alert(ctx, fmt.Sprintf(texts.AlertProviderFailed, providerErr.Op, event.UserID, model, providerErr.Err))
	default:
		return s.reportReplyError(ctx, event, err)
	}

	return domain.WrapBusinessError(err)
}

// reportReplyError общая ошибка обработки, отправка best effort
func (s *Service) reportReplyError(ctx context.Context, event *domain.Event, err error) error {
	s.Log.Error("failed to process resume",
		"error", err,
		"user_id", event.UserID,
	)
	_ = s.sendMessage(ctx, event, texts.ProcessingFailed)
	s.alert(ctx, fmt.Sprintf(texts.AlertReplyFailed, event.UserID, err))
	return domain.WrapBusinessError(err)
}

// tempFilePath уникальное имя временного файла на каждый запрос
func (s *Service) tempFilePath(userID domain.UserID) string {
	dir := s.Config.TempDir
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, fmt.Sprintf("resume_%d_%s.pdf", userID, uuid.NewString()))
}

func (s *Service) removeTempFile(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.Log.Warn("failed to remove temp file",
			"error", err,
			"path", path,
		)
	}
}

// downloadDocument getFile + скачивание во временный файл
func (s *Service) downloadDocument(ctx context.Context, fileID, path string) error {
	file, err := s.TelegramClient.GetFile(ctx, fileID)
	if err != nil {
		return fmt.Errorf("failed to get file: %w", err)
	}
	if file.FilePath == nil || *file.FilePath == "" {
		return errNoFilePath
	}

	out, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if err := s.TelegramClient.DownloadFile(ctx, *file.FilePath, out); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to download file: %w", err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	return nil
}

// recordAnalysis журнал в Postgres и событие в Kafka, ошибки пользователю не показываются
func (s *Service) recordAnalysis(ctx context.Context, record *domain.AnalysisRecord) {
	if s.AnalysisRepo == nil && s.KafkaProducer == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), journalTimeout)
	defer cancel()

	if s.AnalysisRepo != nil {
		if err := s.AnalysisRepo.Create(ctx, record); err != nil {
			s.Log.Error("failed to save analysis record",
				"error", err,
				"analysis_id", record.ID,
				"user_id", record.TelegramUserID,
			)
		}
	}

	if s.KafkaProducer != nil {
		if err := s.KafkaProducer.PublishAnalysis(ctx, record); err != nil {
			s.Log.Error("failed to publish analysis event",
				"error", err,
				"analysis_id", record.ID,
				"user_id", record.TelegramUserID,
			)
		}
	}
}
