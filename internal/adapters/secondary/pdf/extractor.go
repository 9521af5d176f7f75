package pdf

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extractor достаёт текстовый слой из PDF
type Extractor struct {
	log *slog.Logger
}

func NewExtractor(log *slog.Logger) *Extractor {
	return &Extractor{log: log}
}

// Extract склеивает текст всех страниц по порядку. Ошибки не возвращаются:
// битый файл или PDF без текстового слоя дают пустую строку.
func (e *Extractor) Extract(ctx context.Context, path string) string {
	if err := ctx.Err(); err != nil {
		e.log.Warn("pdf extraction skipped", "error", err, "path", path)
		return ""
	}

	text, err := extractPages(path)
	if err != nil {
		e.log.Error("failed to extract text from pdf",
			"error", err,
			"path", path,
		)
		return ""
	}

	if strings.TrimSpace(text) == "" {
		e.log.Warn("pdf has no text layer", "path", path)
		return ""
	}

	e.log.Debug("pdf text extracted",
		"path", path,
		"length", len([]rune(text)),
	)
	return text
}

func extractPages(path string) (text string, err error) {
	// библиотека паникует на некоторых повреждённых файлах
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", i, err)
		}
		sb.WriteString(pageText)
	}

	return sb.String(), nil
}
