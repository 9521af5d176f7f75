package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	tempJanitorInterval = time.Hour
	tempFileMaxAge      = time.Hour
	// TempFilePattern шаблон временных файлов резюме
	TempFilePattern = "resume_*.pdf"
)

// TempJanitor удаляет временные PDF, оставшиеся после падений процесса
type TempJanitor struct {
	dir    string
	maxAge time.Duration
	now    func() time.Time
	log    *slog.Logger
}

func NewTempJanitor(dir string, log *slog.Logger) *TempJanitor {
	if dir == "" {
		dir = os.TempDir()
	}
	return &TempJanitor{
		dir:    dir,
		maxAge: tempFileMaxAge,
		now:    time.Now,
		log:    log,
	}
}

func (j *TempJanitor) Name() string {
	return "temp_janitor"
}

// NextRun раз в час, по началу следующего часа
func (j *TempJanitor) NextRun(now time.Time) time.Time {
	return now.Truncate(tempJanitorInterval).Add(tempJanitorInterval)
}

func (j *TempJanitor) Run(ctx context.Context) error {
	matches, err := filepath.Glob(filepath.Join(j.dir, TempFilePattern))
	if err != nil {
		return fmt.Errorf("failed to list temp files: %w", err)
	}

	deadline := j.now().Add(-j.maxAge)
	var removed int
	var errs []error

	for _, path := range matches {
		if err := ctx.Err(); err != nil {
			return err
		}

		info, err := os.Stat(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				errs = append(errs, fmt.Errorf("stat %s: %w", path, err))
			}
			continue
		}
		if info.IsDir() || info.ModTime().After(deadline) {
			continue
		}

		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, fmt.Errorf("remove %s: %w", path, err))
			continue
		}
		removed++
	}

	j.log.Info("temp files cleaned",
		"dir", j.dir,
		"found", len(matches),
		"removed", removed,
	)

	return errors.Join(errs...)
}
