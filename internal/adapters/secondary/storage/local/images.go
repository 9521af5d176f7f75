package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
)

// ImageSource картинки инструкций из локальной директории
type ImageSource struct {
	dir string
	log *slog.Logger
}

func NewImageSource(dir string, log *slog.Logger) *ImageSource {
	return &ImageSource{dir: dir, log: log}
}

// Get читает файл name из директории; подкаталоги и выход за её пределы запрещены
func (s *ImageSource) Get(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if name == "" || filepath.Base(name) != name {
		return nil, fmt.Errorf("invalid image name %q: %w", name, domain.ErrImageNotFound)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("image %s: %w", name, domain.ErrImageNotFound)
		}
		return nil, fmt.Errorf("failed to read image %s: %w", name, err)
	}

	return data, nil
}
