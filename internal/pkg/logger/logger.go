package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Encoding  string `envconfig:"ENCODING" default:"console"` // console | json
	Level     string `envconfig:"LEVEL" default:"info"`
	AddSource bool   `envconfig:"ADD_SOURCE" default:"false"`
}

func New(app string, cfg *Config) *slog.Logger {
	return newLogger(app, cfg, os.Stdout, os.Stderr)
}

func newLogger(app string, cfg *Config, stdout, stderr io.Writer) *slog.Logger {
	if cfg == nil {
		cfg = &Config{}
	}

	encoding := cfg.Encoding
	if encoding == "" {
		encoding = "console"
	}
	levelName := cfg.Level
	if levelName == "" {
		levelName = "info"
	}

	level, err := ParseLevel(levelName)
	if err != nil {
		panic(fmt.Errorf("invalid logger config: %w", err))
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler

	switch encoding {
	case "json":
		handler = slog.NewJSONHandler(stdout, opts)
	case "console":
		handler = NewConsoleHandler(stderr, opts)
	default:
		panic(fmt.Errorf("invalid logger config: encoding %s is not supported", encoding))
	}

	return slog.New(handler).With(
		"app", app,
	)
}

// ParseLevel парсит строковый уровень в slog.Level
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("level %s is not supported", level)
	}
}

// ConsoleHandler текстовый вывод для локальной разработки, без поля time
type ConsoleHandler struct {
	handler slog.Handler
}

func NewConsoleHandler(w io.Writer, opts *slog.HandlerOptions) *ConsoleHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	withoutTime := *opts
	replace := opts.ReplaceAttr
	withoutTime.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) == 0 && a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		if replace != nil {
			return replace(groups, a)
		}
		return a
	}

	return &ConsoleHandler{
		handler: slog.NewTextHandler(w, &withoutTime),
	}
}

func (h *ConsoleHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *ConsoleHandler) Handle(ctx context.Context, record slog.Record) error {
	return h.handler.Handle(ctx, record)
}

func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ConsoleHandler{
		handler: h.handler.WithAttrs(attrs),
	}
}

func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	return &ConsoleHandler{
		handler: h.handler.WithGroup(name),
	}
}
