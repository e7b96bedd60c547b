package logger

import (
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slog"
	"gopkg.in/natefinch/lumberjack.v2"

	"todoapp/internal/app/server/config"
	"todoapp/internal/utils/logger/handlers/slogpretty"
)

// Options задает уровень и вывод логгера поверх окружения
type Options struct {
	Env   string
	Level string
	// File включает дублирование логов в файл с ротацией
	File string
}

// New создает логгер для окружения: local - цветной DEBUG, dev - JSON DEBUG, prod - JSON INFO
func New(env string) *slog.Logger {
	return NewWithOptions(Options{Env: env})
}

func NewWithOptions(opts Options) *slog.Logger {
	level := levelFor(opts.Env)
	if opts.Level != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(strings.TrimSpace(opts.Level))); err == nil {
			level = parsed
		}
	}

	out := io.Writer(os.Stdout)
	if opts.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     14,
			Compress:   true,
		})
	}

	if opts.Env == config.EnvLocal || opts.Env == "" {
		return setupPrettySlog(out, level)
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}

func levelFor(env string) slog.Level {
	if env == config.EnvProd {
		return slog.LevelInfo
	}
	return slog.LevelDebug
}

func setupPrettySlog(out io.Writer, level slog.Level) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: level},
	}

	return slog.New(opts.NewPrettyHandler(out))
}

// Discard возвращает логгер, который ничего не пишет
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
