// Package sl создаёт логгер slog под окружение и формирует атрибуты ошибок.
package sl

import (
	"io"
	"log/slog"
)

// Окружения, влияющие на формат логов.
const (
	envLocal       = "local"
	envDevelopment = "development"
)

// Err возвращает slog.Attr с ключом "error" и значением текста ошибки.
//
// Пример:
//
//	log.Error("failed to do something", sl.Err(err))
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// New собирает логгер под окружение: текст и debug локально, JSON и info иначе.
func New(env string, w io.Writer) *slog.Logger {
	switch env {
	case envLocal, envDevelopment:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}

// Discard возвращает логгер, который ничего не пишет. Удобно в тестах.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
