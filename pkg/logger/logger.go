package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/frahmantamala/hr-records/internal"
)

var defaultLogger *slog.Logger

// Init installs the process-wide logger. format is "json" or "text"; level is
// one of debug, info, warn, error.
func Init(level, format string) {
	defaultLogger = New(os.Stdout, level, format)
	slog.SetDefault(defaultLogger)
}

func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func LoggerWrapper() *slog.Logger {
	if defaultLogger == nil {
		// lazy initialize a development logger to avoid nil pointer panics
		Init("debug", "text")
	}
	return defaultLogger
}

// Failure logs err at error level, except when the caller cancelled the
// request: that is expected and goes to debug.
func Failure(ctx context.Context, l *slog.Logger, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if internal.IsCanceled(err) {
		l.DebugContext(ctx, msg+": request cancelled", args...)
		return
	}
	l.ErrorContext(ctx, msg, args...)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
