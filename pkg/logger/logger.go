package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger

// Init configures the process logger. Development gets human-readable
// text, anything else gets JSON for log shipping.
func Init(environment string) {
	var handler slog.Handler
	if environment == "development" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

func get() *slog.Logger {
	if log == nil {
		log = slog.Default()
	}
	return log
}

func Info(msg string, args ...any) {
	get().Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	get().Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	get().Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	get().Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize lets call sites pass a bare error (or any odd trailing value)
// instead of a key/value pair.
func normalize(args []any) []any {
	out := make([]any, 0, len(args)+1)
	for i := 0; i < len(args); i++ {
		if err, ok := args[i].(error); ok {
			out = append(out, slog.Any("error", err))
			continue
		}
		if i+1 < len(args) {
			out = append(out, args[i], args[i+1])
			i++
			continue
		}
		out = append(out, slog.Any("detail", args[i]))
	}
	return out
}
