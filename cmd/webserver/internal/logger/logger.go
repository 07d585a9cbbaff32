package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

var (
	defaultLogger *slog.Logger
	once          sync.Once
)

// Init initializes the global logger based on environment variables.
// DEBUG=true enables debug level logging. LOG_FORMAT=text|json forces the
// output format, otherwise text is used on a terminal and JSON elsewhere.
func Init() {
	InitWith(os.Getenv("DEBUG") == "true", os.Getenv("LOG_FORMAT"))
}

// InitWith initializes the global logger from explicit settings. Only the
// first call to Init or InitWith takes effect.
func InitWith(debug bool, format string) {
	once.Do(func() {
		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		defaultLogger = newLogger(os.Stdout, level, resolveFormat(format, os.Stdout.Fd()))
		slog.SetDefault(defaultLogger)
	})
}

// Setup replaces the global logger with a text logger writing to w. It is
// meant for tests and for callers that configure logging explicitly.
func Setup(w io.Writer, level slog.Level) {
	once.Do(func() {})
	defaultLogger = newLogger(w, level, "text")
	slog.SetDefault(defaultLogger)
}

func newLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func resolveFormat(requested string, fd uintptr) string {
	switch strings.ToLower(requested) {
	case "json":
		return "json"
	case "text":
		return "text"
	}
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return "text"
	}
	return "json"
}

// Debug logs at Debug level.
func Debug(msg string, args ...any) {
	if defaultLogger == nil {
		Init()
	}
	defaultLogger.Debug(msg, args...)
}

// Info logs at Info level.
func Info(msg string, args ...any) {
	if defaultLogger == nil {
		Init()
	}
	defaultLogger.Info(msg, args...)
}

// Warn logs at Warn level.
func Warn(msg string, args ...any) {
	if defaultLogger == nil {
		Init()
	}
	defaultLogger.Warn(msg, args...)
}

// Error logs at Error level.
func Error(msg string, args ...any) {
	if defaultLogger == nil {
		Init()
	}
	defaultLogger.Error(msg, args...)
}

// With returns a new logger with the given attributes.
func With(args ...any) *slog.Logger {
	if defaultLogger == nil {
		Init()
	}
	return defaultLogger.With(args...)
}
