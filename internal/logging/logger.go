// Package logging wires up the shared slog.Logger used by cmd/server
// and the engine's command-queue Runner.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/orderbook-engine/clob/internal/config"
)

// New builds a JSON slog.Logger that writes to both stdout and a
// rotating file at cfg.Logging.LogFile. Falls back to stderr-only if
// the log directory can't be created.
func New(cfg *config.Config) *slog.Logger {
	logFile := cfg.Logging.LogFile
	if logFile == "" {
		logFile = "logs/clob.log"
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}

	rotator := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
	writer := io.MultiWriter(os.Stdout, rotator)

	opts := &slog.HandlerOptions{Level: levelFromString(cfg.Logging.Level)}
	return slog.New(slog.NewJSONHandler(writer, opts))
}

func levelFromString(s string) slog.Level {
	switch s {
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
