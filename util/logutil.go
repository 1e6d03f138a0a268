package util

import (
	"log/slog"
	"os"
	"strings"
)

// InitSlog configures the default slog logger from the SQUAWK_LOG_LEVEL
// environment variable (LOG_LEVEL is also honored). Supported levels:
// debug, info, warn, error. Without either variable, logging keeps slog's
// defaults and stays quiet below info.
func InitSlog() {
	logLevel, ok := os.LookupEnv("SQUAWK_LOG_LEVEL")
	if !ok {
		logLevel, ok = os.LookupEnv("LOG_LEVEL")
	}
	if !ok {
		return
	}

	level := parseLevel(logLevel)
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
