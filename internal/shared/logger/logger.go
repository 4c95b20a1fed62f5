package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Setup configures the global slog logger based on environment.
// LOG_LEVEL (debug|info|warn|error) overrides the environment default.
func Setup(env string) {
	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	switch env {
	case "production", "prod":
		// Production: JSON format, info level
		opts.Level = levelFromEnv(slog.LevelInfo)
		handler = slog.NewJSONHandler(os.Stdout, opts)
	case "local", "dev", "development":
		// Development: Text format, debug level
		opts.Level = levelFromEnv(slog.LevelDebug)
		handler = slog.NewTextHandler(os.Stdout, opts)
	default:
		opts.Level = levelFromEnv(slog.LevelInfo)
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Logger 초기화", "env", env, "level", opts.Level.Level().String())
}

// ParseLevel converts a level name to slog.Level, falling back to def
func ParseLevel(name string, def slog.Level) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return def
	}
	return level
}

func levelFromEnv(def slog.Level) slog.Level {
	return ParseLevel(os.Getenv("LOG_LEVEL"), def)
}
