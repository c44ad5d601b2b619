// Package logging configures colored structured logging with tint.
package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs the default slog handler, with its level taken from the
// LOG_LEVEL environment variable (debug, info, warn, error; defaults to
// info).
func Setup() {
	SetupWithLevel(levelFromEnv())
}

// SetupWithLevel installs the default slog handler at the given level,
// overriding whatever LOG_LEVEL names. The CLI uses this so -v/-d flags
// take precedence over the environment.
func SetupWithLevel(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}),
	))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
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
