// Package logger wires the engine's zap logger and attaches per-game,
// per-player structured context the way every engine package expects.
package logger

import (
	"os"

	"go.uber.org/zap"
)

var global *zap.Logger

// Init builds the global logger. Level defaults to "info" when nil;
// encoding switches on GO_ENV=production for structured JSON in prod and a
// human-readable console encoder everywhere else.
func Init(level *string) error {
	env := os.Getenv("GO_ENV")
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	appliedLevel := "info"
	if level != nil {
		appliedLevel = *level
	}

	switch appliedLevel {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	built, err := cfg.Build()
	if err != nil {
		return err
	}
	global = built
	return nil
}

// Get returns the global logger, falling back to a development logger if
// Init was never called (e.g. in unit tests).
func Get() *zap.Logger {
	if global == nil {
		global, _ = zap.NewDevelopment()
	}
	return global
}

// Sync flushes any buffered log entries.
func Sync() error {
	if global != nil {
		return global.Sync()
	}
	return nil
}

// WithGame returns a logger annotated with the game id.
func WithGame(gameID string) *zap.Logger {
	return Get().With(zap.String("game_id", gameID))
}

// WithGamePlayer returns a logger annotated with the game and player id.
func WithGamePlayer(gameID, playerID string) *zap.Logger {
	return Get().With(zap.String("game_id", gameID), zap.String("player_id", playerID))
}

// Info, Warn, Error, and Debug log through the global logger, for callers
// that have no per-game context to attach.
func Info(msg string, fields ...zap.Field)  { Get().Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { Get().Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { Get().Error(msg, fields...) }
func Debug(msg string, fields ...zap.Field) { Get().Debug(msg, fields...) }
