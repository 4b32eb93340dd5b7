package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar = zap.NewNop().Sugar()

// New builds a zap logger for the given level/format. Format "json" selects
// the production encoder; anything else the development console encoder.
func New(levelStr, format string) *zap.Logger {
	level := zapcore.InfoLevel
	switch levelStr {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	l, _ := cfg.Build()
	return l
}

// Init installs the process-wide logger used by L().
func Init(levelStr, format string) *zap.Logger {
	l := New(levelStr, format)
	sugar = l.Sugar()
	return l
}

// L returns the process-wide sugared logger. Defaults to a nop logger so
// library code and tests never nil-check.
func L() *zap.SugaredLogger {
	return sugar
}
