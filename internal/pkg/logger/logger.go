// Package logger wraps a process-wide zap logger behind context-taking
// helpers so call sites stay short and request-scoped fields can be
// attached in one place later.
package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global = newDefault()

func newDefault() *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	return l.Sugar()
}

// Init replaces the global logger with one at the given level. Unknown
// levels keep the default.
func Init(level string) {
	var lvl zapcore.Level
	if err := lvl.Set(level); err != nil {
		return
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	global = l.Sugar()
}

func Infof(_ context.Context, format string, args ...interface{}) {
	global.Infof(format, args...)
}

func Warnf(_ context.Context, format string, args ...interface{}) {
	global.Warnf(format, args...)
}

func Errorf(_ context.Context, format string, args ...interface{}) {
	global.Errorf(format, args...)
}

// Fatal logs the error and exits. A nil error is ignored so it can wrap
// server Start calls that return on graceful shutdown.
func Fatal(_ context.Context, err error) {
	if err == nil {
		return
	}
	global.Fatal(err.Error())
}
