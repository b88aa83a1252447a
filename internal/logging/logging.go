// Copyright (C) 2024, Avalanche Parallel Project. All rights reserved.
// See the file LICENSE for licensing terms.

// Package logging provides the Logger/Factory abstraction used by the
// coloring engine's command-line harness, backed by go.uber.org/zap. The
// coloring library package itself does not log.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logging configuration.
type Config struct {
	DisplayLevel string
}

// Logger defines the interface for the logging methods used by the
// command-line harness.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	Fatal(format string, args ...interface{})

	// With returns a logger annotated with the given structured fields.
	With(fields ...zap.Field) Logger
}

// Factory creates new loggers sharing a common level configuration.
type Factory struct {
	level zapcore.Level
}

// zapLogger implements Logger on top of a *zap.SugaredLogger.
type zapLogger struct {
	name  string
	sugar *zap.SugaredLogger
	base  *zap.Logger
}

// NewFactory creates a new Factory with the given config.
func NewFactory(config Config) *Factory {
	level := parseLevel(config.DisplayLevel)
	return &Factory{level: level}
}

func parseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// Make creates a new named logger.
func (f *Factory) Make(name string) (Logger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(os.Stdout),
		f.level,
	)
	base := zap.New(core).Named(name)
	return &zapLogger{
		name:  name,
		sugar: base.Sugar(),
		base:  base,
	}, nil
}

func (l *zapLogger) Debug(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }
func (l *zapLogger) Info(format string, args ...interface{})  { l.sugar.Infof(format, args...) }
func (l *zapLogger) Warn(format string, args ...interface{})  { l.sugar.Warnf(format, args...) }
func (l *zapLogger) Error(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }

func (l *zapLogger) Fatal(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
	_ = l.base.Sync()
	os.Exit(1)
}

func (l *zapLogger) With(fields ...zap.Field) Logger {
	base := l.base.With(fields...)
	return &zapLogger{name: l.name, sugar: base.Sugar(), base: base}
}

// NoOp returns a Logger that discards everything; useful for tests that
// don't want console output but still need to satisfy the interface.
func NoOp() Logger {
	base := zap.NewNop()
	return &zapLogger{name: "noop", sugar: base.Sugar(), base: base}
}
