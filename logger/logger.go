package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log *zap.Logger
	mu  sync.RWMutex
)

func init() {
	log = newLogger(zapcore.InfoLevel, false)
}

func newLogger(level zapcore.Level, development bool) *zap.Logger {
	var conf zap.Config
	if development {
		conf = zap.NewDevelopmentConfig()
	} else {
		conf = zap.NewProductionConfig()
		conf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	conf.Level = zap.NewAtomicLevelAt(level)
	l, err := conf.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// Init replaces the process logger. level is one of debug, info, warn, error.
func Init(level string, development bool) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return err
	}
	l := newLogger(lvl, development)
	mu.Lock()
	defer mu.Unlock()
	log = l
	return nil
}

// Replace swaps the process logger, used by tests to observe output.
func Replace(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

func get() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Debug(msg string, fields ...zap.Field) {
	get().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	get().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	get().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	get().Error(msg, fields...)
}

func Sync() error {
	return get().Sync()
}
