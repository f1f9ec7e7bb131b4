package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a no-op until Init is called so packages stay usable in tests.
var Logger = zap.NewNop()

// Init - 로거 초기화
// level is one of debug, info, warn, error; unknown values fall back to info.
func Init(level string) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.StacktraceKey = ""

	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		atomicLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	config.Level = atomicLevel

	Logger, err = config.Build()
	if err != nil {
		panic(err)
	}
}

// Sync - 로거 플러시
func Sync() {
	_ = Logger.Sync()
}
