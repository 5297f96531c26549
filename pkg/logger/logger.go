package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	LogLevel zapcore.Level `yaml:"level" envconfig:"LOG_LEVEL"`
	Sink     string        `yaml:"sink" envconfig:"LOG_SINK"`
}

// NewLogger builds a json zap logger named after the service.
// Sink is a zap output path, stdout when empty.
func NewLogger(cfg Log, name string) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	zcfg.Sampling = nil
	zcfg.EncoderConfig.TimeKey = "ts"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Sink != "" {
		zcfg.OutputPaths = []string{cfg.Sink}
	}
	if cfg.LogLevel == zapcore.DebugLevel {
		zcfg.Development = true
	}

	log, err := zcfg.Build()
	if err != nil {
		log = zap.NewExample()
		log.Warn("logger build, fallback to example", zap.Error(err))
	}
	return log.Named(name)
}
