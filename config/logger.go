package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger sets up the global zap logger. LOG_LEVEL and APP_ENV drive the
// configuration; development gets the human-friendly console encoder.
func InitLogger() error {
	var level zapcore.Level
	switch EnvOrDefault("LOG_LEVEL", "info") {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var (
		logger *zap.Logger
		err    error
	)
	if EnvOrDefault("APP_ENV", "development") == "production" {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		logger, err = cfg.Build(zap.Fields(zap.String("service", "hotel-booking-backend")))
	} else {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = cfg.Build()
	}
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(logger)
	return nil
}
