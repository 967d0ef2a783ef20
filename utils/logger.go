package utils

import (
	"log"
	"sync"

	"palmcove/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the process-wide logger.
	Logger     *zap.Logger
	loggerOnce sync.Once
)

// NewLogger builds a production (JSON) logger at the given level when
// production is true, otherwise a colourised development logger at debug.
func NewLogger(production bool, level string) (*zap.Logger, error) {
	var cfg zap.Config

	if production {
		cfg = zap.NewProductionConfig()
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			lvl = zapcore.InfoLevel
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg.Build()
}

// InitializeLogger sets up the global logger from AppConfig.
func InitializeLogger() {
	logger, err := NewLogger(config.IsProduction(), config.AppConfig.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	Logger = logger
	zap.ReplaceGlobals(logger)
}

// GetLogger retrieves the global logger
func GetLogger() *zap.Logger {
	loggerOnce.Do(func() {
		if Logger == nil {
			InitializeLogger()
		}
	})
	return Logger
}
