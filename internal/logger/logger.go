package logger

import (
	"fmt"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Global logger instance
var Logger *zap.Logger

// Init sets up the logging configuration.
// format is "json" for production encoding, anything else gives colored console output.
func Init(level, format string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	Logger = l
	zap.ReplaceGlobals(l)
	return nil
}

// Get retrieves the global logger
func Get() *zap.Logger {
	if Logger == nil {
		if err := Init("info", "console"); err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
	}
	return Logger
}
