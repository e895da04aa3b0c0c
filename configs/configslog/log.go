package configslog

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the structured logger; SLog is its sugared twin for printf-style messages.
// Both are no-op until InitLogger runs.
var (
	Log  = zap.NewNop()
	SLog = Log.Sugar()
)

// InitLogger builds the process logger. production selects the JSON encoder,
// anything else the colored console encoder. level is a zap level name.
func InitLogger(production bool, level string) {
	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger flushes buffered entries. Errors from syncing stdout/stderr are ignored.
func SyncLogger() {
	_ = Log.Sync()
}
