package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger returns a production SugaredLogger tagged with the service name.
func NewZapLogger(service string, level zapcore.Level) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.InitialFields = map[string]interface{}{
		"service": service,
	}

	logger, err := cfg.Build()
	if err != nil {
		// config is static, Build can only fail on a bad sink path
		panic(err)
	}

	return logger.Sugar()
}
