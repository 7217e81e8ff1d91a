package observability

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process logger at the given level ("debug", "info", ...).
// Unknown levels fall back to info.
func NewLogger(serviceName, level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	config.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("service", serviceName)), nil
}

// SugarLogger adapts a zap logger to the Printf/Warnf Logger interfaces
// used across the internal packages.
type SugarLogger struct {
	*zap.SugaredLogger
}

// NewSugarLogger wraps logger.
func NewSugarLogger(logger *zap.Logger) *SugarLogger {
	return &SugarLogger{SugaredLogger: logger.Sugar()}
}

// Printf logs at info level.
func (l *SugarLogger) Printf(format string, v ...interface{}) {
	l.Infof(format, v...)
}
