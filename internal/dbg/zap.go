package dbg

import (
	"fmt"

	"github.com/peter-kozarec/stationarity/pkg/utility"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a development (console) or production (json) logger at the given level.
// Every entry carries the execution id.
func NewLogger(level string, development bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableCaller = true

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.Stringer("eid", utility.GetExecutionID())), nil
}
