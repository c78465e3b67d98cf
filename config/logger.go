package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the configuration of the zap logger use cases write to.
type Logger struct {
	// Level is the minimum enabled level (debug, info, warn, error). Defaults to info.
	Level string `yaml:"level"`

	// Format is the encoding of log entries: json or console.
	Format string `yaml:"format"`

	// Development enables zap's development mode (console output, stack traces on warnings).
	Development bool `yaml:"development"`
}

// Validate validates the logger configuration.
func (c Logger) Validate() error {
	if _, err := c.level(); err != nil {
		return err
	}

	switch c.Format {
	case "", "json", "console":
	default:
		return Error.New("logger: unknown format: %s", c.Format)
	}

	return nil
}

func (c Logger) level() (zapcore.Level, error) {
	if c.Level == "" {
		return zapcore.InfoLevel, nil
	}

	var level zapcore.Level

	err := level.UnmarshalText([]byte(c.Level))
	if err != nil {
		return level, Error.New("logger: invalid level: %s", c.Level)
	}

	return level, nil
}

// CreateLogger creates a new zap logger.
func (c Logger) CreateLogger(opts ...zap.Option) (*zap.Logger, error) {
	level, err := c.level()
	if err != nil {
		return nil, err
	}

	var logCfg zap.Config
	if c.Development {
		logCfg = zap.NewDevelopmentConfig()
		if c.Format != "json" {
			logCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	} else {
		logCfg = zap.NewProductionConfig()
	}

	logCfg.Level = zap.NewAtomicLevelAt(level)

	if c.Format != "" {
		logCfg.Encoding = c.Format
	}

	logger, err := logCfg.Build(opts...)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	return logger, nil
}
