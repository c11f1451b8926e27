package logger

import (
	"fmt"

	"github.com/stagepass/stagepass/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeLayout = "2006-01-02 15:04:05.000"

func parseLevel(s string) (zapcore.Level, error) {
	switch s {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InvalidLevel, fmt.Errorf("unsupported log lvl: %s", s)
}

// InitLogger builds a console logger at the configured level and installs
// it as the zap global.
func InitLogger(conf *config.Config) error {
	lvl, err := parseLevel(conf.LogLvl)
	if err != nil {
		return err
	}

	c := zap.Config{
		Level:    zap.NewAtomicLevelAt(lvl),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "msg",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		return fmt.Errorf("unable to create zap logger, error: %w", err)
	}

	zap.ReplaceGlobals(logger)

	return nil
}
