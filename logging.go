package scoredb

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string
	// Mode is "development" for a verbose console logger, anything else for
	// production settings.
	Mode string
	// File, if set, receives the log through a rotating writer instead of
	// stderr.
	File string
	// Console mirrors file output to stdout in development mode.
	Console bool
}

func NewLogger(c LogConfig) (*zap.Logger, error) {
	var cfg zap.Config
	if c.Mode != "development" {
		cfg = zap.NewProductionConfig()
		cfg.DisableCaller = true
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	if c.Level != "" {
		if err := cfg.Level.UnmarshalText([]byte(c.Level)); err != nil {
			return nil, err
		}
	}
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if c.File == "" {
		return cfg.Build()
	}

	ws := getWriteSyncer(c.File)
	if c.Console && c.Mode == "development" {
		ws = zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout), ws)
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg.EncoderConfig), ws, cfg.Level)
	return zap.New(core, buildOptions(cfg)...), nil
}

func buildOptions(cfg zap.Config) []zap.Option {
	var opts []zap.Option
	if !cfg.DisableCaller {
		opts = append(opts, zap.AddCaller())
	}
	if cfg.Development {
		opts = append(opts, zap.Development())
	}
	return opts
}

func getWriteSyncer(logName string) zapcore.WriteSyncer {
	var ioWriter = &lumberjack.Logger{
		Filename:   logName,
		MaxSize:    100, // MB
		MaxBackups: 5,
		MaxAge:     28, // days
	}
	return zapcore.AddSync(ioWriter)
}
