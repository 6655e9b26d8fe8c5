package logger

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// L is the process-wide logger. It discards everything until Init is called.
var L = zap.NewNop().Sugar()

var z = zap.NewNop()

type Config struct {
	Verbosity  int    // 0 warn, 1 info, 2+ debug
	File       string // also write to this file, rotated
	MaxSize    int    // MB
	MaxBackups int
	MaxAge     int // days
}

func levelFor(verbosity int) zapcore.Level {
	switch {
	case verbosity <= 0:
		return zapcore.WarnLevel
	case verbosity == 1:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

func Init(cfg Config) error {
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		MessageKey:     "M",
		StacktraceKey:  "S",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	var output io.Writer = os.Stderr
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return err
		}
		output = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    max(cfg.MaxSize, 10),
			MaxBackups: max(cfg.MaxBackups, 3),
			MaxAge:     max(cfg.MaxAge, 7),
			Compress:   true,
		})
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(output),
		levelFor(cfg.Verbosity),
	)

	z = zap.New(core)
	L = z.Sugar()
	return nil
}

// Sync flushes buffered entries; call before exit.
func Sync() {
	_ = z.Sync()
}
