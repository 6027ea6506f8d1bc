// Package logger builds the zap logger used for diagnostics.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"task-factory/internal/config"
)

// Build returns a logger writing every level to stderr, leaving stdout for program output.
func Build(cfg config.Config) *zap.Logger {
	return New(cfg, os.Stderr)
}

func New(cfg config.Config, w io.Writer) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder
	encCfg.EncodeName = func(s string, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString("[" + s + "]")
	}

	encoder := zapcore.NewJSONEncoder(encCfg)
	if cfg.LogEncoding == "console" {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(cfg.LogLevel))
	return zap.New(core, zap.AddCaller())
}
