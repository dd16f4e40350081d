// Package logging configures the process-wide zap logger used by every
// stackforge command.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogOpts struct {
	Verbose  bool
	Encoding string // "console" (default) or "json"
}

func (opts LogOpts) Encoder() zapcore.Encoder {
	switch opts.Encoding {
	case "json":
		if opts.Verbose {
			return zapcore.NewJSONEncoder(zap.NewDevelopmentEncoderConfig())
		}
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

	case "console", "":
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(cfg)

	default:
		panic(fmt.Errorf("unknown encoding %q", opts.Encoding))
	}
}

func (opts LogOpts) NewCore() zapcore.Core {
	level := zap.InfoLevel
	if opts.Verbose {
		level = zap.DebugLevel
	}
	if levelEnv, ok := os.LookupEnv("LOG_LEVEL"); ok {
		if parsed, err := zapcore.ParseLevel(levelEnv); err == nil {
			level = parsed
		}
	}
	return zapcore.NewCore(opts.Encoder(), zapcore.Lock(os.Stderr), level)
}

func (opts LogOpts) NewLogger() *zap.Logger {
	return zap.New(opts.NewCore())
}
