// Package symspelllog builds the structured loggers the engine uses for
// build/lookup lifecycle events, following the zap + lumberjack pairing
// used elsewhere in the corpus this module was grown from.
package symspelllog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures log level and optional file rotation. A zero-value
// Options produces a JSON logger writing to stderr at info level.
type Options struct {
	Level      zapcore.Level
	FilePath   string // empty disables file rotation, logging to stderr only
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New builds a *zap.Logger per opts. When FilePath is set, log lines are
// written to a lumberjack-rotated file instead of stderr.
func New(opts Options) (*zap.Logger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var sink zapcore.WriteSyncer
	if opts.FilePath != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    orDefault(opts.MaxSizeMB, 100),
			MaxBackups: orDefault(opts.MaxBackups, 3),
			MaxAge:     orDefault(opts.MaxAgeDays, 28),
		})
	} else {
		sink = zapcore.Lock(os.Stderr)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), sink, opts.Level)
	return zap.New(core), nil
}

// Nop returns a logger that discards everything, for tests and callers that
// don't want engine lifecycle logging.
func Nop() *zap.Logger {
	return zap.NewNop()
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
