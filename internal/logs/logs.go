// Package logs builds the CLI logger.
package logs

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"fabforge/internal/config"
)

// New returns a zap logger writing to stderr, or to a rotated file when cfg.File is set.
func New(cfg config.Log, stderr io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.WithMessagef(err, "log level %q", cfg.Level)
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var sink zapcore.WriteSyncer
	var encoder zapcore.Encoder
	if cfg.File != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     28,
			Compress:   true,
		})
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		sink = zapcore.AddSync(stderr)
		if cfg.JSON {
			encoder = zapcore.NewJSONEncoder(encCfg)
		} else {
			encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
			encoder = zapcore.NewConsoleEncoder(encCfg)
		}
	}

	return zap.New(zapcore.NewCore(encoder, sink, level)), nil
}
