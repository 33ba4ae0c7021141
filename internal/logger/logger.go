// Package logger holds the process-wide structured logger.
package logger

import (
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Formats accepted by Initialize.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Logger is the global logger. It discards everything until Initialize or
// Set is called.
var Logger *zap.SugaredLogger

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize installs a logger writing to stderr at the given level in
// console or JSON format. Stdout stays free for generated code.
func Initialize(level, format string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return errors.WithHint(errors.Wrapf(err, "invalid log level %q", level),
			"use one of debug, info, warn, error")
	}

	var enc zapcore.Encoder

	switch format {
	case FormatConsole, "":
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		enc = zapcore.NewConsoleEncoder(cfg)
	case FormatJSON:
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		return errors.WithHintf(errors.Newf("invalid log format %q", format),
			"use %q or %q", FormatConsole, FormatJSON)
	}

	Set(zap.New(zapcore.NewCore(enc, zapcore.Lock(os.Stderr), lvl)))

	return nil
}

// Set replaces the global logger.
func Set(l *zap.Logger) {
	Logger = l.Sugar()
}
