// Package logger builds the zap logger shared by the CLI and the filter
// pipeline.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the logger's level and encoding.
type Options struct {
	// Verbose enables debug output, including the per-filter trace.
	Verbose bool
	// Quiet discards everything. It wins over Verbose.
	Quiet bool
	// JSON switches from the console encoder to structured JSON.
	JSON bool
	// Out receives log lines. Defaults to stderr.
	Out io.Writer
}

// New returns a logger for opts.
func New(opts Options) *zap.SugaredLogger {
	if opts.Quiet {
		return Nop()
	}

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	level := zap.InfoLevel
	if opts.Verbose {
		level = zap.DebugLevel
	}

	var encoder zapcore.Encoder
	if opts.JSON {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(cfg)
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(out), level)
	return zap.New(core).Sugar()
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
