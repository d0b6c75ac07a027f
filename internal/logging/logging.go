// Package logging builds the zap logger used by the command-line tools.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Option configures New.
type Option func(*options)

type options struct {
	verbose bool
	out     io.Writer
}

// WithVerbose lowers the level to Debug.
func WithVerbose(v bool) Option {
	return func(o *options) {
		o.verbose = v
	}
}

// WithOutput redirects log output; the default is stderr.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// New returns a console logger at Info level, or Debug when verbose.
func New(opts ...Option) *zap.Logger {
	o := options{out: os.Stderr}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	level := zapcore.InfoLevel
	if o.verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(o.out),
		zap.NewAtomicLevelAt(level),
	)

	return zap.New(core)
}
