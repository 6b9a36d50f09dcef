// Package logging provides the structured logger used by the bigs CLI.
//
// Library packages (graph, sampler) stay log-free; only the command surface
// reports progress, so one process-wide zap logger is enough.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger is the process-wide instance; a no-op until Init runs, so library
// tests importing this package transitively never print anything.
var logger = zap.NewNop()

// Init builds the CLI logger: console encoder to stderr, info level by
// default, debug when verbose is set.
func Init(verbose bool) {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)
	logger = zap.New(core)
}

// L returns the current logger.
func L() *zap.Logger {
	return logger
}

// Sync flushes buffered log entries; called on process exit.
func Sync() {
	_ = logger.Sync()
}
