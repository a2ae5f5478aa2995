package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger returns the stderr logger for a command run.
// --verbose enables debug output, --quiet keeps only errors.
func newLogger() *log.Logger {
	return newLoggerTo(os.Stderr)
}

func newLoggerTo(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "cssorder",
	})

	switch {
	case getBoolWithFallback("quiet", "quiet", false):
		logger.SetLevel(log.ErrorLevel)
	case getBoolWithFallback("verbose", "verbose", false):
		logger.SetLevel(log.DebugLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	return logger
}
