/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the process-wide leveled logger.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "tokencss",
		Level:  log.InfoLevel,
	})
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	level := logger.GetLevel()
	logger = newLogger(w)
	logger.SetLevel(level)
}

// SetVerbose enables debug output.
func SetVerbose(verbose bool) {
	if verbose {
		logger.SetLevel(log.DebugLevel)
		return
	}
	logger.SetLevel(log.InfoLevel)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	logger.Warnf(format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logger.Infof(format, args...)
}

// Debug logs a debug message, shown only in verbose mode.
func Debug(format string, args ...any) {
	logger.Debugf(format, args...)
}
