// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

// Package logger holds the zerolog logger shared by the VortexDB client.
//
// Because this is a library, the logger stays quiet by default (warn level).
// Applications can raise verbosity with SetLevel or the VORTEX_LOG_LEVEL
// environment variable.
package logger

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"
)

var globalLogger zerolog.Logger

func init() {
	level := zerolog.WarnLevel
	if env := os.Getenv("VORTEX_LOG_LEVEL"); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil && parsed != zerolog.NoLevel {
			level = parsed
		}
	}

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}

	globalLogger = zerolog.New(os.Stderr).
		With().
		Timestamp().
		Str("component", "vortex-client").
		Logger().
		Level(level)
}

// SetLevel updates the global log level.
func SetLevel(level zerolog.Level) {
	globalLogger = globalLogger.Level(level)
}

// SetLogger replaces the client logger, e.g. to route into an application's
// own zerolog instance.
func SetLogger(logger zerolog.Logger) {
	globalLogger = logger
}

func Error() *zerolog.Event {
	return globalLogger.Error()
}

func Warn() *zerolog.Event {
	return globalLogger.Warn()
}

func Info() *zerolog.Event {
	return globalLogger.Info()
}

func Debug() *zerolog.Event {
	return globalLogger.Debug()
}

func Trace() *zerolog.Event {
	return globalLogger.Trace()
}
