// SPDX-License-Identifier: MIT

// Package log holds the process-wide logger shared by the hanzi builders.
//
// The default logger is zapr over a no-op zap core, so nothing is printed
// unless the application installs its own logger through SetLogger
// (exposed publicly as chinese.SetLogger). Rendering never logs; only
// builders report rejected input, at verbosity 1.
package log

import (
	"sync/atomic"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
)

var current atomic.Pointer[logr.Logger]

func init() {
	SetLogger(defaultLogger())
}

func defaultLogger() logr.Logger {
	return zapr.NewLogger(zap.NewNop())
}

// Logger returns the current process-wide logger.
func Logger() logr.Logger {
	return *current.Load()
}

// SetLogger replaces the process-wide logger. A zero logr.Logger restores
// the silent default.
func SetLogger(logger logr.Logger) {
	if logger.GetSink() == nil {
		logger = defaultLogger()
	}
	current.Store(&logger)
}

// Rejected records a failed build. builder names the value being built
// (for example "renminbi" or "date").
func Rejected(builder string, err error, keysAndValues ...any) {
	kv := append([]any{"builder", builder, "error", err}, keysAndValues...)
	Logger().V(1).Info("build rejected", kv...)
}
