package particlekit

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all log records. Enabled reports false so callers skip
// attribute formatting entirely, keeping disabled logging near zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so SetLogger can be
// called concurrently with logging from scheduler goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for particlekit and all its sub-packages.
// By default the library is silent. Pass nil to restore the silent default.
//
// Levels used:
//   - [slog.LevelDebug]: sampler diagnostics (point counts, task scheduling)
//   - [slog.LevelWarn]: recoverable misuse (spawn on a nil world, render on an
//     empty pixel set)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current library logger. Sub-packages call this to share
// one configuration without import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
