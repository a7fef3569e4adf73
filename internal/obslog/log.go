// Package obslog provides the structured logger used to record rejected
// intents and engine-invariant violations, without the domain or app
// packages depending on a concrete logging library.
package obslog

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger is the structured-logging surface the engine and its adapters
// depend on. Anything satisfying this can be handed to app.NewSession; the
// zero value of Nop satisfies it and is the default when the caller passes
// nil.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
	With(keyvals ...any) Logger
}

// charmLogger adapts *charmbracelet/log.Logger to the Logger interface.
type charmLogger struct {
	l *log.Logger
}

// New builds a Logger backed by charmbracelet/log, writing to stdout with a
// prefix and level matching the given name and level string.
func New(name string, level string) Logger {
	l := log.New(os.Stdout)
	l.SetPrefix(name)
	l.SetReportTimestamp(true)
	l.SetTimeFormat(time.DateTime)

	switch level {
	case "debug":
		l.SetLevel(log.DebugLevel)
	case "warn":
		l.SetLevel(log.WarnLevel)
	case "error":
		l.SetLevel(log.ErrorLevel)
	default:
		l.SetLevel(log.InfoLevel)
	}
	return &charmLogger{l: l}
}

func (c *charmLogger) Debug(msg string, keyvals ...any) { c.l.Debug(msg, keyvals...) }
func (c *charmLogger) Info(msg string, keyvals ...any)  { c.l.Info(msg, keyvals...) }
func (c *charmLogger) Warn(msg string, keyvals ...any)  { c.l.Warn(msg, keyvals...) }
func (c *charmLogger) Error(msg string, keyvals ...any) { c.l.Error(msg, keyvals...) }

func (c *charmLogger) With(keyvals ...any) Logger {
	return &charmLogger{l: c.l.With(keyvals...)}
}

// nop discards everything. It is the default logger when a caller passes
// nil rather than a configured Logger.
type nop struct{}

// Nop is a Logger that does nothing.
var Nop Logger = nop{}

func (nop) Debug(string, ...any)   {}
func (nop) Info(string, ...any)    {}
func (nop) Warn(string, ...any)    {}
func (nop) Error(string, ...any)   {}
func (nop) With(...any) Logger     { return nop{} }
