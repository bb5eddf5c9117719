// Package diag carries non-fatal parser diagnostics.
//
// Builders report recoverable conditions (undeclared references, overwritten
// accounts, unknown type codes) through a Logger and keep going. Fatal
// conditions travel through ordinary error returns instead.
package diag

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Logger is the capability builders need to report diagnostics.
// *log.Logger from github.com/charmbracelet/log satisfies it.
type Logger interface {
	Log(level log.Level, msg interface{}, keyvals ...interface{})
}

// Entry is one recorded diagnostic.
type Entry struct {
	Level   log.Level
	Message string
	Keyvals []interface{}
}

// Recorder keeps every diagnostic it receives and optionally forwards it.
type Recorder struct {
	Entries []Entry
	next    Logger
}

// NewRecorder returns a Recorder that forwards to next, which may be nil.
func NewRecorder(next Logger) *Recorder {
	return &Recorder{next: next}
}

// Log implements Logger.
func (r *Recorder) Log(level log.Level, msg interface{}, keyvals ...interface{}) {
	r.Entries = append(r.Entries, Entry{Level: level, Message: fmt.Sprint(msg), Keyvals: keyvals})
	if r.next != nil {
		r.next.Log(level, msg, keyvals...)
	}
}

// Warnings returns the messages logged at warn level.
func (r *Recorder) Warnings() []string {
	var msgs []string
	for _, e := range r.Entries {
		if e.Level == log.WarnLevel {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

// Reset drops recorded entries.
func (r *Recorder) Reset() {
	r.Entries = nil
}

type discard struct{}

func (discard) Log(log.Level, interface{}, ...interface{}) {}

// Discard returns a Logger that drops everything.
func Discard() Logger { return discard{} }

// Warn logs a formatted warning on l.
func Warn(l Logger, format string, args ...interface{}) {
	l.Log(log.WarnLevel, fmt.Sprintf(format, args...))
}

// Debug logs msg with structured keyvals at debug level.
func Debug(l Logger, msg string, keyvals ...interface{}) {
	l.Log(log.DebugLevel, msg, keyvals...)
}
