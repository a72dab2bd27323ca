// Package diag provides the diagnostics sink injected into training components.
//
// Components never log through package-level state; they receive a Logger and
// default to Nop when none is given.
package diag

import (
	"fmt"
	"log"
)

// Logger receives leveled diagnostic messages.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Std writes leveled messages to a standard library logger.
type Std struct {
	out   *log.Logger
	debug bool
}

// NewStd wraps out. Debug messages are dropped unless EnableDebug is called.
func NewStd(out *log.Logger) *Std {
	return &Std{out: out}
}

// EnableDebug turns debug output on or off.
func (s *Std) EnableDebug(on bool) *Std {
	s.debug = on
	return s
}

// Debugf logs at debug level.
func (s *Std) Debugf(format string, args ...any) {
	if s.debug {
		s.emit("DEBUG", format, args)
	}
}

// Infof logs at info level.
func (s *Std) Infof(format string, args ...any) { s.emit("INFO", format, args) }

// Warnf logs at warning level.
func (s *Std) Warnf(format string, args ...any) { s.emit("WARN", format, args) }

// Errorf logs at error level.
func (s *Std) Errorf(format string, args ...any) { s.emit("ERROR", format, args) }

func (s *Std) emit(level, format string, args []any) {
	s.out.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}

type nop struct{}

func (nop) Debugf(string, ...any) {}
func (nop) Infof(string, ...any)  {}
func (nop) Warnf(string, ...any)  {}
func (nop) Errorf(string, ...any) {}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nop{}
}

// Entry is one message captured by a Recorder.
type Entry struct {
	Level   string
	Message string
}

// Recorder keeps every message in memory. Used by tests that assert on warnings.
type Recorder struct {
	Entries []Entry
}

// Debugf records a debug message.
func (r *Recorder) Debugf(format string, args ...any) { r.add("DEBUG", format, args) }

// Infof records an info message.
func (r *Recorder) Infof(format string, args ...any) { r.add("INFO", format, args) }

// Warnf records a warning.
func (r *Recorder) Warnf(format string, args ...any) { r.add("WARN", format, args) }

// Errorf records an error message.
func (r *Recorder) Errorf(format string, args ...any) { r.add("ERROR", format, args) }

// Messages returns the recorded messages of one level, in order.
func (r *Recorder) Messages(level string) []string {
	var out []string
	for _, e := range r.Entries {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

func (r *Recorder) add(level, format string, args []any) {
	r.Entries = append(r.Entries, Entry{Level: level, Message: fmt.Sprintf(format, args...)})
}
