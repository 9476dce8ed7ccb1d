package monitoring

import (
	"io"
	"log"
	"sync"
)

// LogWriters holds the io.Writers for each logging stream.
type LogWriters struct {
	Ops  io.Writer
	Diag io.Writer
}

var (
	mu         sync.RWMutex
	opsLogger  = newLogger(log.Writer())
	diagLogger *log.Logger
)

// Logf is the package-level hook used by Opsf. It may be replaced by
// SetLogger so tests can capture or mute operational messages.
var Logf func(format string, v ...interface{}) = opsPrintf

// SetLogger replaces Logf. Passing nil installs a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	mu.Lock()
	defer mu.Unlock()
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// SetLogWriters configures both streams at once and restores Logf to the
// ops stream. Pass nil for a writer to disable that stream.
func SetLogWriters(w LogWriters) {
	mu.Lock()
	defer mu.Unlock()
	opsLogger = newLogger(w.Ops)
	diagLogger = newLogger(w.Diag)
	Logf = opsPrintf
}

// newLogger creates a *log.Logger for a given writer, or returns nil if w is nil.
func newLogger(w io.Writer) *log.Logger {
	if w == nil {
		return nil
	}
	return log.New(w, "[occupancy] ", log.LstdFlags|log.Lmicroseconds)
}

func opsPrintf(format string, v ...interface{}) {
	mu.RLock()
	l := opsLogger
	mu.RUnlock()
	if l != nil {
		l.Printf(format, v...)
	}
}

// Opsf logs to the ops stream (lifecycle events, store writes, errors).
func Opsf(format string, v ...interface{}) {
	mu.RLock()
	f := Logf
	mu.RUnlock()
	f(format, v...)
}

// Diagf logs to the diag stream (parsed inputs, config values). Disabled
// until SetLogWriters supplies a Diag writer.
func Diagf(format string, v ...interface{}) {
	mu.RLock()
	l := diagLogger
	mu.RUnlock()
	if l != nil {
		l.Printf(format, v...)
	}
}
