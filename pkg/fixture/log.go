package fixture

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Debug logs msg at debug level unless the fixture is quiet.
func (f *Fixture) Debug(msg any) { f.logAt(log.DebugLevel, msg) }

// Info logs msg at info level unless the fixture is quiet.
func (f *Fixture) Info(msg any) { f.logAt(log.InfoLevel, msg) }

// Warn logs msg at warn level unless the fixture is quiet.
func (f *Fixture) Warn(msg any) { f.logAt(log.WarnLevel, msg) }

// Error logs msg at error level unless the fixture is quiet.
func (f *Fixture) Error(msg any) { f.logAt(log.ErrorLevel, msg) }

// Fatal logs at fatal level. It does not exit; the scenario decides
// whether to keep going.
func (f *Fixture) Fatal(msg any) { f.logAt(log.FatalLevel, msg) }

// Quiet reports whether logging is currently suppressed by an ignoring wait.
func (f *Fixture) Quiet() bool {
	return f.quiet.Load() > 0
}

func (f *Fixture) logAt(level log.Level, msg any) {
	if f.Quiet() {
		return
	}
	f.funcs.Log(level, msg)
}

func (f *Fixture) log(level log.Level, msg any) {
	switch m := msg.(type) {
	case string:
		f.opts.Logger.Log(level, m)
	default:
		f.opts.Logger.Log(level, fmt.Sprintf("%+v", m))
	}
}

// silence suppresses logging until the returned func is called. Calls
// nest and may overlap across goroutines.
func (f *Fixture) silence() func() {
	f.quiet.Add(1)
	return func() {
		f.quiet.Add(-1)
	}
}
