package logger

import corelogger "github.com/kilianp07/enersim/core/logger"

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger implements Logger with no-op methods. It is handy in tests that
// exercise the pipeline without caring about log output.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)         {}
func (NopLogger) Debugw(string, map[string]any) {}
func (NopLogger) Infof(string, ...any)          {}
func (NopLogger) Warnf(string, ...any)          {}
func (NopLogger) Errorf(string, ...any)         {}

// New returns a Logger for the given component at the default info level.
// The environment is detected via the APP_ENV variable.
func New(component string) Logger {
	return NewZerologLogger(component)
}

// NewWithLevel returns a Logger for the given component filtered at the
// configured minimum level.
func NewWithLevel(component, level string) Logger {
	return NewZerologLoggerWithLevel(component, level)
}
