package diag

import (
	"github.com/fatih/color"
	"go.uber.org/zap"
)

// Logger encapsulates a Logger and module which it belongs to.
// Use this through SetLogger() of a pass driver.
type Logger struct {
	*zap.SugaredLogger
	module string
}

type LogSetter interface {
	SetLogger(*Logger)
}

// Module returns (stylised) module name.
func (l *Logger) Module() string {
	return l.module
}

// WithModule returns a copy of l tagged with a stylised module name.
func (l *Logger) WithModule(name string) *Logger {
	return &Logger{
		SugaredLogger: l.SugaredLogger,
		module:        color.CyanString(name),
	}
}
