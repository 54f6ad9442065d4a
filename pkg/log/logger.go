// Package log wraps go-logging with named, leveled loggers shared by the
// renderer and the command line tool.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

// Level is a logging verbosity.
type Level logging.Level

// Levels accepted by SetLevel, from most to least verbose.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var backend logging.LeveledBackend

// Logger is the subset of *logging.Logger used across the module.
type Logger interface {
	Debug(v ...any)
	Debugf(format string, v ...any)

	Info(v ...any)
	Infof(format string, v ...any)

	Notice(v ...any)
	Noticef(format string, v ...any)

	Warning(v ...any)
	Warningf(format string, v ...any)

	Error(v ...any)
	Errorf(format string, v ...any)
}

// New returns the logger for module name.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects all loggers to w. The current level is kept.
func SetSink(w io.Writer) {
	level := logging.NOTICE
	if backend != nil {
		level = backend.GetLevel("")
	}
	formatted := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), format)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(level, "")
	logging.SetBackend(backend)
}

// SetLevel sets the verbosity of every module.
func SetLevel(level Level) {
	backend.SetLevel(toLogging(level), "")
}

// Enabled reports whether messages at level are emitted for module name.
func Enabled(level Level, name string) bool {
	return backend.IsEnabledFor(toLogging(level), name)
}

// ParseLevel converts a level name such as "info" or "WARNING".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return Debug, nil
	case "info":
		return Info, nil
	case "notice":
		return Notice, nil
	case "warning", "warn":
		return Warning, nil
	case "error":
		return Error, nil
	}
	return Notice, fmt.Errorf("unknown log level %q", s)
}

func toLogging(level Level) logging.Level {
	switch level {
	case Debug:
		return logging.DEBUG
	case Info:
		return logging.INFO
	case Warning:
		return logging.WARNING
	case Error:
		return logging.ERROR
	default:
		return logging.NOTICE
	}
}

func init() {
	SetSink(os.Stderr)
	SetLevel(Notice)
}
