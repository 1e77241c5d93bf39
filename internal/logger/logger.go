// Package logger implements the leveled diagnostic log shared by every
// component. Three levels exist: off silences everything, normal keeps
// info and above, verbose adds debug output. Because the terminal is
// owned by the interactive display, the log normally goes to stderr or
// to a file (see NewFile), never to stdout.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Level selects how much the logger emits.
type Level int

const (
	// LevelOff suppresses all output.
	LevelOff Level = iota
	// LevelNormal emits info, warn and error.
	LevelNormal
	// LevelVerbose additionally emits debug.
	LevelVerbose
)

// Logger is a leveled logger safe for concurrent use.
type Logger struct {
	mu     sync.RWMutex
	level  Level
	debug  *log.Logger
	info   *log.Logger
	warn   *log.Logger
	errLog *log.Logger
}

// New builds a logger at the given level writing to out.
// A nil out defaults to os.Stderr.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}

	flags := log.Ldate | log.Ltime

	return &Logger{
		level:  level,
		debug:  log.New(out, "DEBUG ", flags),
		info:   log.New(out, "INFO  ", flags),
		warn:   log.New(out, "WARN  ", flags),
		errLog: log.New(out, "ERROR ", flags),
	}
}

// NewFile builds a logger appending to the file at path, creating it
// if needed. The file is returned so the caller can close it and point
// other log sinks at it.
func NewFile(level Level, path string) (*Logger, *os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(level, f), f, nil
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *Logger {
	return New(LevelOff, io.Discard)
}

// SetLevel changes the level at runtime.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel reports the current level.
func (l *Logger) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// Debug logs at debug level. Only visible in verbose mode.
func (l *Logger) Debug(format string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.level >= LevelVerbose {
		l.debug.Output(2, fmt.Sprintf(format, args...))
	}
}

// Info logs at info level.
func (l *Logger) Info(format string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.level >= LevelNormal {
		l.info.Output(2, fmt.Sprintf(format, args...))
	}
}

// Warn logs at warn level.
func (l *Logger) Warn(format string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.level >= LevelNormal {
		l.warn.Output(2, fmt.Sprintf(format, args...))
	}
}

// Error logs at error level.
func (l *Logger) Error(format string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.level >= LevelNormal {
		l.errLog.Output(2, fmt.Sprintf(format, args...))
	}
}
