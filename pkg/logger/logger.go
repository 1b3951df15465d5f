package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Level is the minimum severity a logger writes
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	// LevelOff silences the logger entirely
	LevelOff
)

var (
	mu        sync.RWMutex
	threshold = LevelInfo
	output    io.Writer = os.Stdout
)

// Logger is a wrapper around the standard library logger
type Logger struct {
	component string
}

// New creates a new logger tagged with the given component name
func New(component string) *Logger {
	return &Logger{component: component}
}

// ParseLevel converts a LOG_LEVEL value to a Level. Unknown values map to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "off", "none", "quiet":
		return LevelOff
	default:
		return LevelInfo
	}
}

// String returns the tag printed in log lines
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "OFF"
	}
}

// SetLevel sets the process-wide log threshold
func SetLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()
	threshold = level
}

// SetOutput redirects every logger to w. A nil writer restores os.Stdout.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stdout
	}
	output = w
}

// formatMessage formats a log message with timestamp and component
func (l *Logger) formatMessage(level Level, format string, v ...interface{}) string {
	timestamp := time.Now().Format(time.RFC3339)
	message := fmt.Sprintf(format, v...)

	if l.component != "" {
		return fmt.Sprintf("[%s] [%s] [%s] %s", timestamp, level, l.component, message)
	}

	return fmt.Sprintf("[%s] [%s] %s", timestamp, level, message)
}

func (l *Logger) write(level Level, format string, v ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	if level < threshold {
		return
	}
	log.New(output, "", 0).Println(l.formatMessage(level, format, v...))
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	l.write(LevelInfo, format, v...)
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.write(LevelError, format, v...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	l.write(LevelDebug, format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) {
	l.write(LevelWarn, format, v...)
}

// Global logger instance for application-wide logging
var Global = New("")
