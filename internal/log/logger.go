// SPDX-License-Identifier: MIT
package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
	"sync/atomic"
)

// LogLevel defines the severity of a log message.
type LogLevel uint32

// Constants for log levels.
const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string (case-insensitive) to a LogLevel.
// Returns LevelInfo and false if the string is not recognized.
func ParseLevel(levelStr string) (LogLevel, bool) {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return LevelDebug, true
	case "INFO":
		return LevelInfo, true
	case "WARN", "WARNING":
		return LevelWarn, true
	case "ERROR":
		return LevelError, true
	case "FATAL":
		return LevelFatal, true
	default:
		return LevelInfo, false
	}
}

// --- Global Logger State ---

var currentLevel atomic.Uint32

// logger writes to stderr so that command results on stdout stay clean.
var logger = stdlog.New(os.Stderr, "", stdlog.Ldate|stdlog.Ltime|stdlog.Lmicroseconds)

func init() {
	SetLevel(LevelInfo)
}

// SetLevel sets the global logging level atomically.
func SetLevel(level LogLevel) {
	currentLevel.Store(uint32(level))
}

// GetLevel gets the current global logging level atomically.
func GetLevel() LogLevel {
	return LogLevel(currentLevel.Load())
}

// SetOutput redirects all log output to w.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Configure applies a textual level such as "debug" or "warn". Unknown
// levels leave the current level unchanged and are reported as an error.
func Configure(level string) error {
	parsed, ok := ParseLevel(level)
	if !ok {
		return fmt.Errorf("unknown log level %q", level)
	}
	SetLevel(parsed)
	return nil
}

func shouldLog(level LogLevel) bool {
	return level >= GetLevel()
}

func output(level LogLevel, msg string) {
	if shouldLog(level) {
		logger.Printf("[%-5s] %s", level, msg)
	}
}

// --- Public Logging Functions ---

// Debugf logs a formatted debug message if the level is appropriate.
func Debugf(format string, v ...any) {
	output(LevelDebug, fmt.Sprintf(format, v...))
}

// Infof logs a formatted info message if the level is appropriate.
func Infof(format string, v ...any) {
	output(LevelInfo, fmt.Sprintf(format, v...))
}

// Warnf logs a formatted warning message if the level is appropriate.
func Warnf(format string, v ...any) {
	output(LevelWarn, fmt.Sprintf(format, v...))
}

// Errorf logs a formatted error message if the level is appropriate.
func Errorf(format string, v ...any) {
	output(LevelError, fmt.Sprintf(format, v...))
}

// Fatalf logs a formatted fatal message and exits the application.
// Fatal messages are always logged regardless of the current level.
func Fatalf(format string, v ...any) {
	logger.Fatalf("[%-5s] %s", LevelFatal, fmt.Sprintf(format, v...))
}

// --- Functions without formatting (convenience) ---

// Debug logs a debug message if the level is appropriate.
func Debug(v ...any) {
	output(LevelDebug, fmt.Sprint(v...))
}

// Info logs an info message if the level is appropriate.
func Info(v ...any) {
	output(LevelInfo, fmt.Sprint(v...))
}

// Warn logs a warning message if the level is appropriate.
func Warn(v ...any) {
	output(LevelWarn, fmt.Sprint(v...))
}

// Error logs an error message if the level is appropriate.
func Error(v ...any) {
	output(LevelError, fmt.Sprint(v...))
}

// Fatal logs a fatal message and exits the application.
func Fatal(v ...any) {
	logger.Fatalf("[%-5s] %s", LevelFatal, fmt.Sprint(v...))
}
