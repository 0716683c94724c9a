package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents a log level
type Level int

const (
	// DebugLevel logs are typically voluminous, and are usually disabled in production
	DebugLevel Level = iota
	// InfoLevel is the default logging priority
	InfoLevel
	// WarnLevel logs are more important than Info, but don't need individual human review
	WarnLevel
	// ErrorLevel logs are high-priority. If an application is running smoothly, it shouldn't generate any error-level logs
	ErrorLevel
)

// String returns the string representation of a log level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	switch s {
	case "DEBUG", "debug":
		return DebugLevel
	case "INFO", "info":
		return InfoLevel
	case "WARN", "warn", "WARNING", "warning":
		return WarnLevel
	case "ERROR", "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Field represents a key-value pair for structured logging
type Field struct {
	Key   string
	Value any
}

// Logger is the interface for structured logging
type Logger interface {
	// Debug logs a debug-level message
	Debug(msg string, fields ...Field)
	// Info logs an info-level message
	Info(msg string, fields ...Field)
	// Warn logs a warning-level message
	Warn(msg string, fields ...Field)
	// Error logs an error-level message
	Error(msg string, fields ...Field)
	// With creates a child logger with the given fields pre-set
	With(fields ...Field) Logger
	// SetLevel sets the minimum log level
	SetLevel(level Level)
	// GetLevel returns the current log level
	GetLevel() Level
}

// LogEntry is the JSON shape of one emitted log line
type LogEntry struct {
	Time    string         `json:"time"`
	Level   string         `json:"level"`
	Message string         `json:"message"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// JSONLogger implements Logger with JSON output
type JSONLogger struct {
	mu     sync.Mutex
	writer io.Writer
	level  Level
	fields []Field
}

// NewJSONLogger creates a new JSON logger
func NewJSONLogger(writer io.Writer, level Level) *JSONLogger {
	return &JSONLogger{
		writer: writer,
		level:  level,
		fields: make([]Field, 0),
	}
}

// NewDefaultLogger creates a logger that writes to stdout at INFO level
func NewDefaultLogger() *JSONLogger {
	return NewJSONLogger(os.Stdout, InfoLevel)
}

// log is the internal logging method
func (l *JSONLogger) log(level Level, msg string, fields ...Field) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fieldMap := make(map[string]any)
	for _, f := range l.fields {
		fieldMap[f.Key] = f.Value
	}
	for _, f := range fields {
		fieldMap[f.Key] = f.Value
	}

	entry := LogEntry{
		Time:    time.Now().Format(time.RFC3339Nano),
		Level:   level.String(),
		Message: msg,
	}
	if len(fieldMap) > 0 {
		entry.Fields = fieldMap
	}

	data, err := json.Marshal(entry)
	if err != nil {
		// Fallback to simple text logging if JSON marshal fails
		fmt.Fprintf(l.writer, "[ERROR] Failed to marshal log entry: %v\n", err)
		return
	}

	l.writer.Write(data)
	l.writer.Write([]byte("\n"))
}

// Debug logs a debug-level message
func (l *JSONLogger) Debug(msg string, fields ...Field) {
	l.log(DebugLevel, msg, fields...)
}

// Info logs an info-level message
func (l *JSONLogger) Info(msg string, fields ...Field) {
	l.log(InfoLevel, msg, fields...)
}

// Warn logs a warning-level message
func (l *JSONLogger) Warn(msg string, fields ...Field) {
	l.log(WarnLevel, msg, fields...)
}

// Error logs an error-level message
func (l *JSONLogger) Error(msg string, fields ...Field) {
	l.log(ErrorLevel, msg, fields...)
}

// With creates a child logger with the given fields pre-set
func (l *JSONLogger) With(fields ...Field) Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	child := &JSONLogger{
		writer: l.writer,
		level:  l.level,
		fields: make([]Field, 0, len(l.fields)+len(fields)),
	}
	child.fields = append(child.fields, l.fields...)
	child.fields = append(child.fields, fields...)
	return child
}

// SetLevel sets the minimum log level
func (l *JSONLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current log level
func (l *JSONLogger) GetLevel() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}
