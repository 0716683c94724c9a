package logging

// NopLogger discards all log output. It is the default for library entry
// points that were not handed a logger.
type NopLogger struct{}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

func (*NopLogger) Debug(string, ...Field) {}
func (*NopLogger) Info(string, ...Field)  {}
func (*NopLogger) Warn(string, ...Field)  {}
func (*NopLogger) Error(string, ...Field) {}

// With returns the logger unchanged
func (l *NopLogger) With(...Field) Logger { return l }

// SetLevel is a no-op
func (*NopLogger) SetLevel(Level) {}

// GetLevel always reports ErrorLevel
func (*NopLogger) GetLevel() Level { return ErrorLevel }
