package logging

import "github.com/vvka-141/attrread/pkg/attrread"

var (
	_ attrread.Logger = (*ConsoleLogger)(nil)
	_ attrread.Logger = (*NullLogger)(nil)
)

// NullLogger discards all log messages.
// It is the logger used when a caller passes none.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(format string, args ...interface{}) {}

func (l *NullLogger) Info(format string, args ...interface{}) {}

func (l *NullLogger) Error(format string, args ...interface{}) {}
