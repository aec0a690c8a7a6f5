package logging

import (
	"context"

	cblog "github.com/charmbracelet/log"

	"github.com/alexisbeaulieu97/overlay/internal/ports"
)

// BufferedLogger implements ports.Logger by appending to an EventBuffer.
type BufferedLogger struct {
	buffer *EventBuffer
	level  cblog.Level
	fields []interface{}
}

// NewBufferedLogger returns a logger writing into buffer. Entries below level
// are dropped.
func NewBufferedLogger(buffer *EventBuffer, level cblog.Level) *BufferedLogger {
	return &BufferedLogger{buffer: buffer, level: level}
}

func (l *BufferedLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.DebugLevel, msg, fields)
}

func (l *BufferedLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.InfoLevel, msg, fields)
}

func (l *BufferedLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.WarnLevel, msg, fields)
}

func (l *BufferedLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.ErrorLevel, msg, fields)
}

// With returns a child logger sharing the buffer.
func (l *BufferedLogger) With(fields ...interface{}) ports.Logger {
	next := append(append([]interface{}(nil), l.fields...), fields...)
	return &BufferedLogger{buffer: l.buffer, level: l.level, fields: next}
}

func (l *BufferedLogger) log(ctx context.Context, level cblog.Level, msg string, fields []interface{}) {
	if l == nil || l.buffer == nil || level < l.level {
		return
	}
	l.buffer.add(Entry{
		ctx:     ctx,
		Level:   level,
		Message: msg,
		Fields:  mergeFields(l.fields, fields),
	})
}
