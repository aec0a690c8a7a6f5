// Package logger is the CLI process logger. It writes zerolog JSON, or a
// console format when attached to a terminal, and can stand in for
// ports.Logger so engine diagnostics land in the same stream.
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/overlay/internal/ports"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger wraps zerolog with the handful of calls the CLI needs.
type Logger struct {
	base zerolog.Logger
}

// New creates a Logger from opts. The default level is warn so commands stay
// quiet unless --log-level asks otherwise.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.WarnLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.Kitchen
		output = console
	}

	return &Logger{base: zerolog.New(output).Level(level).With().Timestamp().Logger()}, nil
}

// Level returns the configured minimum level.
func (l *Logger) Level() zerolog.Level {
	if l == nil {
		return zerolog.Disabled
	}
	return l.base.GetLevel()
}

// WithFields returns a derived logger that always writes fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Fields(fields).Logger()}
}

func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error writes an error entry carrying err.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}

// Ports adapts l to ports.Logger.
func (l *Logger) Ports() ports.Logger {
	return &portsLogger{base: l.base}
}

type portsLogger struct {
	base zerolog.Logger
}

func (p *portsLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	p.write(ctx, p.base.Debug(), msg, fields)
}

func (p *portsLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	p.write(ctx, p.base.Info(), msg, fields)
}

func (p *portsLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	p.write(ctx, p.base.Warn(), msg, fields)
}

func (p *portsLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	p.write(ctx, p.base.Error(), msg, fields)
}

func (p *portsLogger) With(fields ...interface{}) ports.Logger {
	return &portsLogger{base: p.base.With().Fields(fields).Logger()}
}

func (p *portsLogger) write(ctx context.Context, event *zerolog.Event, msg string, fields []interface{}) {
	if event == nil {
		return
	}
	if id := ports.SessionID(ctx); id != "" {
		event = event.Str("session_id", id)
	}
	event.Fields(fields).Msg(msg)
}
