package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	cblog "github.com/charmbracelet/log"

	"github.com/alexisbeaulieu97/overlay/internal/ports"
)

// Options configures the charmbracelet/log adapter.
type Options struct {
	Writer io.Writer
	Level  string
	// Format is one of text, json or logfmt. Empty means text.
	Format       string
	TimeFormat   string
	ReportCaller bool
	Prefix       string
	Layer        string
	Component    string
	Fields       map[string]interface{}
}

// Logger implements ports.Logger on top of charmbracelet/log.
type Logger struct {
	logger *cblog.Logger
	fields []interface{}
	layer  string
}

// New builds a Logger from opts.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	formatter, err := parseFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	base := cblog.NewWithOptions(writer, cblog.Options{
		Level:           level,
		TimeFormat:      opts.TimeFormat,
		ReportTimestamp: opts.TimeFormat != "",
		ReportCaller:    opts.ReportCaller,
		Formatter:       formatter,
		Prefix:          opts.Prefix,
		Fields:          sortedFields(opts.Fields),
	})

	var fields []interface{}
	if opts.Component != "" {
		fields = append(fields, "component", opts.Component)
	}
	layer := opts.Layer
	if layer == "" {
		layer = "engine"
	}
	return &Logger{logger: base, fields: fields, layer: layer}, nil
}

// ParseLevel maps a level name to a charmbracelet/log level. Empty means info.
func ParseLevel(name string) (cblog.Level, error) {
	if strings.TrimSpace(name) == "" {
		return cblog.InfoLevel, nil
	}
	level, err := cblog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return cblog.InfoLevel, fmt.Errorf("parse log level: %w", err)
	}
	return level, nil
}

func parseFormat(name string) (cblog.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		return cblog.TextFormatter, nil
	case "json":
		return cblog.JSONFormatter, nil
	case "logfmt":
		return cblog.LogfmtFormatter, nil
	default:
		return cblog.TextFormatter, fmt.Errorf("unknown log format %q", name)
	}
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.DebugLevel, msg, fields)
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.InfoLevel, msg, fields)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.WarnLevel, msg, fields)
}

func (l *Logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.ErrorLevel, msg, fields)
}

// With derives a logger carrying extra persistent fields.
func (l *Logger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return &NoOpLogger{}
	}
	next := append(append([]interface{}(nil), l.fields...), fields...)
	return &Logger{logger: l.logger, fields: next, layer: l.layer}
}

func (l *Logger) log(ctx context.Context, level cblog.Level, msg string, fields []interface{}) {
	if l == nil || l.logger == nil {
		return
	}
	payload := mergeFields(l.fields, fields)
	payload = appendUnique(payload, "layer", l.layer)
	if id := ports.SessionID(ctx); id != "" {
		payload = appendUnique(payload, "session_id", id)
	}
	l.logger.Log(level, msg, payload...)
}

func sortedFields(input map[string]interface{}) []interface{} {
	if len(input) == 0 {
		return nil
	}
	keys := make([]string, 0, len(input))
	for k := range input {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	res := make([]interface{}, 0, len(input)*2)
	for _, k := range keys {
		res = append(res, k, input[k])
	}
	return res
}

// mergeFields flattens key/value lists, keeping the first position of each key
// and the last value written to it. Non-string keys are dropped.
func mergeFields(lists ...[]interface{}) []interface{} {
	index := make(map[string]int)
	var out []interface{}
	for _, values := range lists {
		for i := 0; i+1 < len(values); i += 2 {
			key, ok := values[i].(string)
			if !ok || key == "" {
				continue
			}
			if pos, seen := index[key]; seen {
				out[pos+1] = values[i+1]
				continue
			}
			index[key] = len(out)
			out = append(out, key, values[i+1])
		}
	}
	return out
}

func appendUnique(fields []interface{}, key string, value interface{}) []interface{} {
	for i := 0; i+1 < len(fields); i += 2 {
		if fields[i] == key {
			return fields
		}
	}
	return append(fields, key, value)
}

var _ ports.Logger = (*Logger)(nil)
