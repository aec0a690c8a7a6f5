package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	cblog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/overlay/internal/ports"
)

func decodeLines(t *testing.T, out string) []map[string]interface{} {
	t.Helper()
	var res []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		payload := make(map[string]interface{})
		require.NoError(t, json.Unmarshal([]byte(line), &payload), "line %q", line)
		res = append(res, payload)
	}
	return res
}

func TestLoggerIncludesSessionAndLayer(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{
		Writer:    &buf,
		Level:     "debug",
		Format:    "json",
		Layer:     "ui",
		Component: "gallery",
	})
	require.NoError(t, err)

	ctx := ports.WithSessionID(context.Background(), "abc123")
	logger.Debug(ctx, "opened", "widget_id", "help-tip")

	lines := decodeLines(t, buf.String())
	require.Len(t, lines, 1)
	require.Equal(t, "opened", lines[0]["msg"])
	require.Equal(t, "ui", lines[0]["layer"])
	require.Equal(t, "gallery", lines[0]["component"])
	require.Equal(t, "abc123", lines[0]["session_id"])
	require.Equal(t, "help-tip", lines[0]["widget_id"])
}

func TestLoggerWithOverridesFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Format: "json", Component: "engine"})
	require.NoError(t, err)

	child := logger.With("component", "dismiss")
	child.Warn(context.Background(), "boundary missing", "instance_id", "x")

	lines := decodeLines(t, buf.String())
	require.Equal(t, "dismiss", lines[0]["component"])
	require.Equal(t, "engine", lines[0]["layer"])
	require.NotContains(t, lines[0], "session_id")
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Level: "warn"})
	require.NoError(t, err)

	logger.Info(context.Background(), "hidden")
	require.Zero(t, buf.Len())
	logger.Error(context.Background(), "shown")
	require.Contains(t, buf.String(), "shown")
}

func TestNewRejectsBadOptions(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
	_, err = New(Options{Format: "xml"})
	require.Error(t, err)
}

func TestNoOpLogger(t *testing.T) {
	noOp := NewNoOpLogger()
	noOp.Info(context.Background(), "hello")
	require.Same(t, noOp, noOp.With("key", "value"))
}

func TestNewSessionReusesExistingID(t *testing.T) {
	ctx, id := NewSession(context.Background())
	require.NotEmpty(t, id)
	require.Equal(t, id, ports.SessionID(ctx))

	again, same := NewSession(ctx)
	require.Equal(t, id, same)
	require.Equal(t, id, ports.SessionID(again))
}

func TestBufferedLoggerStoresAndFlushes(t *testing.T) {
	buffer := NewEventBuffer(10)
	bufLogger := NewBufferedLogger(buffer, cblog.DebugLevel)

	ctx := ports.WithSessionID(context.Background(), "buffered")
	bufLogger.Info(ctx, "opening", "component", "disclosure")
	bufLogger.With("component", "dismiss").Debug(ctx, "escape", "instance_id", "a")
	require.Equal(t, []string{
		"INFO opening component=disclosure",
		"DEBU escape component=dismiss instance_id=a",
	}, buffer.Lines(0))

	var output bytes.Buffer
	delegate, err := New(Options{Writer: &output, Level: "debug", Format: "json"})
	require.NoError(t, err)
	buffer.Flush(delegate)
	require.Zero(t, buffer.Len())

	lines := decodeLines(t, output.String())
	require.Len(t, lines, 2)
	require.Equal(t, "opening", lines[0]["msg"])
	require.Equal(t, "dismiss", lines[1]["component"])
	require.Equal(t, "buffered", lines[1]["session_id"])
}

func TestBufferedLoggerFiltersLevel(t *testing.T) {
	buffer := NewEventBuffer(10)
	logger := NewBufferedLogger(buffer, cblog.InfoLevel)
	logger.Debug(context.Background(), "noise")
	logger.Warn(context.Background(), "kept")
	require.Equal(t, []string{"WARN kept"}, buffer.Lines(5))
}

func TestEventBufferDropsOldest(t *testing.T) {
	buffer := NewEventBuffer(3)
	logger := NewBufferedLogger(buffer, cblog.DebugLevel)
	for _, msg := range []string{"a", "b", "c", "d"} {
		logger.Info(context.Background(), msg)
	}
	require.Equal(t, 3, buffer.Len())
	require.Equal(t, []string{"INFO c", "INFO d"}, buffer.Lines(2))
	require.Equal(t, "b", buffer.Tail(0)[0].Message)
}
