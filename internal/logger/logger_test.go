package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/overlay/internal/ports"
)

type logEntry map[string]any

func decode(t *testing.T, buf *bytes.Buffer) []logEntry {
	t.Helper()
	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry logEntry
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"command": "simulate", "widget": "help-tip"})
	log.Info("timeline complete")

	entries := decode(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "timeline complete", entries[0]["message"])
	require.Equal(t, "simulate", entries[0]["command"])
	require.Equal(t, "help-tip", entries[0]["widget"])
	require.Equal(t, "info", entries[0]["level"])
}

func TestLoggerDefaultsToWarn(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)
	require.Equal(t, zerolog.WarnLevel, log.Level())

	log.Info("quiet")
	log.Debug("quieter")
	require.Empty(t, strings.TrimSpace(buf.String()))

	log.Warn("loud")
	require.Contains(t, buf.String(), "loud")
}

func TestLoggerErrorIncludesCause(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Error(errors.New("boom"), "load failed")
	entries := decode(t, buf)
	require.Equal(t, "boom", entries[0]["error"])
	require.Equal(t, "error", entries[0]["level"])
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	log.Info("ignored")
	log.Error(errors.New("x"), "ignored")
	require.Nil(t, log.WithFields(map[string]any{"a": 1}))
	require.Equal(t, zerolog.Disabled, log.Level())
}

func TestPortsAdapterCarriesSession(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	engineLog := log.Ports().With("component", "engine")
	ctx := ports.WithSessionID(context.Background(), "s-1")
	engineLog.Debug(ctx, "escape dismissed", "instance_id", "dialog")

	entries := decode(t, buf)
	require.Equal(t, "escape dismissed", entries[0]["message"])
	require.Equal(t, "engine", entries[0]["component"])
	require.Equal(t, "dialog", entries[0]["instance_id"])
	require.Equal(t, "s-1", entries[0]["session_id"])
}
