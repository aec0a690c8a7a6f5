package ports

import (
	"context"

	"github.com/google/uuid"
)

// Logger is the structured logging contract used by the engine, the widget
// adapters and the gallery. Calls take key/value pairs and enrich entries with
// the session id carried by ctx. Common fields:
//   - session_id (one per gallery run or CLI command)
//   - layer (engine|ui|cli)
//   - component (dismiss, placement, scrolllock, gallery, ...)
//   - instance_id / widget_id
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

type sessionIDKey struct{}

// WithSessionID attaches id to ctx so every log line of the session can be
// grouped.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionID extracts the session id from ctx, or "" when none is set.
func SessionID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(sessionIDKey{}).(string); ok {
		return id
	}
	return ""
}

// NewSessionID returns a fresh random session id.
func NewSessionID() string {
	return uuid.NewString()
}
