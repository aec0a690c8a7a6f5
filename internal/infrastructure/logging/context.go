package logging

import (
	"context"

	"github.com/alexisbeaulieu97/overlay/internal/ports"
)

// NewSession stores a fresh session id in ctx and returns both.
func NewSession(ctx context.Context) (context.Context, string) {
	if ctx == nil {
		ctx = context.Background()
	}
	if id := ports.SessionID(ctx); id != "" {
		return ctx, id
	}
	id := ports.NewSessionID()
	return ports.WithSessionID(ctx, id), id
}
