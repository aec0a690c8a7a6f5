package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/overlay/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/overlay/internal/logger"
	"github.com/alexisbeaulieu97/overlay/internal/ports"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Logger *logger.Logger
}

// CommandContext starts a logging session for one command run.
func (a *AppContext) CommandContext(cmd *cobra.Command, name string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, _ = logging.NewSession(ctx)

	if a == nil || a.Logger == nil {
		return ctx, logging.NewNoOpLogger()
	}
	return ctx, a.Logger.Ports().With("command", name)
}
