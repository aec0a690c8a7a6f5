package main

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/overlay/internal/logger"
	overlayerrors "github.com/alexisbeaulieu97/overlay/pkg/errors"
)

func main() {
	log, err := logger.New(logger.Options{
		Level:         os.Getenv("OVERLAY_LOG_LEVEL"),
		HumanReadable: term.IsTerminal(int(os.Stderr.Fd())),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(&AppContext{Logger: log}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps errors to process exit codes: 2 for bad usage, 3 for an
// unreadable or invalid widget file.
func exitCode(err error) int {
	var usageErr *overlayerrors.UsageError
	var parseErr *overlayerrors.ParseError
	var validationErr *overlayerrors.ValidationError
	switch {
	case errors.As(err, &usageErr):
		return 2
	case errors.As(err, &parseErr), errors.As(err, &validationErr):
		return 3
	default:
		return 1
	}
}
