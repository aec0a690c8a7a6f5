package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("did not find expected key")
	err := NewParseError("widgets.yaml", "yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "widgets.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "yaml parse error: widgets.yaml:12: did not find expected key", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("missing.toml", "", 0, fmt.Errorf("no such file"))
	require.Equal(t, "parse error: missing.toml: no such file", err.Error())
}

func TestValidationErrorNamesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("widgets[1].parent", `references unknown widget "menu"`, nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "widgets[1].parent", validationErr.Field)
	require.Contains(t, err.Error(), "unknown widget")
	require.Nil(t, stdErrors.Unwrap(err))
}

func TestUsageError(t *testing.T) {
	t.Parallel()

	require.Equal(t, "invalid --anchor: want x,y,w,h", NewUsageError("anchor", "want x,y,w,h").Error())
	require.Equal(t, "bad", NewUsageError("", "bad").Error())
}

func TestNilReceivers(t *testing.T) {
	t.Parallel()

	var p *ParseError
	var v *ValidationError
	var u *UsageError
	require.Empty(t, p.Error())
	require.Empty(t, v.Error())
	require.Empty(t, u.Error())
	require.Nil(t, p.Unwrap())
	require.Nil(t, v.Unwrap())
}
