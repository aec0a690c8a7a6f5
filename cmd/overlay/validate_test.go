package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	overlayerrors "github.com/alexisbeaulieu97/overlay/pkg/errors"
)

func TestValidateListsWidgets(t *testing.T) {
	path := writeWidgetFile(t, "gallery.yaml", sampleGallery)

	output, err := executeCommand(t, "validate", path)
	require.NoError(t, err)
	require.Contains(t, output, "✔ "+path+" (3 widgets)")
	require.Contains(t, output, "ID")
	require.Contains(t, output, "settings")
	require.Contains(t, output, "manual")
	require.Regexp(t, `confirm\s+dialog\s+manual\s+bottom\s+-`, output)
}

func TestValidateQuietHidesValidFiles(t *testing.T) {
	path := writeWidgetFile(t, "gallery.yaml", sampleGallery)

	output, err := executeCommand(t, "validate", "-q", path)
	require.NoError(t, err)
	require.Empty(t, output)
}

func TestValidateReportsEveryInvalidFile(t *testing.T) {
	good := writeWidgetFile(t, "good.yaml", sampleGallery)
	badKind := writeWidgetFile(t, "kind.yaml", "widgets:\n  - id: a\n    kind: carousel\n")
	badSyntax := writeWidgetFile(t, "broken.toml", "[[widgets]]\nid = \n")

	output, err := executeCommand(t, "validate", good, badKind, badSyntax)
	require.Error(t, err)
	require.Contains(t, err.Error(), "2 of 3 files invalid")
	require.Contains(t, output, "✖ "+badKind)
	require.Contains(t, output, "✖ "+badSyntax)

	var validationErr *overlayerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "widgets[0].kind", validationErr.Field)
	require.Equal(t, 3, exitCode(err))
}

func TestValidateJSONOutput(t *testing.T) {
	good := writeWidgetFile(t, "good.yaml", sampleGallery)
	bad := writeWidgetFile(t, "menu.yaml", "widgets:\n  - id: menu\n    kind: dropdown\n")

	output, err := executeCommand(t, "validate", "--json", good, bad)
	require.Error(t, err)

	var results []validateJSONFile
	require.NoError(t, json.Unmarshal([]byte(output), &results))
	require.Len(t, results, 2)

	require.True(t, results[0].Valid)
	require.Len(t, results[0].Widgets, 3)
	require.Equal(t, validateJSONWidget{ID: "saved", Kind: "toast", Trigger: "manual", Position: "bottom"}, results[0].Widgets[2])

	require.False(t, results[1].Valid)
	require.Contains(t, results[1].Error, "items")
}
