package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleGallery = `title: Sample
widgets:
  - id: settings
    kind: popover
    label: settings
    content: Popover body
  - id: confirm
    kind: dialog
    content: Are you sure?
  - id: saved
    kind: toast
    content: Saved
    auto_close_ms: 1500
`

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd(nil)
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func writeWidgetFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
