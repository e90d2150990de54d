package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const projectYAML = `version: "1.0"
name: "Docs"
settings:
  unit: px
  min_viewport: 375
  max_viewport: 1620
sizes:
  - id: 1
    label: fs-md
    min: 16
    max: 20
  - id: 2
    label: fs-lg
    min: 20
    max: 26
colors:
  - name: body
    background: "#FFFFFF"
    foreground: "#000000"
`

const mutedColorsYAML = `  - name: muted
    background: "#FFFFFF"
    foreground: "#CCCCCC"
    target: 4.5
`

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeProject(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "project.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}
