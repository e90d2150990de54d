package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	fcerrors "github.com/alexisbeaulieu97/fluidcss/pkg/errors"
)

const wantVariables = "/* CSS custom properties generated by fluidcss: 375px to 1620px viewport, unit px */\n" +
	"\n" +
	":root {\n" +
	"  --fs-md: clamp(16px, calc(14.80px + 0.3213vw), 20px);\n" +
	"  --fs-lg: clamp(20px, calc(18.19px + 0.4819vw), 26px);\n" +
	"}\n" +
	"\n" +
	"/* Usage: font-size: var(--fs-md); */\n"

func TestEmitCommandWritesStdout(t *testing.T) {
	path := writeProject(t, projectYAML)

	stdout, _, err := executeCommand(t, "emit", "--config", path)
	require.NoError(t, err)
	require.Equal(t, wantVariables, stdout)

	stdout, _, err = executeCommand(t, "emit", "--config", path, "--variant", "scss")
	require.NoError(t, err)
	require.Contains(t, stdout, "$fs-lg: clamp(20px, calc(18.19px + 0.4819vw), 26px);\n")
}

func TestEmitCommandOutAndCheck(t *testing.T) {
	path := writeProject(t, projectYAML)
	outPath := filepath.Join(t.TempDir(), "tokens.css")

	stdout, stderr, err := executeCommand(t, "emit", "--config", path, "--out", outPath)
	require.NoError(t, err)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "wrote stylesheet")

	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, wantVariables, string(written))

	stdout, _, err = executeCommand(t, "emit", "--config", path, "--check", outPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "is up to date")

	require.NoError(t, os.WriteFile(outPath, []byte(wantVariables[:len(wantVariables)-1]+" stale\n"), 0o644))

	stdout, _, err = executeCommand(t, "emit", "--config", path, "--check", outPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "stylesheet is stale: 1 lines added, 1 removed")
	require.Contains(t, stdout, "-/* Usage: font-size: var(--fs-md); */ stale\n")
	require.Contains(t, stdout, "+/* Usage: font-size: var(--fs-md); */\n")
}

func TestEmitCommandErrors(t *testing.T) {
	path := writeProject(t, projectYAML)

	_, _, err := executeCommand(t, "emit", "--config", path, "--variant", "less")
	require.ErrorIs(t, err, fcerrors.ErrUnknownVariant)
	require.Contains(t, err.Error(), "fluidcss variants")

	_, _, err = executeCommand(t, "emit", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not exist")

	_, _, err = executeCommand(t, "emit", "--config", path, "--out", "a.css", "--check", "b.css")
	require.Error(t, err)

	_, _, err = executeCommand(t, "emit", "--config", path, "--check", filepath.Join(t.TempDir(), "absent.css"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Generate it first")
}

func TestVariantsCommandListsRegistry(t *testing.T) {
	stdout, _, err := executeCommand(t, "variants")
	require.NoError(t, err)
	for _, key := range []string{"variables", "classes", "scss", "fallback", "framework"} {
		require.Contains(t, stdout, key)
	}
	require.Contains(t, stdout, "CSS custom properties")
}
