package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lberrors "github.com/linebox-dev/linebox/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveCommandPrintsComputedStyle(t *testing.T) {
	propsPath := writeFile(t, "props.yaml", `margin: 1
padding: 1
width: 50%
border: true
`)

	output, err := executeCommand(testRootCmd(t), "resolve", "--props", propsPath)
	require.NoError(t, err)

	// Default theme: lineHeight 24, border width 1, gray #9e9e9e.
	assert.Contains(t, output, "marginTop: 24")
	assert.Contains(t, output, "paddingTop: 23")
	assert.Contains(t, output, "paddingLeft: 23")
	assert.Contains(t, output, "width: 50%")
	assert.Contains(t, output, "border:")
	assert.Contains(t, output, "solid 1px #9e9e9e")
}

func TestResolveCommandUsesThemeFile(t *testing.T) {
	themePath := writeFile(t, "theme.yaml", `name: compact
typography:
  lineHeight: 10
`)
	propsPath := writeFile(t, "props.yaml", "marginTop: 2\n")

	output, err := executeCommand(testRootCmd(t), "resolve", "--theme", themePath, "--props", propsPath)
	require.NoError(t, err)
	assert.Contains(t, output, "marginTop: 20")
}

func TestResolveCommandFailsOnUnknownColor(t *testing.T) {
	propsPath := writeFile(t, "props.yaml", "backgroundColor: mauve\n")

	_, err := executeCommand(testRootCmd(t), "resolve", "--props", propsPath)
	require.Error(t, err)

	var cfgErr *lberrors.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, err.Error(), "mauve")
}

func TestResolveCommandFailsOnMissingPropsFile(t *testing.T) {
	_, err := executeCommand(testRootCmd(t), "resolve", "--props", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var parseErr *lberrors.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestResolveCommandRequiresPropsFlag(t *testing.T) {
	_, err := executeCommand(testRootCmd(t), "resolve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "props")
}
