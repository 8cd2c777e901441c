package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lberrors "github.com/linebox-dev/linebox/pkg/errors"
)

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeTheme(t, `
name: compact
typography:
  lineHeight: 20
colors:
  primary: "#336699"
`)

	th, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "compact", th.Name)
	assert.Equal(t, float64(20), th.Typography.LineHeight)
	assert.Equal(t, "#336699", th.Colors["primary"])
	// Unmentioned palette entries keep their stock values.
	assert.Equal(t, "#9e9e9e", th.Colors["gray"])
	assert.Equal(t, float64(1), th.Border.Width)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var parseErr *lberrors.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeTheme(t, "typography: [\n")

	_, err := Load(path)
	require.Error(t, err)

	var parseErr *lberrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, path, parseErr.Path)
}

func TestLoadRejectsInvalidTheme(t *testing.T) {
	path := writeTheme(t, `
typography:
  lineHeight: -4
`)

	_, err := Load(path)
	require.Error(t, err)

	var valErr *lberrors.ValidationError
	assert.True(t, errors.As(err, &valErr))
}
