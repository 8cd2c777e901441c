package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linebox-dev/linebox/internal/logger"
	"github.com/linebox-dev/linebox/internal/theme"
)

func galleryModel() Model {
	return NewModel([]theme.Theme{theme.Default(), theme.Dark()}, logger.Nop())
}

func TestModelDefaultsToFirstTheme(t *testing.T) {
	t.Parallel()

	m := galleryModel()
	assert.Equal(t, "default", m.Theme().Name)

	empty := NewModel(nil, logger.Nop())
	assert.Equal(t, "default", empty.Theme().Name, "a model without themes falls back to the stock theme")
}

func TestTabCyclesThemes(t *testing.T) {
	t.Parallel()

	m := galleryModel()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	assert.Equal(t, "dark", m.Theme().Name)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	assert.Equal(t, "default", m.Theme().Name, "cycling wraps around")
}

func TestBorderToggle(t *testing.T) {
	t.Parallel()

	m := galleryModel()
	require.True(t, m.bordered)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	m = next.(Model)
	assert.False(t, m.bordered)
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m := galleryModel()
		next, cmd := m.Update(key)
		m = next.(Model)
		assert.True(t, m.quitting)
		require.NotNil(t, cmd)
	}
}

func TestViewBeforeSizing(t *testing.T) {
	t.Parallel()

	m := galleryModel()
	assert.Contains(t, m.View(), "measuring")
}

func TestViewAfterSizing(t *testing.T) {
	t.Parallel()

	m := galleryModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	view := m.View()
	assert.Contains(t, view, "theme: default")
	assert.Contains(t, view, "linebox gallery")
}

func TestGalleryContainsPrimitives(t *testing.T) {
	t.Parallel()

	gallery := galleryModel().gallery()

	for _, want := range []string{"linebox gallery", "Box", "Buttons", "Palette", "Save", "Delete", "primary"} {
		assert.True(t, strings.Contains(gallery, want), "gallery should mention %q", want)
	}
}
