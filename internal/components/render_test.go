package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/linebox-dev/linebox/internal/style"
	"github.com/linebox-dev/linebox/internal/theme"
)

func TestToLipglossSpacing(t *testing.T) {
	t.Parallel()

	th := theme.Default() // line height 24
	s := ToLipgloss(th, style.Declarations{
		"marginTop":    style.Num(24),
		"marginLeft":   style.Num(24),
		"paddingTop":   style.Num(48),
		"paddingLeft":  style.Num(12),
		"marginBottom": style.Num(0),
	})

	assert.Equal(t, 1, s.GetMarginTop(), "one line height is one row")
	assert.Equal(t, 2, s.GetMarginLeft(), "one line height is two columns")
	assert.Equal(t, 2, s.GetPaddingTop())
	assert.Equal(t, 1, s.GetPaddingLeft())
	assert.Equal(t, 0, s.GetMarginBottom())
}

func TestToLipglossMinimumCell(t *testing.T) {
	t.Parallel()

	th := theme.Default()
	s := ToLipgloss(th, style.Declarations{"paddingTop": style.Num(4)})

	assert.Equal(t, 1, s.GetPaddingTop(), "any positive length keeps at least one cell")
}

func TestToLipglossColors(t *testing.T) {
	t.Parallel()

	th := theme.Default()
	s := ToLipgloss(th, style.Declarations{
		"backgroundColor": style.Str("#2196f3"),
		"color":           style.Str("#ffffff"),
	})

	assert.Equal(t, lipgloss.Color("#2196f3"), s.GetBackground())
	assert.Equal(t, lipgloss.Color("#ffffff"), s.GetForeground())
}

func TestToLipglossTransparentBackground(t *testing.T) {
	t.Parallel()

	s := ToLipgloss(theme.Default(), style.Declarations{
		"backgroundColor": style.Str(style.TransparentColor),
	})
	assert.Equal(t, lipgloss.NoColor{}, s.GetBackground(), "transparent must not set a background")
}

func TestToLipglossTypography(t *testing.T) {
	t.Parallel()

	s := ToLipgloss(theme.Default(), style.Declarations{
		"fontWeight":     style.Str("bold"),
		"fontStyle":      style.Str("italic"),
		"textDecoration": style.Str("underline"),
	})

	assert.True(t, s.GetBold())
	assert.True(t, s.GetItalic())
	assert.True(t, s.GetUnderline())
}

func TestToLipglossBorderSides(t *testing.T) {
	t.Parallel()

	s := ToLipgloss(theme.Default(), style.Declarations{
		"borderTop": style.Str("solid 1px #9e9e9e"),
	})

	assert.True(t, s.GetBorderTop())
	assert.False(t, s.GetBorderBottom())
	assert.Equal(t, lipgloss.Color("#9e9e9e"), s.GetBorderTopForeground())
}

func TestToLipglossOutlineDrawsRedBorder(t *testing.T) {
	t.Parallel()

	s := ToLipgloss(theme.Default(), style.Declarations{
		"outline": style.Str("solid 1px red"),
	})

	assert.Equal(t, lipgloss.NormalBorder(), s.GetBorderStyle())
	assert.Equal(t, diagnosticOutlineColor, s.GetBorderTopForeground())
}
