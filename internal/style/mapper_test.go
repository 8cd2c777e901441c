package style

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lberrors "github.com/linebox-dev/linebox/pkg/errors"
)

func TestMapPropsPassThrough(t *testing.T) {
	t.Parallel()

	th := testTheme()
	out, err := MapProps(th, Props{
		"display":        Str("flex"),
		"flexDirection":  Str("column"),
		"justifyContent": Str("space-between"),
		"alignItems":     Str("center"),
		"flexGrow":       Num(1),
		"order":          Num(2),
	})
	require.NoError(t, err)

	assert.Equal(t, Str("flex"), out["display"])
	assert.Equal(t, Str("column"), out["flexDirection"])
	assert.Equal(t, Str("space-between"), out["justifyContent"])
	assert.Equal(t, Str("center"), out["alignItems"])
	// Pass-through numbers are not rhythm multiples and stay unscaled.
	assert.Equal(t, Num(1), out["flexGrow"])
	assert.Equal(t, Num(2), out["order"])
}

func TestMapPropsDirectSpacing(t *testing.T) {
	t.Parallel()

	th := testTheme()
	out, err := MapProps(th, Props{
		"marginTop": Num(1),
		"width":     Str("50%"),
		"minHeight": Num(3),
		"maxWidth":  Flag(false),
	})
	require.NoError(t, err)

	assert.Equal(t, Num(20), out["marginTop"])
	assert.Equal(t, Str("50%"), out["width"])
	assert.Equal(t, Num(60), out["minHeight"])
	assert.Equal(t, Num(0), out["maxWidth"])
}

func TestMapPropsShorthandExpansion(t *testing.T) {
	t.Parallel()

	th := testTheme()
	out, err := MapProps(th, Props{
		"margin":            Num(1),
		"paddingHorizontal": Num(0.5),
	})
	require.NoError(t, err)

	for _, key := range []string{"marginTop", "marginRight", "marginBottom", "marginLeft"} {
		assert.Equal(t, Num(20), out[key], key)
	}
	assert.Equal(t, Num(10), out["paddingLeft"])
	assert.Equal(t, Num(10), out["paddingRight"])
	assert.NotContains(t, out, "paddingTop")
	assert.NotContains(t, out, "margin", "shorthand itself must not leak into the output")
}

func TestMapPropsShorthandPrecedence(t *testing.T) {
	t.Parallel()

	th := testTheme()

	// The specific prop wins regardless of request enumeration order.
	out, err := MapProps(th, Props{
		"margin":           Num(1),
		"marginHorizontal": Num(2),
		"marginLeft":       Num(0.5),
	})
	require.NoError(t, err)

	assert.Equal(t, Num(10), out["marginLeft"], "per-edge beats both shorthands")
	assert.Equal(t, Num(40), out["marginRight"], "pair shorthand beats scalar shorthand")
	assert.Equal(t, Num(20), out["marginTop"])
	assert.Equal(t, Num(20), out["marginBottom"])
}

func TestMapPropsBackgroundColor(t *testing.T) {
	t.Parallel()

	th := testTheme()

	out, err := MapProps(th, Props{"backgroundColor": Str("primary")})
	require.NoError(t, err)
	assert.Equal(t, Str(th.Colors["primary"]), out["backgroundColor"])

	out, err = MapProps(th, Props{"backgroundColor": Str(TransparentColor)})
	require.NoError(t, err)
	assert.Equal(t, Str(TransparentColor), out["backgroundColor"], "transparent bypasses the palette")

	_, err = MapProps(th, Props{"backgroundColor": Str("chartreuse")})
	require.Error(t, err)
	var cfgErr *lberrors.ConfigError
	assert.True(t, errors.As(err, &cfgErr), "unknown palette keys are configuration errors")
}

func TestMapPropsBorderRadius(t *testing.T) {
	t.Parallel()

	th := testTheme()

	out, err := MapProps(th, Props{"borderRadius": Num(8)})
	require.NoError(t, err)
	assert.Equal(t, Num(8), out["borderRadius"])

	out, err = MapProps(th, Props{"borderRadius": Flag(false)})
	require.NoError(t, err)
	assert.Equal(t, Num(th.Border.Radius), out["borderRadius"], "falsy radius falls back to the theme default")
}

func TestMapPropsIgnoresUnknownProps(t *testing.T) {
	t.Parallel()

	th := testTheme()
	out, err := MapProps(th, Props{
		"theme":     Str("never a style prop"),
		"onClick":   Str("handler"),
		"children":  Str("ignored"),
		"marginTop": Num(1),
	})
	require.NoError(t, err)

	assert.Len(t, out, 1)
	assert.Equal(t, Num(20), out["marginTop"])
}

func TestMapPropsEmptyRequest(t *testing.T) {
	t.Parallel()

	out, err := MapProps(testTheme(), Props{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMapPropsIdempotent(t *testing.T) {
	t.Parallel()

	th := testTheme()
	props := Props{"margin": Num(1), "paddingVertical": Num(2), "backgroundColor": Str("danger")}

	first, err := MapProps(th, props)
	require.NoError(t, err)
	second, err := MapProps(th, props)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
