package style

import (
	"fmt"
	"strings"

	"github.com/linebox-dev/linebox/internal/theme"
)

type boxEdge struct {
	name string
	axis Axis
}

var boxEdges = [4]boxEdge{
	{"Top", AxisVertical},
	{"Right", AxisHorizontal},
	{"Bottom", AxisVertical},
	{"Left", AxisHorizontal},
}

// ApplyBorder computes the overlay a border request adds on top of an
// already-mapped style. A border stroke eats into the box, so each
// bordered edge's padding is reduced by the stroke width to keep the
// padding+border sum on the rhythm grid.
//
// Per affected edge:
//   - a string padding (opaque length) passes through, no compensation
//     and no diagnostic;
//   - padding >= stroke width is reduced by the stroke width;
//   - padding smaller than the stroke cannot be compensated: a
//     Diagnostic is emitted and a red debug outline is added, unless
//     the request sets suppressRhythmWarning, in which case the whole
//     overlay is discarded and the border is not drawn at all. The
//     all-or-nothing suppression mirrors the historical control flow;
//     callers that only want to mute the warning should fix the
//     padding instead.
//
// The overlay always ends with the border declaration itself,
// "solid <width>px <color>". Returns an empty overlay when the request
// has no border. A borderColor missing from the theme palette (or a
// palette without the gray fallback) is a ConfigError.
func ApplyBorder(th theme.Theme, props Props, base Declarations) (Declarations, []Diagnostic, error) {
	request := props["border"]
	if request.Falsy() {
		return Declarations{}, nil, nil
	}

	side := strings.ToLower(request.Text())

	width := th.Border.Width
	if w := props["borderWidth"]; w.IsNumber() {
		width = w.Number()
	}

	colorName := theme.FallbackColor
	if c := props["borderColor"]; c.Text() != "" {
		colorName = c.Text()
	}
	color, ok := th.Color(colorName)
	if !ok {
		return nil, nil, UnknownColor(th, colorName)
	}

	overlay := Declarations{}
	var diags []Diagnostic

	for _, edge := range boxEdges {
		if side != "" && side != strings.ToLower(edge.name) {
			continue
		}

		prop := "padding" + edge.name
		current := base[prop]

		if current.IsString() {
			// Opaque lengths cannot be compensated; hand them through.
			overlay[prop] = current
			continue
		}

		remaining := current.Number() - width
		if remaining < 0 {
			if props["suppressRhythmWarning"].Bool() {
				return Declarations{}, nil, nil
			}
			diags = append(diags, Diagnostic{Property: prop, Axis: edge.axis})
			overlay["outline"] = Str("solid 1px red")
			if !current.IsAbsent() {
				overlay[prop] = current
			}
			continue
		}
		overlay[prop] = Num(remaining)
	}

	overlay[borderProperty(side)] = Str(fmt.Sprintf("solid %spx %s", formatNumber(width), color))
	return overlay, diags, nil
}

func borderProperty(side string) string {
	if side == "" {
		return "border"
	}
	return "border" + strings.ToUpper(side[:1]) + side[1:]
}
