package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/linebox-dev/linebox/internal/style"
	"github.com/linebox-dev/linebox/internal/theme"
)

const diagnosticOutlineColor = lipgloss.Color("#ff0000")

// ToLipgloss converts a computed style into a lipgloss.Style for the
// terminal. Pixel lengths snap back onto the character grid: one row
// per line height vertically, two columns per line height horizontally
// (a terminal cell is roughly half as wide as a line is tall). Opaque
// string lengths and the flex pass-through props carry no meaning for a
// single box and are left to the layout components.
func ToLipgloss(th theme.Theme, decls style.Declarations) lipgloss.Style {
	out := lipgloss.NewStyle()

	rows := func(v style.Value) int { return pxToCells(v.Number(), th.Typography.LineHeight) }
	cols := func(v style.Value) int { return pxToCells(v.Number()*2, th.Typography.LineHeight) }

	for _, key := range decls.Keys() {
		value := decls[key]
		switch key {
		case "marginTop":
			out = out.MarginTop(rows(value))
		case "marginBottom":
			out = out.MarginBottom(rows(value))
		case "marginLeft":
			out = out.MarginLeft(cols(value))
		case "marginRight":
			out = out.MarginRight(cols(value))
		case "paddingTop":
			out = out.PaddingTop(rows(value))
		case "paddingBottom":
			out = out.PaddingBottom(rows(value))
		case "paddingLeft":
			out = out.PaddingLeft(cols(value))
		case "paddingRight":
			out = out.PaddingRight(cols(value))
		case "width", "minWidth":
			if value.IsNumber() {
				out = out.Width(cols(value))
			}
		case "height", "minHeight":
			if value.IsNumber() {
				out = out.Height(rows(value))
			}
		case "maxWidth":
			if value.IsNumber() {
				out = out.MaxWidth(cols(value))
			}
		case "maxHeight":
			if value.IsNumber() {
				out = out.MaxHeight(rows(value))
			}
		case "backgroundColor":
			if value.Text() != style.TransparentColor {
				out = out.Background(lipgloss.Color(value.Text()))
			}
		case "color":
			out = out.Foreground(lipgloss.Color(value.Text()))
		case "fontWeight":
			out = out.Bold(value.Text() == "bold")
		case "fontStyle":
			out = out.Italic(value.Text() == "italic")
		case "textDecoration":
			out = out.Underline(value.Text() == "underline")
		case "border":
			out = applyBorderDecl(out, value, true, true, true, true)
		case "borderTop":
			out = applyBorderDecl(out, value, true, false, false, false)
		case "borderRight":
			out = applyBorderDecl(out, value, false, true, false, false)
		case "borderBottom":
			out = applyBorderDecl(out, value, false, false, true, false)
		case "borderLeft":
			out = applyBorderDecl(out, value, false, false, false, true)
		}
	}

	if _, ok := decls["outline"]; ok {
		// Visual diagnostic for an uncompensated border: recolor the
		// border (drawing one if needed) in red.
		if out.GetBorderStyle() == (lipgloss.Border{}) {
			out = out.Border(lipgloss.NormalBorder())
		}
		out = out.BorderForeground(diagnosticOutlineColor)
	}

	return out
}

// applyBorderDecl parses a "solid <width>px <color>" declaration and
// enables the matching border sides.
func applyBorderDecl(out lipgloss.Style, value style.Value, top, right, bottom, left bool) lipgloss.Style {
	out = out.BorderStyle(lipgloss.NormalBorder()).
		BorderTop(top).BorderRight(right).BorderBottom(bottom).BorderLeft(left)

	fields := strings.Fields(value.Text())
	if len(fields) == 3 {
		out = out.BorderForeground(lipgloss.Color(fields[2]))
	}
	return out
}

// pxToCells snaps a pixel length onto the cell grid, always keeping at
// least one cell for a positive length.
func pxToCells(px, lineHeight float64) int {
	if px <= 0 || lineHeight <= 0 {
		return 0
	}
	cells := int(math.Round(px / lineHeight))
	if cells < 1 {
		return 1
	}
	return cells
}
