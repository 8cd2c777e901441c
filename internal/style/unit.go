package style

import "github.com/linebox-dev/linebox/internal/theme"

// Resolve converts a semantic spacing value into a concrete length.
// Numbers are rhythm multiples and scale by the theme line height;
// non-empty strings are opaque lengths (percentages, calc expressions)
// and pass through untouched; everything else resolves to zero. Total
// over its input domain, never fails.
func Resolve(th theme.Theme, v Value) Value {
	switch {
	case v.IsNumber():
		return Num(th.Typography.LineHeight * v.Number())
	case v.IsString() && v.Text() != "":
		return v
	default:
		return Num(0)
	}
}
