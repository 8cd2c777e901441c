package style

import (
	"github.com/linebox-dev/linebox/internal/theme"
	lberrors "github.com/linebox-dev/linebox/pkg/errors"
)

// Func computes a partial style from a theme and props. Implementations
// must be pure: same inputs, same output, no hidden state.
type Func func(th theme.Theme, props Props) (Declarations, []Diagnostic, error)

// Definition is a reusable, theme-bound style computation owned by a
// styled component. A definition is either a leaf (just a Func) or an
// extension: a Func layered on top of another definition's result. The
// extension relationship is data, resolved at call time, so one
// component can compute "as if it were also a box" without any
// type-level inheritance.
type Definition struct {
	name     string
	fn       Func
	base     *Definition
	defaults Props
}

// NewDefinition creates a leaf definition. The name only appears in
// error messages.
func NewDefinition(name string, fn Func) *Definition {
	return &Definition{name: name, fn: fn}
}

// Extend creates a definition that computes d first and then overlays
// fn's declarations, fn's keys winning on conflict.
func (d *Definition) Extend(name string, fn Func) *Definition {
	return &Definition{name: name, fn: fn, base: d}
}

// WithDefaults attaches default prop values that apply only when the
// caller did not supply that prop. Returns d for chaining.
func (d *Definition) WithDefaults(defaults Props) *Definition {
	d.defaults = defaults
	return d
}

// Name returns the definition's diagnostic name.
func (d *Definition) Name() string {
	if d == nil {
		return ""
	}
	return d.name
}

// Result carries a computed style together with the non-fatal findings
// produced while computing it.
type Result struct {
	Style       Declarations
	Diagnostics []Diagnostic
}

// Compute resolves a definition against a theme and instance props and
// returns the final flat style. Default props are layered under the
// caller's props first (a props merge, not a style merge); then the
// extension chain is resolved base-first, each definition's own
// declarations shallow-merged over its base's. A chain that loops back
// on itself is a ConfigError.
func Compute(def *Definition, th theme.Theme, props Props) (Result, error) {
	if def == nil {
		return Result{Style: Declarations{}}, nil
	}

	merged := layerDefaults(def, props)
	visited := make(map[*Definition]bool)

	declarations, diags, err := compute(def, th, merged, visited)
	if err != nil {
		return Result{}, err
	}
	return Result{Style: declarations, Diagnostics: diags}, nil
}

// layerDefaults merges default props along the extension chain,
// closer definitions winning, explicit caller props winning over all.
func layerDefaults(def *Definition, props Props) Props {
	var chain []*Definition
	seen := make(map[*Definition]bool)
	for d := def; d != nil && !seen[d]; d = d.base {
		seen[d] = true
		chain = append(chain, d)
	}

	merged := make(Props, len(props))
	for i := len(chain) - 1; i >= 0; i-- {
		for key, value := range chain[i].defaults {
			merged[key] = value
		}
	}
	for key, value := range props {
		merged[key] = value
	}
	return merged
}

func compute(def *Definition, th theme.Theme, props Props, visited map[*Definition]bool) (Declarations, []Diagnostic, error) {
	if visited[def] {
		return nil, nil, lberrors.NewConfigError(
			def.name,
			"style definition extension chain contains a cycle",
			nil,
		)
	}
	visited[def] = true

	out := Declarations{}
	var diags []Diagnostic

	if def.base != nil {
		baseStyle, baseDiags, err := compute(def.base, th, props, visited)
		if err != nil {
			return nil, nil, err
		}
		out.Merge(baseStyle)
		diags = append(diags, baseDiags...)
	}

	if def.fn != nil {
		own, ownDiags, err := def.fn(th, props)
		if err != nil {
			return nil, nil, err
		}
		out.Merge(own)
		diags = append(diags, ownDiags...)
	}

	return out, diags, nil
}
