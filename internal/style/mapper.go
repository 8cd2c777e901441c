package style

import (
	"fmt"
	"sort"

	"github.com/linebox-dev/linebox/internal/theme"
	lberrors "github.com/linebox-dev/linebox/pkg/errors"
)

// TransparentColor bypasses the palette lookup for backgrounds. It is
// not a palette key, so it is special-cased rather than resolved.
const TransparentColor = "transparent"

// UnknownColor builds the ConfigError reported when a style request
// names a color the theme palette does not define.
func UnknownColor(th theme.Theme, name string) error {
	return lberrors.NewConfigError(
		"colors."+name,
		fmt.Sprintf("color %q is not defined by theme %q", name, th.Name),
		nil,
	)
}

// MapProps turns a bag of semantic layout props into a flat style
// mapping. Recognized props are applied in fixed precedence order:
// scalar shorthands first, then horizontal/vertical pairs, then
// per-edge props, so `marginLeft` beats `marginHorizontal` beats
// `margin` no matter how the request was assembled. Within a tier the
// order is alphabetical, which only matters for determinism; tiers
// never write conflicting keys among themselves.
//
// The only failure mode is a backgroundColor naming a color the theme
// does not define, which is a ConfigError.
func MapProps(th theme.Theme, props Props) (Declarations, error) {
	names := make([]string, 0, len(props))
	for name := range props {
		if _, ok := propRules[name]; ok {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := propRules[names[i]], propRules[names[j]]
		if a.tier != b.tier {
			return a.tier < b.tier
		}
		return names[i] < names[j]
	})

	out := make(Declarations, len(names))
	for _, name := range names {
		if err := applyRule(th, out, name, props[name]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func applyRule(th theme.Theme, out Declarations, name string, value Value) error {
	switch r := propRules[name]; r.kind {
	case rulePassThrough:
		out[name] = value

	case ruleUnit:
		out[name] = Resolve(th, value)

	case ruleExpand:
		resolved := Resolve(th, value)
		for _, key := range r.outputs {
			out[key] = resolved
		}

	case ruleBackground:
		if value.Text() == TransparentColor {
			out[name] = value
			return nil
		}
		color, ok := th.Color(value.Text())
		if !ok {
			return UnknownColor(th, value.Text())
		}
		out[name] = Str(color)

	case ruleRadius:
		if value.Falsy() {
			out[name] = Num(th.Border.Radius)
		} else {
			out[name] = value
		}
	}
	return nil
}
