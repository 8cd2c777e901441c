package style

import (
	"sort"

	"gopkg.in/yaml.v3"
)

// Props is the flat bag of semantic layout props attached to one
// component instance. It is created fresh per render and owned by the
// resolution call that consumes it.
type Props map[string]Value

// Declarations is a flat computed style: CSS-like property names mapped
// to final values. Like Props it is ephemeral, one per resolution.
type Declarations map[string]Value

// Merge copies every entry of overlay into d, overlay keys winning.
func (d Declarations) Merge(overlay Declarations) {
	for key, value := range overlay {
		d[key] = value
	}
}

// Clone returns an independent copy.
func (d Declarations) Clone() Declarations {
	out := make(Declarations, len(d))
	for key, value := range d {
		out[key] = value
	}
	return out
}

// Keys returns the property names in sorted order.
func (d Declarations) Keys() []string {
	keys := make([]string, 0, len(d))
	for key := range d {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// MarshalYAML emits the declarations as a mapping with sorted keys so
// output is stable across runs.
func (d Declarations) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range d.Keys() {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(d[key]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

type ruleKind int

const (
	// rulePassThrough copies the value to the same output key unchanged.
	rulePassThrough ruleKind = iota
	// ruleUnit converts the value through the unit resolver.
	ruleUnit
	// ruleExpand resolves the value once and writes it to every output
	// key; covers both opposite-pair shorthands and the four-edge
	// scalar shorthands.
	ruleExpand
	// ruleBackground looks the value up in the theme palette.
	ruleBackground
	// ruleRadius substitutes the theme corner radius for falsy values.
	ruleRadius
)

// Precedence tiers for overlapping shorthands. A lower tier is applied
// first so that a more specific prop always overrides a more general
// one, regardless of how the caller enumerated the request.
const (
	tierScalar      = 0 // margin, padding
	tierDirectional = 1 // *Horizontal, *Vertical
	tierDirect      = 2 // everything else
)

type rule struct {
	kind    ruleKind
	tier    int
	outputs []string
}

func pass() rule {
	return rule{kind: rulePassThrough, tier: tierDirect}
}

func unit() rule {
	return rule{kind: ruleUnit, tier: tierDirect}
}

func pair(a, b string) rule {
	return rule{kind: ruleExpand, tier: tierDirectional, outputs: []string{a, b}}
}

func quad(prefix string) rule {
	return rule{
		kind: ruleExpand,
		tier: tierScalar,
		outputs: []string{
			prefix + "Top", prefix + "Right", prefix + "Bottom", prefix + "Left",
		},
	}
}

// propRules is the full table of recognized props. Any request prop
// missing from this table produces no output and no error; unknown
// names are forward compatibility, not a defect. The border trio
// (border, borderColor, borderWidth) is deliberately absent here, it is
// consumed by the border compensator instead.
var propRules = map[string]rule{
	// Layout props pass through untouched.
	"alignContent":   pass(),
	"alignItems":     pass(),
	"alignSelf":      pass(),
	"display":        pass(),
	"flex":           pass(),
	"flexBasis":      pass(),
	"flexDirection":  pass(),
	"flexFlow":       pass(),
	"flexGrow":       pass(),
	"flexShrink":     pass(),
	"flexWrap":       pass(),
	"justifyContent": pass(),
	"order":          pass(),

	// Direct spacing props go through the unit resolver one to one.
	"height":        unit(),
	"marginBottom":  unit(),
	"marginLeft":    unit(),
	"marginRight":   unit(),
	"marginTop":     unit(),
	"maxHeight":     unit(),
	"maxWidth":      unit(),
	"minHeight":     unit(),
	"minWidth":      unit(),
	"paddingBottom": unit(),
	"paddingLeft":   unit(),
	"paddingRight":  unit(),
	"paddingTop":    unit(),
	"width":         unit(),

	// Opposite-pair shorthands share one resolved value.
	"marginHorizontal":  pair("marginLeft", "marginRight"),
	"marginVertical":    pair("marginTop", "marginBottom"),
	"paddingHorizontal": pair("paddingLeft", "paddingRight"),
	"paddingVertical":   pair("paddingTop", "paddingBottom"),

	// Scalar shorthands expand to all four edges.
	"margin":  quad("margin"),
	"padding": quad("padding"),

	// Special cases.
	"backgroundColor": {kind: ruleBackground, tier: tierDirect},
	"borderRadius":    {kind: ruleRadius, tier: tierDirect},
}
