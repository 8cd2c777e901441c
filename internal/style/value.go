package style

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

type valueKind int

const (
	kindNone valueKind = iota
	kindNumber
	kindString
	kindBool
)

// Value is a single style or prop value. It carries one of three
// payloads: a number (a rhythm multiple in a style request, a pixel
// amount in a computed style), an opaque string length such as "10%",
// or a boolean flag. The zero Value means "absent".
type Value struct {
	kind valueKind
	num  float64
	str  string
	flag bool
}

// Num wraps a numeric value.
func Num(n float64) Value {
	return Value{kind: kindNumber, num: n}
}

// Str wraps an opaque string value.
func Str(s string) Value {
	return Value{kind: kindString, str: s}
}

// Flag wraps a boolean value.
func Flag(b bool) Value {
	return Value{kind: kindBool, flag: b}
}

// IsAbsent reports whether the value carries no payload at all.
func (v Value) IsAbsent() bool {
	return v.kind == kindNone
}

// IsNumber reports whether the value is numeric.
func (v Value) IsNumber() bool {
	return v.kind == kindNumber
}

// IsString reports whether the value is an opaque string.
func (v Value) IsString() bool {
	return v.kind == kindString
}

// Number returns the numeric payload, or zero for other kinds.
func (v Value) Number() float64 {
	if v.kind != kindNumber {
		return 0
	}
	return v.num
}

// Text returns the string payload, or "" for other kinds.
func (v Value) Text() string {
	if v.kind != kindString {
		return ""
	}
	return v.str
}

// Bool returns the boolean payload, or false for other kinds.
func (v Value) Bool() bool {
	return v.kind == kindBool && v.flag
}

// Falsy reports whether the value is absent, false, zero, or empty.
// Falsy spacing values resolve to zero; a falsy border request is a
// no-op; a falsy borderRadius falls back to the theme default.
func (v Value) Falsy() bool {
	switch v.kind {
	case kindNumber:
		return v.num == 0
	case kindString:
		return v.str == ""
	case kindBool:
		return !v.flag
	default:
		return true
	}
}

// String renders the value for display: computed numbers as pixel
// lengths, strings verbatim, booleans as true/false.
func (v Value) String() string {
	switch v.kind {
	case kindNumber:
		return formatNumber(v.num) + "px"
	case kindString:
		return v.str
	case kindBool:
		return strconv.FormatBool(v.flag)
	default:
		return ""
	}
}

// MarshalYAML emits the native payload so computed styles serialize as
// plain scalars.
func (v Value) MarshalYAML() (any, error) {
	switch v.kind {
	case kindNumber:
		return v.num, nil
	case kindString:
		return v.str, nil
	case kindBool:
		return v.flag, nil
	default:
		return nil, nil
	}
}

// UnmarshalYAML accepts numbers, strings, and booleans, matching the
// value domain of a style request.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Tag {
	case "!!int", "!!float":
		var n float64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*v = Num(n)
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		*v = Flag(b)
	default:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*v = Str(s)
	}
	return nil
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
