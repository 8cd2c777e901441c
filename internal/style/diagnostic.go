package style

import "fmt"

// Axis identifies the direction of a spacing property.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// Diagnostic is a non-fatal finding produced during style resolution,
// currently always a rhythm violation: a border stroke the surrounding
// padding could not absorb. Diagnostics are returned alongside the
// computed style so the caller decides whether to log, fail, or ignore
// them; the engine itself never writes to a log.
type Diagnostic struct {
	Property string
	Axis     Axis
}

func (d Diagnostic) Message() string {
	return fmt.Sprintf("cannot compensate %s for the border stroke, %s rhythm is broken", d.Property, d.Axis)
}
