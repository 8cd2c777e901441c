package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/linebox-dev/linebox/internal/ui"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children along one axis with an optional gap measured
// in rhythm steps (whole rows vertically, two columns horizontally).
type Stack struct {
	children  []ui.Renderable
	direction Direction
	gap       int
	align     lipgloss.Position
}

// NewStack creates a vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{children: children, direction: DirectionVertical, align: lipgloss.Left}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	s := NewStack(children...)
	s.direction = DirectionHorizontal
	s.align = lipgloss.Top
	return s
}

// WithGap sets the gap between children, in rhythm steps.
func (s *Stack) WithGap(gap int) *Stack {
	if gap >= 0 {
		s.gap = gap
	}
	return s
}

// WithAlign sets the cross-axis alignment.
func (s *Stack) WithAlign(align lipgloss.Position) *Stack {
	s.align = align
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}

// View renders the stack with the default context.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with the given context.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		views = append(views, renderChild(ctx, child))
	}
	if len(views) == 0 {
		return ""
	}

	if s.gap > 0 {
		views = s.interleaveGaps(views)
	}

	if s.direction == DirectionHorizontal {
		return lipgloss.JoinHorizontal(s.align, views...)
	}
	return lipgloss.JoinVertical(s.align, views...)
}

func (s *Stack) interleaveGaps(views []string) []string {
	var filler string
	if s.direction == DirectionHorizontal {
		filler = strings.Repeat(" ", s.gap*2)
	} else {
		// A filler of n-1 newlines spans n blank rows once joined.
		filler = strings.Repeat("\n", s.gap-1)
	}

	out := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			out = append(out, filler)
		}
		out = append(out, view)
	}
	return out
}
