package components

import (
	"github.com/linebox-dev/linebox/internal/style"
	"github.com/linebox-dev/linebox/internal/theme"
)

// headingScale maps heading levels onto the type scale.
var headingScale = map[int]float64{
	1: 2,
	2: 1.5,
	3: 1.25,
}

// headingStyle extends the box with heading typography. Headings
// default to block display and a one-rhythm bottom margin so stacked
// headings and paragraphs stay on the grid.
var headingStyle = BoxDefinition().Extend("heading", func(th theme.Theme, props style.Props) (style.Declarations, []style.Diagnostic, error) {
	scale, ok := headingScale[int(props["level"].Number())]
	if !ok {
		scale = 1
	}
	return style.Declarations{
		"fontWeight": style.Str("bold"),
		"fontSize":   style.Num(th.Typography.FontSize * scale),
	}, nil, nil
}).WithDefaults(style.Props{
	"display":      style.Str("block"),
	"marginBottom": style.Num(1),
})

// Heading is a bold block-level title.
type Heading struct {
	*Box
	content string
}

// NewHeading creates a heading at the given level (1 is largest).
func NewHeading(level int, content string) *Heading {
	h := &Heading{Box: newStyled("heading", headingStyle), content: content}
	h.WithProp("level", style.Num(float64(level)))
	return h
}

// Content returns the heading text.
func (h *Heading) Content() string {
	return h.content
}

// View renders the heading with the default context.
func (h *Heading) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the heading with the given context.
func (h *Heading) ViewWithContext(ctx RenderContext) string {
	return h.render(ctx, h.content)
}
