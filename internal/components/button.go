package components

import (
	"github.com/linebox-dev/linebox/internal/style"
	"github.com/linebox-dev/linebox/internal/theme"
)

// buttonStyle extends the box with label styling; the box defaults give
// a button its padded, filled look without the caller spelling it out.
var buttonStyle = BoxDefinition().Extend("button", func(th theme.Theme, props style.Props) (style.Declarations, []style.Diagnostic, error) {
	out := style.Declarations{"fontWeight": style.Str("bold")}
	if white, ok := th.Color("white"); ok {
		out["color"] = style.Str(white)
	}
	return out, nil, nil
}).WithDefaults(style.Props{
	"backgroundColor":   style.Str("primary"),
	"paddingHorizontal": style.Num(0.5),
	"borderRadius":      style.Flag(false),
})

// Button is a visual button: a filled, padded label.
type Button struct {
	*Box
	label    string
	disabled bool
}

// NewButton creates a button with the given label.
func NewButton(label string) *Button {
	return &Button{Box: newStyled("button", buttonStyle), label: label}
}

// WithVariant names the palette entry used for the button fill.
func (b *Button) WithVariant(color string) *Button {
	b.WithBackground(color)
	return b
}

// WithDisabled toggles the disabled look.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// IsDisabled reports whether the button renders as disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// View renders the button with the default context.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	label := " " + b.label + " "
	if !b.disabled {
		return b.render(ctx, label)
	}

	props := make(style.Props, len(b.Props())+1)
	for name, value := range b.Props() {
		props[name] = value
	}
	props["backgroundColor"] = style.Str("gray")
	return b.renderProps(ctx, label, props)
}
