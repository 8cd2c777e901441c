package components

import (
	"github.com/linebox-dev/linebox/internal/style"
	"github.com/linebox-dev/linebox/internal/theme"
)

// textStyle layers typographic deltas over the box computation.
var textStyle = BoxDefinition().Extend("text", func(th theme.Theme, props style.Props) (style.Declarations, []style.Diagnostic, error) {
	out := style.Declarations{}
	if c := props["color"]; c.Text() != "" {
		color, ok := th.Color(c.Text())
		if !ok {
			return nil, nil, style.UnknownColor(th, c.Text())
		}
		out["color"] = style.Str(color)
	}
	if props["bold"].Bool() {
		out["fontWeight"] = style.Str("bold")
	}
	if props["italic"].Bool() {
		out["fontStyle"] = style.Str("italic")
	}
	return out, nil, nil
})

// Text renders a run of styled text. It is a box whose content is a
// string instead of child components.
type Text struct {
	*Box
	content string
}

// NewText creates a text component with the given content.
func NewText(content string) *Text {
	return &Text{Box: newStyled("text", textStyle), content: content}
}

// WithColor names the palette entry used for the foreground.
func (t *Text) WithColor(name string) *Text {
	t.WithProp("color", style.Str(name))
	return t
}

// WithBackground names the palette entry used for the text background.
// Shadows the box method to keep the fluent chain typed as *Text.
func (t *Text) WithBackground(name string) *Text {
	t.Box.WithBackground(name)
	return t
}

// Bold switches on bold rendering.
func (t *Text) Bold() *Text {
	t.WithProp("bold", style.Flag(true))
	return t
}

// Italic switches on italic rendering.
func (t *Text) Italic() *Text {
	t.WithProp("italic", style.Flag(true))
	return t
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// SetContent updates the text content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// View renders the text with the default context.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	return t.render(ctx, t.content)
}
