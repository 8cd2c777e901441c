package components

import (
	"strings"

	"github.com/linebox-dev/linebox/internal/style"
	"github.com/linebox-dev/linebox/internal/theme"
	"github.com/linebox-dev/linebox/internal/ui"
)

// boxStyle is the leaf style definition every other component extends:
// map the semantic props, then overlay border compensation.
var boxStyle = style.NewDefinition("box", func(th theme.Theme, props style.Props) (style.Declarations, []style.Diagnostic, error) {
	base, err := style.MapProps(th, props)
	if err != nil {
		return nil, nil, err
	}
	overlay, diags, err := style.ApplyBorder(th, props, base)
	if err != nil {
		return nil, nil, err
	}
	base.Merge(overlay)
	return base, diags, nil
})

// BoxDefinition exposes the box style definition so other components
// can extend it.
func BoxDefinition() *style.Definition {
	return boxStyle
}

// Box is the universal layout primitive: a themed rectangle with
// rhythm-aware spacing, an optional border, and child content. Every
// other component is a Box with extra opinions.
type Box struct {
	name     string
	def      *style.Definition
	props    style.Props
	children []ui.Renderable
}

// NewBox creates an empty box.
func NewBox(children ...ui.Renderable) *Box {
	return &Box{name: "box", def: boxStyle, props: style.Props{}, children: children}
}

// WithProp sets one semantic prop by name. Unknown names are carried
// along and ignored by the engine.
func (b *Box) WithProp(name string, value style.Value) *Box {
	b.props[name] = value
	return b
}

// WithProps merges a whole prop bag into the box.
func (b *Box) WithProps(props style.Props) *Box {
	for name, value := range props {
		b.props[name] = value
	}
	return b
}

// WithMargin sets the scalar margin shorthand, in rhythm multiples.
func (b *Box) WithMargin(n float64) *Box {
	return b.WithProp("margin", style.Num(n))
}

// WithPadding sets the scalar padding shorthand, in rhythm multiples.
func (b *Box) WithPadding(n float64) *Box {
	return b.WithProp("padding", style.Num(n))
}

// WithBorder requests a border on every edge.
func (b *Box) WithBorder() *Box {
	return b.WithProp("border", style.Flag(true))
}

// WithBorderSide requests a border on a single edge ("top", "right",
// "bottom", or "left").
func (b *Box) WithBorderSide(side string) *Box {
	return b.WithProp("border", style.Str(strings.ToLower(side)))
}

// WithBorderColor names the palette entry used for the border stroke.
func (b *Box) WithBorderColor(name string) *Box {
	return b.WithProp("borderColor", style.Str(name))
}

// WithBackground names the palette entry used for the background.
func (b *Box) WithBackground(name string) *Box {
	return b.WithProp("backgroundColor", style.Str(name))
}

// SuppressRhythmWarning opts this box out of rhythm-violation
// reporting. The border is dropped entirely if compensation fails.
func (b *Box) SuppressRhythmWarning() *Box {
	return b.WithProp("suppressRhythmWarning", style.Flag(true))
}

// Add appends children to the box.
func (b *Box) Add(children ...ui.Renderable) *Box {
	b.children = append(b.children, children...)
	return b
}

// Props returns the box's current prop bag.
func (b *Box) Props() style.Props {
	return b.props
}

// ComputeStyle resolves the box's style definition against a theme.
func (b *Box) ComputeStyle(th theme.Theme) (style.Result, error) {
	return style.Compute(b.def, th, b.props)
}

// View renders the box with the default context.
func (b *Box) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the box and its children.
func (b *Box) ViewWithContext(ctx RenderContext) string {
	return b.render(ctx, b.content(ctx))
}

// content renders the children top to bottom.
func (b *Box) content(ctx RenderContext) string {
	views := make([]string, 0, len(b.children))
	for _, child := range b.children {
		if child == nil {
			continue
		}
		views = append(views, renderChild(ctx, child))
	}
	return strings.Join(views, "\n")
}

// render resolves the style and draws content through the lipgloss
// adapter. Resolution failures are configuration mistakes; they are
// logged and the content is rendered unstyled so a bad palette key
// cannot blank a whole page.
func (b *Box) render(ctx RenderContext, content string) string {
	return b.renderProps(ctx, content, b.props)
}

// renderProps is render with an explicit prop bag, so components can
// apply per-render overrides (a disabled button's fill) without
// mutating their own props.
func (b *Box) renderProps(ctx RenderContext, content string, props style.Props) string {
	result, err := style.Compute(b.def, ctx.Theme, props)
	if err != nil {
		if ctx.Log != nil {
			ctx.Log.Error(err, "style resolution failed")
		}
		return content
	}
	ctx.report(b.name, result.Diagnostics)
	return ToLipgloss(ctx.Theme, result.Style).Render(content)
}

// newStyled builds a box-shaped core for a derived component backed by
// its own style definition.
func newStyled(name string, def *style.Definition, children ...ui.Renderable) *Box {
	return &Box{name: name, def: def, props: style.Props{}, children: children}
}
