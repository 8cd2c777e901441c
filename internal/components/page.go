package components

import (
	"github.com/linebox-dev/linebox/internal/style"
	"github.com/linebox-dev/linebox/internal/ui"
)

// Page is the top-level layout scaffold: a padded box stacking an
// optional header, the body, and an optional footer with one rhythm
// step between sections. It is presentation glue over Box and Stack,
// not engine machinery.
type Page struct {
	box    *Box
	header ui.Renderable
	body   *Stack
	footer ui.Renderable
}

// NewPage creates an empty page with the stock padding.
func NewPage() *Page {
	return &Page{
		box:  NewBox().WithPadding(1),
		body: VStack(),
	}
}

// WithHeader sets the page header.
func (p *Page) WithHeader(header ui.Renderable) *Page {
	p.header = header
	return p
}

// WithFooter sets the page footer.
func (p *Page) WithFooter(footer ui.Renderable) *Page {
	p.footer = footer
	return p
}

// WithBackground names the palette entry used for the page background.
func (p *Page) WithBackground(name string) *Page {
	p.box.WithBackground(name)
	return p
}

// WithProp forwards a semantic prop to the underlying box.
func (p *Page) WithProp(name string, value style.Value) *Page {
	p.box.WithProp(name, value)
	return p
}

// Add appends components to the page body.
func (p *Page) Add(children ...ui.Renderable) *Page {
	p.body.Add(children...)
	return p
}

// View renders the page with the default context.
func (p *Page) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the page with the given context.
func (p *Page) ViewWithContext(ctx RenderContext) string {
	sections := VStack().WithGap(1)
	if p.header != nil {
		sections.Add(p.header)
	}
	sections.Add(p.body)
	if p.footer != nil {
		sections.Add(p.footer)
	}

	p.box.children = []ui.Renderable{sections}
	return p.box.ViewWithContext(ctx)
}
