package components

import (
	"github.com/linebox-dev/linebox/internal/logger"
	"github.com/linebox-dev/linebox/internal/style"
	"github.com/linebox-dev/linebox/internal/theme"
	"github.com/linebox-dev/linebox/internal/ui"
)

// RenderContext carries the theme and reporting policy down the
// component tree. Themes travel explicitly through the context rather
// than through global state, so two renders with different themes can
// run side by side.
type RenderContext struct {
	Theme theme.Theme
	Log   *logger.Logger
}

// DefaultContext returns a render context with the stock theme and a
// discard logger.
func DefaultContext() RenderContext {
	return RenderContext{Theme: theme.Default(), Log: logger.Nop()}
}

// WithTheme returns a copy of the context using the given theme.
func (r RenderContext) WithTheme(th theme.Theme) RenderContext {
	r.Theme = th
	return r
}

// WithLogger returns a copy of the context using the given logger.
func (r RenderContext) WithLogger(log *logger.Logger) RenderContext {
	r.Log = log
	return r
}

// report writes resolution diagnostics through the context logger.
// The engine hands warnings back as data; this is the single place the
// component layer turns them into log entries.
func (r RenderContext) report(component string, diags []style.Diagnostic) {
	if r.Log == nil {
		return
	}
	for _, d := range diags {
		r.Log.WithFields(map[string]any{
			"component": component,
			"property":  d.Property,
			"axis":      d.Axis.String(),
		}).Warn(d.Message())
	}
}

// ContextualRenderable is a component that accepts a render context.
// Plain Renderables are rendered with the default context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// renderChild renders a child with the context when it supports one.
func renderChild(ctx RenderContext, child ui.Renderable) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}
