// Package components provides the themed UI primitives of the kit:
// Box, Text, Heading, Button, and the Stack/Page layout helpers.
//
// Every styled component owns a style definition rooted in the box
// definition, so its visual style is computed at render time from its
// semantic props and the active theme rather than from static styles.
// Derived components extend the box definition with their own deltas
// (a heading's typography, a button's fill) and default props that
// apply only when the caller stays silent.
//
// Themes travel through RenderContext:
//
//	ctx := components.DefaultContext().WithTheme(theme.Dark())
//	out := components.NewHeading(1, "Users").ViewWithContext(ctx)
//
// Rhythm diagnostics produced during resolution are reported through
// the context logger; resolution errors (unknown palette keys, cyclic
// definitions) degrade to unstyled content so one bad prop cannot
// blank a page.
package components
