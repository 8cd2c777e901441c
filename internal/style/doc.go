// Package style is the resolution engine that turns semantic layout
// props plus a theme into a concrete computed style.
//
// # Pipeline
//
// Resolution runs in three stages, leaves first:
//
//  1. Unit resolution - Resolve converts one spacing value (a rhythm
//     multiple, an opaque string length, or false) into a concrete
//     length using the theme line height.
//  2. Prop mapping - MapProps walks the static prop table, expanding
//     shorthands (margin, paddingHorizontal, ...) in fixed precedence
//     order and resolving every spacing value.
//  3. Border compensation - ApplyBorder reduces padding on bordered
//     edges by the stroke width so the border does not break vertical
//     rhythm, reporting a Diagnostic for every edge it cannot fix.
//
// Component style definitions wrap the pipeline in Definition values;
// Compute resolves a definition, following its extension chain
// base-first and layering default props under the caller's.
//
// # Purity
//
// Everything in this package is a pure synchronous computation. The
// theme is read-only, prop bags and computed styles live for one call,
// and warnings come back as data (Diagnostic) rather than going to a
// logger, so rendering layers decide their own reporting policy.
package style
