// Package ui holds the minimal contracts shared by everything that can
// draw itself to the terminal.
package ui

// Renderable is anything that can render itself to a string.
type Renderable interface {
	View() string
}
