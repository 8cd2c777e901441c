package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/linebox-dev/linebox/internal/components"
	"github.com/linebox-dev/linebox/internal/logger"
	"github.com/linebox-dev/linebox/internal/theme"
)

// Model contains the Bubble Tea state for the component gallery: the
// active theme, a border toggle, and a viewport for scrolling the
// rendered page.
type Model struct {
	themes   []theme.Theme
	active   int
	bordered bool
	log      *logger.Logger
	viewport viewport.Model
	ready    bool
	quitting bool
}

// NewModel constructs the gallery model. The supplied themes are
// cycled with the tab key; at least one is required.
func NewModel(themes []theme.Theme, log *logger.Logger) Model {
	if len(themes) == 0 {
		themes = []theme.Theme{theme.Default()}
	}
	return Model{themes: themes, bordered: true, log: log}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Theme returns the active theme.
func (m Model) Theme() theme.Theme {
	return m.themes[m.active]
}

// context builds the render context for the active theme.
func (m Model) context() components.RenderContext {
	return components.DefaultContext().WithTheme(m.Theme()).WithLogger(m.log)
}
