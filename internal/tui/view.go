package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/linebox-dev/linebox/internal/components"
)

func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	return vp
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "measuring terminal..."
	}
	return m.statusLine() + "\n" + m.viewport.View()
}

func (m Model) statusLine() string {
	return lipgloss.NewStyle().Faint(true).Render(
		fmt.Sprintf("theme: %s | border: %v | tab: switch theme, b: toggle border, q: quit", m.Theme().Name, m.bordered),
	)
}

// gallery renders the sample page with every primitive so theme and
// border changes are visible at a glance.
func (m Model) gallery() string {
	card := components.NewBox(
		components.NewText("The quick brown fox jumps over the lazy dog."),
	).WithPadding(1)
	if m.bordered {
		card.WithBorder()
	}

	buttons := components.HStack(
		components.NewButton("Save"),
		components.NewButton("Delete").WithVariant("danger"),
		components.NewButton("Later").WithDisabled(true),
	).WithGap(1)

	colors := components.HStack().WithGap(1)
	for _, name := range []string{"primary", "secondary", "success", "warning", "danger", "info"} {
		colors.Add(components.NewText(" " + name + " ").WithBackground(name))
	}

	page := components.NewPage().
		WithHeader(components.NewHeading(1, "linebox gallery")).
		WithFooter(components.NewText("all vertical spacing is a multiple of the theme line height").Italic()).
		Add(
			components.NewHeading(2, "Box"),
			card,
			components.NewHeading(2, "Buttons"),
			buttons,
			components.NewHeading(2, "Palette"),
			colors,
		)

	return page.ViewWithContext(m.context())
}
