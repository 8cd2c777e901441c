package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVStackJoinsVertically(t *testing.T) {
	t.Parallel()

	view := VStack(NewText("alpha"), NewText("beta")).View()
	lines := strings.Split(view, "\n")

	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "alpha")
	assert.Contains(t, lines[1], "beta")
}

func TestVStackGapInsertsBlankRows(t *testing.T) {
	t.Parallel()

	view := VStack(NewText("alpha"), NewText("beta")).WithGap(1).View()
	lines := strings.Split(view, "\n")

	assert.Len(t, lines, 3)
	assert.Equal(t, "", strings.TrimSpace(lines[1]))
}

func TestHStackJoinsHorizontally(t *testing.T) {
	t.Parallel()

	view := HStack(NewText("left"), NewText("right")).WithGap(1).View()

	assert.NotContains(t, view, "\n")
	assert.Contains(t, view, "left")
	assert.Contains(t, view, "right")
	assert.Contains(t, view, "left  right", "one rhythm step is two columns")
}

func TestStackSkipsNilChildren(t *testing.T) {
	t.Parallel()

	view := VStack(nil, NewText("only")).View()
	assert.Equal(t, 1, len(strings.Split(view, "\n")))
}

func TestEmptyStack(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", VStack().View())
}

func TestPageLayout(t *testing.T) {
	t.Parallel()

	page := NewPage().
		WithHeader(NewHeading(1, "Users")).
		WithFooter(NewText("footer")).
		Add(NewText("body line"))

	view := page.View()

	header := strings.Index(view, "Users")
	body := strings.Index(view, "body line")
	footer := strings.Index(view, "footer")

	assert.GreaterOrEqual(t, header, 0)
	assert.Less(t, header, body, "header renders above the body")
	assert.Less(t, body, footer, "body renders above the footer")
}
