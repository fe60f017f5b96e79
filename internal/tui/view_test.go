package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/typepanel/internal/catalog"
	"github.com/alexisbeaulieu97/typepanel/internal/ui/components"
)

func TestFormLayout(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Config{})
	f := m.buildForm(components.DefaultContext())

	assert.Equal(t, formHeight, f.Height())
	assert.Equal(t, formHeight, lipgloss.Height(f.View()))
	assert.LessOrEqual(t, lipgloss.Width(f.View()), formWidth)
	assert.Len(t, f.cyclers, 5)
	assert.Len(t, f.buttons, 2)
}

func TestFormClickOutsideBlocks(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Config{})
	f := m.buildForm(components.DefaultContext())

	_, ok := f.Click(0, -1)
	assert.False(t, ok)
	_, ok = f.Click(0, formHeight)
	assert.False(t, ok)
	_, ok = f.Click(formWidth/2, formHeight-1)
	assert.False(t, ok, "gap between the buttons")
	assert.Equal(t, catalog.DefaultSelection(), m.Controller().Draft())
}

func TestViewClosed(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Config{})
	view := m.View()

	assert.Contains(t, view, "▸ Settings")
	assert.Contains(t, view, "The measure of a line")
	assert.Contains(t, view, "Set in Open Sans, 18px")
	assert.Contains(t, view, "--font-family: Open Sans;")
	assert.NotContains(t, view, "SET PARAMETERS")
}

func TestViewOpen(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Config{})
	m = send(t, m, runes("o"))
	view := m.View()

	assert.Contains(t, view, "◂ Settings")
	assert.Contains(t, view, "SET PARAMETERS")
	assert.Contains(t, view, "Open Sans")
	assert.Contains(t, view, "(•) 18px")
	assert.Contains(t, view, "Reset")
	assert.Contains(t, view, "Apply")

	lines := strings.Split(view, "\n")
	require.Greater(t, len(lines), panelTop+formHeight+2)
	top := []rune(lines[panelTop])
	require.Greater(t, len(top), panelWidth)
	assert.Equal(t, '╭', top[0])
	assert.Equal(t, '╮', top[panelWidth-1])
}

func TestViewShowsCommittedNotDraft(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Config{})
	m = send(t, m, runes("o"), press(rightArrowX, fontValueRow))

	assert.Contains(t, m.View(), "Set in Open Sans, 18px")

	m = send(t, m, press(applyX, buttonsRow))
	assert.Contains(t, m.View(), "Set in PT Sans, 18px")
}

func TestPreview(t *testing.T) {
	t.Parallel()

	set := catalog.Builtin()
	sel := catalog.DefaultSelection().
		With(catalog.FontFamily, set.Options(catalog.FontFamily)[1]).
		With(catalog.FontSize, set.Options(catalog.FontSize)[1])

	out := Preview(Config{}, sel, false, 120, 40)
	assert.Contains(t, out, "Set in PT Sans, 24px")
	assert.Contains(t, out, "--font-size: 24px;")
	assert.Contains(t, out, "800px;")
	assert.NotContains(t, out, "SET PARAMETERS")

	open := Preview(Config{}, sel, true, 120, 40)
	assert.Contains(t, open, "SET PARAMETERS")
	assert.Contains(t, open, "(•) 24px")
}
