package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/typepanel/internal/catalog"
	"github.com/alexisbeaulieu97/typepanel/internal/ui/components"
)

// View renders the toggle button, the panel when open, the article and the help line.
func (m Model) View() string {
	ctx := components.DefaultContext()

	header := toggleButton(m.ctrl.IsOpen()).ViewWithContext(ctx)
	body := m.renderArticle()
	if m.ctrl.IsOpen() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderPanel(ctx), " ", body)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.help.View(m.keys))
}

func (m Model) renderPanel(ctx components.RenderContext) string {
	f := m.buildForm(ctx)
	return components.NewPanel(f.View()).
		WithSize(formWidth, f.Height()).
		ViewWithContext(ctx)
}

func (m Model) renderArticle() string {
	p := m.Presentation()

	parts := make([]string, 0, len(m.article.Paragraphs)+2)
	parts = append(parts, articleTitleStyle.Render(m.article.Title))
	parts = append(parts, articleMetaStyle.Render(fmt.Sprintf("Set in %s, %s", p.FontFamily, p.FontSize)))
	parts = append(parts, m.article.Paragraphs...)

	sep := strings.Repeat("\n", p.ParagraphGap+1)
	content := p.Style().Render(strings.Join(parts, sep))

	return lipgloss.JoinVertical(lipgloss.Left, content, renderVariables(p.Variables, p.Columns))
}

func renderVariables(vars []catalog.Variable, width int) string {
	pairs := make([]string, 0, len(vars))
	for _, v := range vars {
		pairs = append(pairs, fmt.Sprintf("%s: %s;", v.Name, v.Value))
	}
	return variablesStyle.Width(width).Render(strings.Join(pairs, " "))
}

// Preview renders a single frame with sel committed through the panel's
// submit path. It needs no terminal.
func Preview(cfg Config, sel catalog.Selection, open bool, width, height int) string {
	m := NewModel(cfg)
	defer m.ctrl.Dispose()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	m = updated.(Model)

	for _, category := range catalog.Categories() {
		m.ctrl.SelectOption(category, sel.Get(category))
	}
	m.ctrl.Submit()
	if open {
		m.ctrl.SetOpen(true)
	}
	return m.sync().View()
}
