package components

import (
	"github.com/charmbracelet/lipgloss"
)

// panelChrome is the border plus one column of padding on each side.
const panelChrome = 4

// Panel frames pre-rendered content with a rounded border.
type Panel struct {
	BaseComponent
	body   string
	width  int
	height int
}

// NewPanel creates a panel around body.
func NewPanel(body string) *Panel {
	return &Panel{BaseComponent: NewBaseComponent(), body: body}
}

// WithSize fixes the content area. Zero keeps the body's natural size.
func (p *Panel) WithSize(width, height int) *Panel {
	p.width = width
	p.height = height
	return p
}

// OuterWidth is the rendered width including border and padding.
func (p *Panel) OuterWidth() int {
	w := p.width
	if w == 0 {
		w = lipgloss.Width(p.body)
	}
	return w + panelChrome
}

// OuterHeight is the rendered height including the border.
func (p *Panel) OuterHeight() int {
	h := p.height
	if h == 0 {
		h = lipgloss.Height(p.body)
	}
	return h + 2
}

// View renders the panel.
func (p *Panel) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the panel with the given theme context.
func (p *Panel) ViewWithContext(ctx RenderContext) string {
	style := p.ComputeStyle(ctx.Theme).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ctx.Theme.Palette.Border).
		Padding(0, 1)
	if p.width > 0 {
		// lipgloss widths include padding but not the border.
		style = style.Width(p.width + 2)
	}
	if p.height > 0 {
		style = style.Height(p.height)
	}
	return style.Render(p.body)
}
