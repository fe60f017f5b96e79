package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/typepanel/internal/catalog"
)

const (
	selectPrev       = "‹ "
	selectNext       = " ›"
	selectArrowWidth = 2
	minSelectWidth   = 12
)

// Select is a single-choice control showing the selected option between
// previous/next arrows. It owns no state: every choice goes through onChange.
type Select struct {
	BaseComponent
	title    string
	options  []catalog.Option
	selected catalog.Option
	onChange func(catalog.Option)
	focused  bool
	width    int
}

// NewSelect creates a select over options with selected highlighted.
func NewSelect(title string, options []catalog.Option, selected catalog.Option, onChange func(catalog.Option)) *Select {
	return &Select{
		BaseComponent: NewBaseComponent(),
		title:         title,
		options:       options,
		selected:      selected,
		onChange:      onChange,
		width:         minSelectWidth,
	}
}

// WithFocused marks the select as the keyboard focus target.
func (s *Select) WithFocused(focused bool) *Select {
	s.focused = focused
	return s
}

// WithWidth sets the width of the value row.
func (s *Select) WithWidth(width int) *Select {
	if width < minSelectWidth {
		width = minSelectWidth
	}
	s.width = width
	return s
}

// Height is the number of rendered lines: title and value row.
func (s *Select) Height() int {
	return 2
}

// View renders the select.
func (s *Select) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the title line and the value row.
func (s *Select) ViewWithContext(ctx RenderContext) string {
	label := LabelText(s.title).ViewWithContext(ctx)

	inner := s.width - 2*selectArrowWidth
	value := fit(s.selected.Label, inner)

	arrow := lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Muted)
	box := s.ComputeStyle(ctx.Theme).Foreground(ctx.Theme.Palette.Text)
	if s.focused {
		arrow = arrow.Foreground(ctx.Theme.Palette.Accent).Bold(true)
		box = box.Foreground(ctx.Theme.Palette.Accent).Underline(true)
	}

	row := arrow.Render(selectPrev) + box.Render(value) + arrow.Render(selectNext)
	return lipgloss.JoinVertical(lipgloss.Left, label, row)
}

// Next chooses the option after the selected one, wrapping around.
func (s *Select) Next() bool {
	return s.step(1)
}

// Prev chooses the option before the selected one, wrapping around.
func (s *Select) Prev() bool {
	return s.step(-1)
}

func (s *Select) step(delta int) bool {
	if len(s.options) == 0 {
		return false
	}
	idx := s.index()
	if idx < 0 {
		return s.choose(0)
	}
	next := (idx + delta + len(s.options)) % len(s.options)
	return s.choose(next)
}

// HandleClick reacts to a press at (col, line) relative to the widget's
// top-left corner. Only the value row is interactive: its left arrow steps
// back, anything else steps forward.
func (s *Select) HandleClick(col, line int) bool {
	if line != 1 || col < 0 || col >= s.width {
		return false
	}
	if col < selectArrowWidth {
		return s.Prev()
	}
	return s.Next()
}

func (s *Select) index() int {
	for i, opt := range s.options {
		if opt == s.selected {
			return i
		}
	}
	return -1
}

func (s *Select) choose(i int) bool {
	if i < 0 || i >= len(s.options) {
		return false
	}
	if s.onChange != nil {
		s.onChange(s.options[i])
	}
	return true
}
