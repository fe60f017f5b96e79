package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/typepanel/internal/catalog"
)

const (
	radioOn     = "(•) "
	radioOff    = "( ) "
	radioGutter = "  "
)

// RadioGroup lays its options out in rows and marks the selected one. With a
// width set, items flow onto further rows instead of overflowing.
type RadioGroup struct {
	BaseComponent
	title    string
	options  []catalog.Option
	selected catalog.Option
	onChange func(catalog.Option)
	focused  bool
	width    int
}

// NewRadioGroup creates a radio group over options.
func NewRadioGroup(title string, options []catalog.Option, selected catalog.Option, onChange func(catalog.Option)) *RadioGroup {
	return &RadioGroup{
		BaseComponent: NewBaseComponent(),
		title:         title,
		options:       options,
		selected:      selected,
		onChange:      onChange,
	}
}

// WithFocused marks the group as the keyboard focus target.
func (r *RadioGroup) WithFocused(focused bool) *RadioGroup {
	r.focused = focused
	return r
}

// WithWidth limits the item rows to width columns. Zero keeps one row.
func (r *RadioGroup) WithWidth(width int) *RadioGroup {
	r.width = max(width, 0)
	return r
}

// Height is the number of rendered lines: the title and every item row.
func (r *RadioGroup) Height() int {
	return 1 + max(len(r.rows()), 1)
}

// View renders the radio group.
func (r *RadioGroup) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the title and the item rows.
func (r *RadioGroup) ViewWithContext(ctx RenderContext) string {
	label := LabelText(r.title).ViewWithContext(ctx)

	base := r.ComputeStyle(ctx.Theme).Foreground(ctx.Theme.Palette.Text)
	active := base.Foreground(ctx.Theme.Palette.Accent).Bold(true)
	if r.focused {
		active = active.Underline(true)
	}

	lines := []string{label}
	for _, row := range r.rows() {
		items := make([]string, 0, len(row))
		for _, i := range row {
			opt := r.options[i]
			if opt == r.selected {
				items = append(items, active.Render(radioOn+r.itemLabel(opt)))
				continue
			}
			items = append(items, base.Render(radioOff+r.itemLabel(opt)))
		}
		lines = append(lines, strings.Join(items, radioGutter))
	}
	if len(lines) == 1 {
		lines = append(lines, "")
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// itemLabel truncates labels that could not fit a row on their own.
func (r *RadioGroup) itemLabel(opt catalog.Option) string {
	room := r.width - lipgloss.Width(radioOff)
	if r.width > 0 && lipgloss.Width(opt.Label) > room {
		return fit(opt.Label, room)
	}
	return opt.Label
}

func (r *RadioGroup) itemWidth(opt catalog.Option) int {
	return lipgloss.Width(radioOff + r.itemLabel(opt))
}

// rows groups option indexes into rows no wider than the group's width.
func (r *RadioGroup) rows() [][]int {
	var rows [][]int
	var current []int
	used := 0
	for i, opt := range r.options {
		w := r.itemWidth(opt)
		if len(current) > 0 && r.width > 0 && used+len(radioGutter)+w > r.width {
			rows = append(rows, current)
			current, used = nil, 0
		}
		if len(current) > 0 {
			used += len(radioGutter)
		}
		current = append(current, i)
		used += w
	}
	if len(current) > 0 {
		rows = append(rows, current)
	}
	return rows
}

// ItemAt returns the index of the item covering column col of item row row,
// or -1.
func (r *RadioGroup) ItemAt(row, col int) int {
	rows := r.rows()
	if row < 0 || row >= len(rows) {
		return -1
	}
	start := 0
	for _, i := range rows[row] {
		end := start + r.itemWidth(r.options[i])
		if col >= start && col < end {
			return i
		}
		start = end + len(radioGutter)
	}
	return -1
}

// HandleClick reacts to a press at (col, line) relative to the widget's
// top-left corner.
func (r *RadioGroup) HandleClick(col, line int) bool {
	if line < 1 {
		return false
	}
	return r.Choose(r.ItemAt(line-1, col))
}
// Choose reports option i through onChange.
func (r *RadioGroup) Choose(i int) bool {
	if i < 0 || i >= len(r.options) {
		return false
	}
	if r.onChange != nil {
		r.onChange(r.options[i])
	}
	return true
}

// Next chooses the following option, wrapping around.
func (r *RadioGroup) Next() bool {
	return r.step(1)
}

// Prev chooses the preceding option, wrapping around.
func (r *RadioGroup) Prev() bool {
	return r.step(-1)
}

func (r *RadioGroup) step(delta int) bool {
	if len(r.options) == 0 {
		return false
	}
	idx := -1
	for i, opt := range r.options {
		if opt == r.selected {
			idx = i
			break
		}
	}
	if idx < 0 {
		return r.Choose(0)
	}
	return r.Choose((idx + delta + len(r.options)) % len(r.options))
}
