package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/typepanel/internal/catalog"
	"github.com/alexisbeaulieu97/typepanel/internal/document"
	"github.com/alexisbeaulieu97/typepanel/internal/ui/components"
)

const (
	panelTitle  = "Set parameters"
	resetLabel  = "Reset"
	applyLabel  = "Apply"
	toggleLabel = "Settings"

	formWidth = 30
	// Form height with the built-in catalogs. Custom catalogs can make the
	// radio rows wrap, so layout always uses form.Height.
	formHeight = 20
	// Border and one column of padding on each side.
	panelWidth = formWidth + 4
	panelTop   = 1
)

// cycler is implemented by the select and radio widgets.
type cycler interface {
	Next() bool
	Prev() bool
}

type block struct {
	view   string
	height int
	// click handles a press at (col, line) inside the block and reports the
	// control that received it.
	click func(col, line int) (focusTarget, bool)
}

// form is one render of the panel contents. It is rebuilt from the
// controller's draft whenever it is needed, so it never holds state.
type form struct {
	blocks  []block
	cyclers map[focusTarget]cycler
	buttons map[focusTarget]*components.Button
}

func toggleButton(open bool) *components.Button {
	arrow := "▸ "
	if open {
		arrow = "◂ "
	}
	return components.SecondaryButton(arrow + toggleLabel)
}

func toggleRect() document.Rect {
	return document.Rect{X: 0, Y: 0, Width: toggleButton(false).Width(), Height: 1}
}

// panelRectFor is the area the panel occupies when its form is height lines tall.
func panelRectFor(height int) document.Rect {
	return document.Rect{X: 0, Y: panelTop, Width: panelWidth, Height: height + 2}
}

// panelRect is the panel area for the current draft.
func (m Model) panelRect() document.Rect {
	return panelRectFor(m.buildForm(components.DefaultContext()).Height())
}

// buildForm lays out the panel controls for the current draft.
func (m Model) buildForm(ctx components.RenderContext) form {
	draft := m.ctrl.Draft()
	set := m.ctrl.Catalogs()

	f := form{
		cyclers: make(map[focusTarget]cycler),
		buttons: make(map[focusTarget]*components.Button),
	}

	static := func(view string) {
		f.blocks = append(f.blocks, block{view: view, height: lipgloss.Height(view)})
	}
	spacer := func() { static(components.VerticalSpacer(1).View()) }

	selectField := func(target focusTarget, category catalog.Category) {
		w := components.NewSelect(category.Title(), set.Options(category), draft.Get(category), m.ctrl.OnChange(category)).
			WithWidth(formWidth).
			WithFocused(m.focus == target)
		f.cyclers[target] = w
		f.blocks = append(f.blocks, block{
			view:   w.ViewWithContext(ctx),
			height: w.Height(),
			click: func(col, line int) (focusTarget, bool) {
				return target, w.HandleClick(col, line)
			},
		})
	}

	radioField := func(target focusTarget, category catalog.Category) {
		w := components.NewRadioGroup(category.Title(), set.Options(category), draft.Get(category), m.ctrl.OnChange(category)).
			WithWidth(formWidth).
			WithFocused(m.focus == target)
		f.cyclers[target] = w
		f.blocks = append(f.blocks, block{
			view:   w.ViewWithContext(ctx),
			height: w.Height(),
			click: func(col, line int) (focusTarget, bool) {
				return target, w.HandleClick(col, line)
			},
		})
	}

	static(components.TitleText(panelTitle).ViewWithContext(ctx))
	spacer()
	selectField(focusFontFamily, catalog.FontFamily)
	spacer()
	radioField(focusFontSize, catalog.FontSize)
	spacer()
	selectField(focusFontColor, catalog.FontColor)
	spacer()
	static(components.NewDivider().ViewWithContext(ctx.WithParentWidth(formWidth)))
	spacer()
	selectField(focusBackground, catalog.BackgroundColor)
	spacer()
	selectField(focusWidth, catalog.ContentWidth)
	spacer()

	reset := components.SecondaryButton(resetLabel).
		WithFocused(m.focus == focusReset).
		WithOnPress(m.ctrl.Reset)
	apply := components.PrimaryButton(applyLabel).
		WithFocused(m.focus == focusApply).
		WithOnPress(m.ctrl.Submit)
	f.buttons[focusReset] = reset
	f.buttons[focusApply] = apply

	resetWidth := reset.Width()
	applyStart := formWidth - apply.Width()
	gap := applyStart - resetWidth
	if gap < 1 {
		gap = 1
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		reset.ViewWithContext(ctx),
		components.HorizontalSpacer(gap).View(),
		apply.ViewWithContext(ctx))
	f.blocks = append(f.blocks, block{
		view:   row,
		height: 1,
		click: func(col, line int) (focusTarget, bool) {
			switch {
			case col >= 0 && col < resetWidth:
				return focusReset, reset.Press()
			case col >= applyStart && col < formWidth:
				return focusApply, apply.Press()
			}
			return 0, false
		},
	})

	return f
}

// View joins the blocks top to bottom.
func (f form) View() string {
	views := make([]string, 0, len(f.blocks))
	for _, b := range f.blocks {
		views = append(views, b.view)
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

// Height is the number of rendered lines.
func (f form) Height() int {
	total := 0
	for _, b := range f.blocks {
		total += b.height
	}
	return total
}

// Click routes a press at form-relative (col, line) to the block under it.
func (f form) Click(col, line int) (focusTarget, bool) {
	top := 0
	for _, b := range f.blocks {
		if line >= top && line < top+b.height {
			if b.click == nil {
				return 0, false
			}
			return b.click(col, line-top)
		}
		top += b.height
	}
	return 0, false
}
