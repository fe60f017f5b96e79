package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Button is a labelled control that invokes a callback when pressed.
type Button struct {
	BaseComponent
	label    string
	variant  ButtonVariant
	disabled bool
	focused  bool
	onPress  func()
}

// NewButton creates a new button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.label)
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme)
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}

	if b.disabled {
		style = style.Faint(true)
	}
	if b.focused {
		style = style.Underline(true)
	}
	return style
}

// Width is the rendered width in cells.
func (b *Button) Width() int {
	return lipgloss.Width(b.View())
}

// Press invokes the callback unless the button is disabled. It reports
// whether the callback ran.
func (b *Button) Press() bool {
	if b.disabled || b.onPress == nil {
		return false
	}
	b.onPress()
	return true
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithFocused marks the button as the keyboard focus target.
func (b *Button) WithFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// WithOnPress sets the press callback.
func (b *Button) WithOnPress(fn func()) *Button {
	b.onPress = fn
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// IsFocused reports whether the button is focused.
func (b *Button) IsFocused() bool {
	return b.focused
}

// PrimaryButton creates a primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantPrimary)
}

// SecondaryButton creates a secondary button.
func SecondaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantSecondary)
}
