package components

import (
	"github.com/charmbracelet/lipgloss"
)

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantLabel
	TypographyVariantMuted
	TypographyVariantFontBold
)

// ButtonVariant selects the visual treatment of a Button.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
)

// Palette describes the semantic colour slots used by the panel widgets.
type Palette struct {
	Accent  lipgloss.AdaptiveColor
	Text    lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	Surface lipgloss.AdaptiveColor
	Border  lipgloss.AdaptiveColor
	OnFill  lipgloss.AdaptiveColor
}

// VariantRegistry maps button variants to styling strategies.
type VariantRegistry map[ButtonVariant]StyleStrategy

// Get returns the strategy registered for a variant, or nil.
func (r VariantRegistry) Get(variant ButtonVariant) StyleStrategy {
	if r == nil {
		return nil
	}
	return r[variant]
}

// Theme is an immutable set of styling tokens passed through RenderContext.
type Theme struct {
	Palette  Palette
	Variants VariantRegistry
}

// DefaultTheme returns the theme used by View().
func DefaultTheme() Theme {
	palette := Palette{
		Accent:  lipgloss.AdaptiveColor{Light: "#5f00ff", Dark: "#a78bfa"},
		Text:    lipgloss.AdaptiveColor{Light: "#111827", Dark: "#f3f4f6"},
		Muted:   lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"},
		Surface: lipgloss.AdaptiveColor{Light: "#f3f4f6", Dark: "#1f2937"},
		Border:  lipgloss.AdaptiveColor{Light: "#d1d5db", Dark: "#4b5563"},
		OnFill:  lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#111827"},
	}

	return Theme{
		Palette: palette,
		Variants: VariantRegistry{
			ButtonVariantPrimary: NewCompositeStrategy(func(s lipgloss.Style, t Theme) lipgloss.Style {
				return s.Bold(true).Foreground(t.Palette.OnFill).Background(t.Palette.Accent).Padding(0, 1)
			}),
			ButtonVariantSecondary: NewCompositeStrategy(func(s lipgloss.Style, t Theme) lipgloss.Style {
				return s.Foreground(t.Palette.Text).Background(t.Palette.Border).Padding(0, 1)
			}),
		},
	}
}

// Typography returns a StyleFunc applying a typography token.
func Typography(variant TypographyVariant) StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style {
		switch variant {
		case TypographyVariantTitle:
			return s.Bold(true).Foreground(t.Palette.Accent)
		case TypographyVariantLabel:
			return s.Foreground(t.Palette.Text)
		case TypographyVariantMuted:
			return s.Foreground(t.Palette.Muted)
		case TypographyVariantFontBold:
			return s.Bold(true)
		default:
			return s
		}
	}
}

// Foreground returns a StyleFunc colouring text from the palette.
func Foreground(pick func(Palette) lipgloss.AdaptiveColor) StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.Foreground(pick(t.Palette))
	}
}

// Uppercase transforms rendered text to upper case.
func Uppercase() StyleFunc {
	return func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Transform(upper)
	}
}
