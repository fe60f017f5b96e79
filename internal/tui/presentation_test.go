package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/typepanel/internal/catalog"
)

func TestPresentationFor(t *testing.T) {
	t.Parallel()

	set := catalog.Builtin()
	size := func(i int) catalog.Selection {
		return catalog.DefaultSelection().With(catalog.FontSize, set.Options(catalog.FontSize)[i])
	}
	width := func(i int) catalog.Selection {
		return catalog.DefaultSelection().With(catalog.ContentWidth, set.Options(catalog.ContentWidth)[i])
	}

	tests := []struct {
		name      string
		sel       catalog.Selection
		available int
		bold      bool
		gap       int
		columns   int
	}{
		{name: "defaults", sel: catalog.DefaultSelection(), available: 200, gap: 1, columns: 80},
		{name: "24px is bold", sel: size(1), available: 200, bold: true, gap: 1, columns: 80},
		{name: "38px is bold and airy", sel: size(2), available: 200, bold: true, gap: 2, columns: 80},
		{name: "wide clamped", sel: width(0), available: 100, gap: 1, columns: 100},
		{name: "narrow", sel: width(2), available: 100, gap: 1, columns: 54},
		{name: "minimum width", sel: width(2), available: 5, gap: 1, columns: minArticleWidth},
		{name: "unknown available", sel: width(0), available: 0, gap: 1, columns: 139},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := PresentationFor(tt.sel, tt.available)
			assert.Equal(t, tt.bold, p.Bold)
			assert.Equal(t, tt.gap, p.ParagraphGap)
			assert.Equal(t, tt.columns, p.Columns)
			assert.Equal(t, tt.sel.Variables(), p.Variables)
		})
	}
}

func TestPresentationColors(t *testing.T) {
	t.Parallel()

	p := PresentationFor(catalog.DefaultSelection(), 100)
	assert.Equal(t, lipgloss.Color("#000"), p.Foreground)
	assert.Equal(t, lipgloss.Color("#fff"), p.Background)
	assert.Equal(t, "Open Sans", p.FontFamily)
	assert.Equal(t, "18px", p.FontSize)
	assert.Equal(t, 80, lipgloss.Width(p.Style().Render("x")))
}

func TestPixels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 800, pixels("800px"))
	assert.Equal(t, 24, pixels(" 24 "))
	assert.Equal(t, 0, pixels("wide"))
	assert.Equal(t, 0, pixels("-4px"))
}
