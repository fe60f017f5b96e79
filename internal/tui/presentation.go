package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/typepanel/internal/catalog"
)

const (
	pixelsPerColumn = 10
	minArticleWidth = 20
	boldFromPx      = 24
	airyFromPx      = 38
)

// Presentation is the committed selection translated to what a terminal can show.
type Presentation struct {
	FontFamily   string
	FontSize     string
	Bold         bool
	ParagraphGap int
	Foreground   lipgloss.Color
	Background   lipgloss.Color
	Columns      int
	Variables    []catalog.Variable
}

// PresentationFor derives the article presentation from sel, fitting the
// content width into available columns.
func PresentationFor(sel catalog.Selection, available int) Presentation {
	size := pixels(sel.FontSize.Value)

	p := Presentation{
		FontFamily:   sel.FontFamily.Value,
		FontSize:     sel.FontSize.Value,
		Bold:         size >= boldFromPx,
		ParagraphGap: 1,
		Foreground:   lipgloss.Color(sel.FontColor.Value),
		Background:   lipgloss.Color(sel.BackgroundColor.Value),
		Columns:      pixels(sel.ContentWidth.Value) / pixelsPerColumn,
		Variables:    sel.Variables(),
	}
	if size >= airyFromPx {
		p.ParagraphGap = 2
	}

	if available > 0 && p.Columns > available {
		p.Columns = available
	}
	if p.Columns < minArticleWidth {
		p.Columns = minArticleWidth
	}
	return p
}

// Style returns the lipgloss style for the article body.
func (p Presentation) Style() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Foreground).
		Background(p.Background).
		Bold(p.Bold).
		Width(p.Columns).
		Padding(0, 1)
}

// pixels parses "800px" (or a bare number) and returns 0 when it cannot.
func pixels(value string) int {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(value), "px"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
