package components

import (
	"strings"
)

// Spacer renders empty space of a fixed size.
type Spacer struct {
	width  int
	height int
}

// NewSpacer creates a spacer with the given dimensions.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{width: max(width, 0), height: max(height, 0)}
}

// HorizontalSpacer creates a one-line gap of width columns.
func HorizontalSpacer(width int) *Spacer {
	return NewSpacer(width, 1)
}

// VerticalSpacer creates an empty block height lines tall.
func VerticalSpacer(height int) *Spacer {
	return NewSpacer(0, height)
}

// View renders the spacer as blank lines of spaces.
func (s *Spacer) View() string {
	if s.height == 0 {
		return ""
	}
	line := strings.Repeat(" ", s.width)
	return strings.TrimSuffix(strings.Repeat(line+"\n", s.height), "\n")
}

// Width returns the spacer width.
func (s *Spacer) Width() int {
	return s.width
}

// Height returns the spacer height.
func (s *Spacer) Height() int {
	return s.height
}
